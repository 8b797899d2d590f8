package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleSRT is a small caption file used where a test only needs any
// valid subtitle content.
const SampleSRT = `1
00:00:01,000 --> 00:00:03,000
大家好，欢迎收看本期节目

2
00:00:03,500 --> 00:00:06,000
今天我们讨论并发模型

3
00:00:07,000 --> 00:00:09,500
先从通道的基本用法讲起
`

// WriteFile writes a text fixture, creating parent directories first.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCaption stores a caption fixture under the captions directory
// using the layout the directory source reads: <id>.<lang>.<ext> for
// manual tracks and <id>.auto.<lang>.<ext> for automatic ones.
func WriteCaption(t testing.TB, captionsDir, videoID, lang string, automatic bool, ext, content string) string {
	t.Helper()

	parts := []string{videoID}
	if automatic {
		parts = append(parts, "auto")
	}
	parts = append(parts, lang, ext)
	path := filepath.Join(captionsDir, strings.Join(parts, "."))
	WriteFile(t, path, content)
	return path
}

// WriteInfoSidecar stores the metadata sidecar for a video id.
func WriteInfoSidecar(t testing.TB, captionsDir, videoID, payload string) string {
	t.Helper()

	path := filepath.Join(captionsDir, videoID+".info.json")
	WriteFile(t, path, payload)
	return path
}
