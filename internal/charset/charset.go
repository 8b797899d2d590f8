// Package charset converts caption files of unknown encoding to UTF-8.
// Chinese caption files in the wild are frequently GBK or Big5; detection is
// statistical and therefore best-effort.
package charset

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DecodeUTF8 detects the encoding of data and returns its UTF-8 form. Input
// that is already UTF-8 passes through untouched apart from a leading byte
// order mark, which is always dropped.
func DecodeUTF8(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	if best.Charset == "UTF-8" {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	enc, err := ianaindex.MIB.Encoding(best.Charset)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", best.Charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: no decoder available", best.Charset)
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", best.Charset, err)
	}
	return bytes.TrimPrefix(decoded, utf8BOM), nil
}
