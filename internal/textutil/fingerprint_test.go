package textutil

import (
	"math"
	"testing"
)

func TestSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("hello world"), 0},
		{"b nil", NewFingerprint("hello world"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Similarity(tt.b)
			if got != tt.want {
				t.Errorf("Similarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarityIdentical(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	a := NewFingerprint(text)
	b := NewFingerprint(text)

	got := a.Similarity(b)
	if got != 1.0 {
		t.Errorf("Similarity(identical) = %v, want 1.0", got)
	}
}

func TestSimilarityCompletelyDifferent(t *testing.T) {
	a := NewFingerprint("apple banana cherry")
	b := NewFingerprint("dog elephant frog")

	got := a.Similarity(b)
	if got != 0 {
		t.Errorf("Similarity(different) = %v, want 0", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := NewFingerprint("hello world program")
	b := NewFingerprint("world program test")

	ab := a.Similarity(b)
	ba := b.Similarity(a)

	if ab != ba {
		t.Errorf("Similarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestSimilarityChineseTranscripts(t *testing.T) {
	lecture := "今天我们来讲机器学习的基础概念 机器学习是人工智能的一个分支"
	sameTopic := "机器学习的核心是从数据中学习规律"
	offTopic := "晚餐做了红烧肉和青菜汤"

	base := NewFingerprint(lecture)
	related := base.Similarity(NewFingerprint(sameTopic))
	unrelated := base.Similarity(NewFingerprint(offTopic))

	if related <= unrelated {
		t.Errorf("related topic score %v should exceed unrelated score %v", related, unrelated)
	}
	if related <= 0 {
		t.Errorf("related topic score = %v, want > 0", related)
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if fp := NewFingerprint(""); fp != nil {
		t.Error("expected nil for empty text")
	}
}

func TestNewFingerprintShortTokens(t *testing.T) {
	if fp := NewFingerprint("a an it to"); fp != nil {
		t.Error("expected nil for text with only short tokens")
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// "hello hello world" -> hello:2, world:1
	// norm = sqrt(2^2 + 1^2) = sqrt(5)
	fp := NewFingerprint("hello hello world")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}

	expectedNorm := math.Sqrt(5)
	if math.Abs(fp.norm-expectedNorm) > 0.0001 {
		t.Errorf("norm = %v, want %v", fp.norm, expectedNorm)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "filters short",
			input: "a to the quick fox",
			want:  []string{"the", "quick", "fox"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "han bigrams",
			input: "你好世界",
			want:  []string{"你好", "好世", "世界"},
		},
		{
			name:  "lone han rune",
			input: "好",
			want:  []string{"好"},
		},
		{
			name:  "mixed scripts",
			input: "学习golang很有趣",
			want:  []string{"学习", "golang", "很有", "有趣"},
		},
		{
			name:  "han runs split by punctuation",
			input: "你好，世界",
			want:  []string{"你好", "世界"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFingerprintTokenCount(t *testing.T) {
	tests := []struct {
		name string
		fp   *Fingerprint
		want int
	}{
		{
			name: "nil fingerprint",
			fp:   nil,
			want: 0,
		},
		{
			name: "unique tokens",
			fp:   NewFingerprint("hello world programming"),
			want: 3,
		},
		{
			name: "repeated tokens",
			fp:   NewFingerprint("hello hello world world world"),
			want: 2, // unique count
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fp.TokenCount()
			if got != tt.want {
				t.Errorf("TokenCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorpusIDFRanksDistinctiveTerms(t *testing.T) {
	docs := []string{
		"机器学习入门课程 机器学习",
		"机器学习进阶课程",
		"晚餐食谱分享",
	}
	corpus := NewCorpus()
	fps := make([]*Fingerprint, 0, len(docs))
	for _, doc := range docs {
		fp := NewFingerprint(doc)
		corpus.Add(fp)
		fps = append(fps, fp)
	}

	idf := corpus.IDF()
	if len(idf) == 0 {
		t.Fatal("expected IDF weights")
	}

	query := NewFingerprint("机器学习").WithIDF(idf)
	first := query.Similarity(fps[0].WithIDF(idf))
	last := query.Similarity(fps[2].WithIDF(idf))
	if first <= last {
		t.Errorf("matching doc score %v should exceed unrelated doc score %v", first, last)
	}
}
