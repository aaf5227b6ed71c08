package service

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestContextExtractorExtract(t *testing.T) {
	tests := []struct {
		name   string
		cjk    bool
		word   string
		text   string
		radius int
		want   []string
	}{
		{
			name:   "radius clamped to text",
			word:   "cat",
			text:   "the cat sat",
			radius: 3,
			want:   []string{"the cat sa"},
		},
		{
			name:   "substring of a longer token",
			word:   "cat",
			text:   "concatenate",
			radius: 5,
			want:   nil,
		},
		{
			name:   "word at both edges",
			word:   "cat",
			text:   "cat",
			radius: 25,
			want:   []string{"cat"},
		},
		{
			name:   "every occurrence",
			word:   "cat",
			text:   "cat, dog, cat",
			radius: 1,
			want:   []string{"cat,", ", cat"},
		},
		{
			name:   "line breaks removed and trimmed",
			word:   "sat",
			text:   "cat\nsat\n on",
			radius: 3,
			want:   []string{"catsat o"},
		},
		{
			name:   "pattern metacharacters are literal",
			word:   "c++",
			text:   "I write c++ daily",
			radius: 2,
			want:   []string{"te c++ d"},
		},
		{
			name:   "dot does not match any character",
			word:   "a.b",
			text:   "axb a.b",
			radius: 0,
			want:   []string{"a.b"},
		},
		{
			name:   "han neighbour blocks a match without cjk boundaries",
			word:   "猫",
			text:   "这是猫。",
			radius: 1,
			want:   nil,
		},
		{
			name:   "full-width punctuation delimits",
			word:   "猫",
			text:   "他说：猫。",
			radius: 1,
			want:   []string{"说：猫。"},
		},
		{
			name:   "han word inside a longer han word is unmatched without cjk boundaries",
			word:   "猫",
			text:   "我的熊猫很好",
			radius: 1,
			want:   nil,
		},
		{
			name:   "han word inside a longer han word matches with cjk boundaries",
			cjk:    true,
			word:   "猫",
			text:   "我的熊猫很好",
			radius: 1,
			want:   []string{"的熊猫很"},
		},
		{
			name:   "han neighbours delimit when enabled",
			cjk:    true,
			word:   "猫",
			text:   "我的猫很好。",
			radius: 1,
			want:   []string{"我的猫很"},
		},
		{
			name:   "latin word inside latin word stays unmatched with cjk",
			cjk:    true,
			word:   "cat",
			text:   "concatenate",
			radius: 5,
			want:   nil,
		},
		{
			name:   "empty word",
			word:   "",
			text:   "anything",
			radius: 5,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewContextExtractor(tt.cjk).Extract(tt.word, tt.text, tt.radius)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q, %q, %d) = %q, want %q", tt.word, tt.text, tt.radius, got, tt.want)
			}
		})
	}
}

func TestContextExtractorBlank(t *testing.T) {
	tests := []struct {
		name string
		cjk  bool
		text string
		word string
		want string
	}{
		{"single", false, "the cat sat", "cat", "the __ sat"},
		{"repeated", false, "cat and cat.", "cat", "__ and __."},
		{"no boundary", false, "concatenate", "cat", "concatenate"},
		{"cjk", true, "我的猫很好", "猫", "我的__很好"},
		{"cjk inside longer han word", true, "熊猫", "猫", "熊__"},
		{"han without cjk boundaries", false, "熊猫", "猫", "熊猫"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewContextExtractor(tt.cjk).Blank(tt.text, tt.word); got != tt.want {
				t.Errorf("Blank(%q, %q) = %q, want %q", tt.text, tt.word, got, tt.want)
			}
		})
	}
}

func TestContextExtractorLargeSource(t *testing.T) {
	const n = 40000
	text := strings.Repeat("the cat sat. ", n) + "终于猫。"

	start := time.Now()
	got := NewContextExtractor(true).Extract("cat", text, 25)
	elapsed := time.Since(start)

	if len(got) != n {
		t.Fatalf("Extract found %d contexts, want %d", len(got), n)
	}
	if want := "the cat sat. the cat sat. the ca"; got[0] != want {
		t.Errorf("first context = %q, want %q", got[0], want)
	}
	if want := "cat sat. the cat sat. the cat sat. 终于猫。"; got[n-1] != want {
		t.Errorf("last context = %q, want %q", got[n-1], want)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Extract over %d bytes took %v", len(text), elapsed)
	}
}
