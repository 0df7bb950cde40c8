package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplitIntoWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"only spaces", "     ", []string{}},
		{"simple words", "hello world", []string{"hello", "world"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"punctuation is kept", "hello, world!", []string{"hello,", "world!"}},
		{"case is kept", "Hello WORLD", []string{"Hello", "WORLD"}},
		{"tab is not a separator", "hello\tworld", []string{"hello\tworld"}},
		{"newline is not a separator", "hello\nworld foo", []string{"hello\nworld", "foo"}},
		{"minus prefix is kept", "-cat dog", []string{"-cat", "dog"}},
		{"lone minus", "cat - dog", []string{"cat", "-", "dog"}},
		{"duplicates are kept", "cat cat", []string{"cat", "cat"}},
		{"unicode", "кот пёс", []string{"кот", "пёс"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIntoWords(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitIntoWords(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStopWords(t *testing.T) {
	sw := NewStopWords()
	sw.Add("the a  in")
	sw.Add("the") // re-adding is a no-op

	if sw.Len() != 3 {
		t.Errorf("Len() = %d, want 3", sw.Len())
	}
	if !reflect.DeepEqual(sw.Words(), []string{"a", "in", "the"}) {
		t.Errorf("Words() = %v, want [a in the]", sw.Words())
	}

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"a", true},
		{"The", false},
		{"the,", false},
		{"", false},
		{"cat", false},
	}
	for _, tt := range tests {
		if got := sw.IsStopWord(tt.word); got != tt.want {
			t.Errorf("IsStopWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestStopWordsFilter(t *testing.T) {
	sw := NewStopWords()
	sw.Add("the a")

	input := []string{"the", "cat", "a", "dog", "the", "cat"}
	got := sw.Filter(input)
	want := []string{"cat", "dog", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
	if input[0] != "the" || len(input) != 6 {
		t.Errorf("Filter() mutated its input: %v", input)
	}

	if got := sw.SplitIntoWordsNoStop("  the  cat sat "); !reflect.DeepEqual(got, []string{"cat", "sat"}) {
		t.Errorf("SplitIntoWordsNoStop() = %v, want [cat sat]", got)
	}
	if got := sw.SplitIntoWordsNoStop("the a"); len(got) != 0 {
		t.Errorf("SplitIntoWordsNoStop() of only stop words = %v, want empty", got)
	}
}

func TestStopWords_Empty(t *testing.T) {
	sw := NewStopWords()
	sw.Add("")
	if sw.Len() != 0 {
		t.Errorf("Len() after adding empty text = %d, want 0", sw.Len())
	}
	got := sw.Filter([]string{"the", "cat"})
	if !reflect.DeepEqual(got, []string{"the", "cat"}) {
		t.Errorf("Filter() with no stop words = %v", got)
	}
}
