package dictionary

import (
	"errors"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 dictionaries", names)
	}
	if names[0] != "en" || names[1] != "short" {
		t.Errorf("Names() = %v, want [en short]", names)
	}
}

func TestWords(t *testing.T) {
	words, err := Words("en")
	if err != nil {
		t.Fatalf("Words(en) error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("Words(en) returned no words")
	}

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			t.Errorf("Words(en) contains duplicate %q", w)
		}
		seen[w] = struct{}{}
	}
}

func TestWordsUnknown(t *testing.T) {
	_, err := Words("klingon")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Words(klingon) error = %v, want ErrUnknown", err)
	}
}

func TestWordsInRange(t *testing.T) {
	words, err := WordsInRange("en", 4, 6)
	if err != nil {
		t.Fatalf("WordsInRange() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("WordsInRange(en, 4, 6) returned no words")
	}
	for _, w := range words {
		if n := len(w); n < 4 || n > 6 {
			t.Errorf("WordsInRange(en, 4, 6) returned %q (length %d)", w, n)
		}
	}

	// short carries only 4-6 letter words, so a high range comes back empty
	words, err = WordsInRange("short", 9, 10)
	if err != nil {
		t.Fatalf("WordsInRange() error = %v", err)
	}
	if len(words) != 0 {
		t.Errorf("WordsInRange(short, 9, 10) = %v, want empty", words)
	}
}
