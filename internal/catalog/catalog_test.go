package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCategoriesHaveWords(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("expected at least one category")
	}
	for _, key := range c.Keys() {
		cat, ok := c.Get(key)
		if !ok {
			t.Fatalf("key %q not resolvable", key)
		}
		if len(cat.Words) == 0 {
			t.Errorf("category %q has no words", key)
		}
		if cat.NameArabic == "" || cat.NameEnglish == "" {
			t.Errorf("category %q is missing a display name", key)
		}
	}
}

func TestDefaultCategoriesUniqueFirstLetters(t *testing.T) {
	seen := map[string]string{}
	for _, key := range Default().Keys() {
		letter := strings.ToUpper(key[:1])
		if prev, dup := seen[letter]; dup {
			t.Fatalf("categories %q and %q share first letter %q", prev, key, letter)
		}
		seen[letter] = key
	}
}

func TestMatchLetter(t *testing.T) {
	c := Default()
	tests := []struct {
		input   string
		wantKey string
		wantOK  bool
	}{
		{"a", "animals", true},
		{"A", "animals", true},
		{" f ", "food", true},
		{"C", "countries", true},
		{"s", "sports", true},
		{"j", "jobs", true},
		{"z", "", false},
		{"", "", false},
		{"animals", "", false},
	}
	for _, tt := range tests {
		cat, ok := c.MatchLetter(tt.input)
		if ok != tt.wantOK {
			t.Errorf("MatchLetter(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			continue
		}
		if ok && cat.Key != tt.wantKey {
			t.Errorf("MatchLetter(%q) = %q, want %q", tt.input, cat.Key, tt.wantKey)
		}
	}
}
