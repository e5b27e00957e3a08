// Package catalog holds the static category/word lists the game draws
// secret words from. The data is compiled in and read-only.
package catalog

import "strings"

type Category struct {
	Key         string
	NameArabic  string
	NameEnglish string
	Words       []string
}

type Catalog struct {
	byKey map[string]Category
	keys  []string
}

// New builds a catalog preserving the given category order. Category keys
// must have unique first letters; letter selection matches on them.
func New(categories []Category) *Catalog {
	c := &Catalog{byKey: make(map[string]Category, len(categories))}
	for _, cat := range categories {
		if _, exists := c.byKey[cat.Key]; exists {
			continue
		}
		c.byKey[cat.Key] = cat
		c.keys = append(c.keys, cat.Key)
	}
	return c
}

func Default() *Catalog {
	return New(defaultCategories)
}

func (c *Catalog) Get(key string) (Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

func (c *Catalog) Keys() []string {
	return c.keys
}

func (c *Catalog) Len() int {
	return len(c.keys)
}

// MatchLetter resolves user input against category keys by case-insensitive
// first-letter comparison ("a" or "A" selects "animals").
func (c *Catalog) MatchLetter(input string) (Category, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Category{}, false
	}
	for _, key := range c.keys {
		if strings.EqualFold(input, key[:1]) {
			return c.byKey[key], true
		}
	}
	return Category{}, false
}
