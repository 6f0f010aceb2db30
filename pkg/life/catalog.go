package life

import (
	"fmt"
	"strings"
)

// Built-in patterns.
var (
	Glider = mustParse("Glider",
		".O.",
		"..O",
		"OOO",
	)
	Block = mustParse("Block",
		"OO",
		"OO",
	)
	Blinker = mustParse("Blinker",
		"O",
		"O",
		"O",
	)
	Galaxy = mustParse("Galaxy",
		"OO.OOOOOO",
		"OO.OOOOOO",
		"OO.......",
		"OO.....OO",
		"OO.....OO",
		"OO.....OO",
		".......OO",
		"OOOOOO.OO",
		"OOOOOO.OO",
	)
	Spaceship = mustParse("Spaceship",
		".OOOO",
		"O...O",
		"....O",
		"O..O.",
	)
)

// Catalog is an ordered set of patterns addressable by case-insensitive name.
type Catalog struct {
	order  []Pattern
	byName map[string]int
}

// NewCatalog returns a catalog holding the given patterns in order.
func NewCatalog(patterns ...Pattern) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(patterns))}
	for _, p := range patterns {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Builtin returns a fresh catalog of the built-in patterns.
func Builtin() *Catalog {
	c, err := NewCatalog(Glider, Block, Blinker, Galaxy, Spaceship)
	if err != nil {
		panic(err)
	}
	return c
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add appends p. Names must be unique regardless of case.
func (c *Catalog) Add(p Pattern) error {
	if p.empty() {
		return fmt.Errorf("%w: empty pattern", ErrInvalidConfiguration)
	}
	key := catalogKey(p.name)
	if _, ok := c.byName[key]; ok {
		return fmt.Errorf("%w: duplicate pattern %q", ErrInvalidConfiguration, p.name)
	}
	c.byName[key] = len(c.order)
	c.order = append(c.order, p)
	return nil
}

// Lookup finds a pattern by name.
func (c *Catalog) Lookup(name string) (Pattern, bool) {
	i, ok := c.byName[catalogKey(name)]
	if !ok {
		return Pattern{}, false
	}
	return c.order[i], true
}

// At returns the pattern at position i in catalog order.
func (c *Catalog) At(i int) (Pattern, bool) {
	if i < 0 || i >= len(c.order) {
		return Pattern{}, false
	}
	return c.order[i], true
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.order) }

// Names lists pattern names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	for i, p := range c.order {
		names[i] = p.name
	}
	return names
}

// Patterns returns the patterns in catalog order.
func (c *Catalog) Patterns() []Pattern {
	return append([]Pattern(nil), c.order...)
}
