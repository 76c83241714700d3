package brickcolor

import (
	"fmt"
	"image/color"
	"sync"

	"rbxconv/pkg/cfg"
)

// Matcher answers nearest-color and id-to-color queries against a
// Palette. It is safe for concurrent use.
type Matcher struct {
	palette *Palette
	tree    *colorTree
}

// NewMatcher returns a Matcher over p.
func NewMatcher(p *Palette) (*Matcher, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	return &Matcher{
		palette: p,
		tree:    newColorTree(p.entries),
	}, nil
}

var (
	defaultMatcherOnce sync.Once
	defaultMatcher     *Matcher
)

// DefaultMatcher returns a Matcher over the shipped palette.
func DefaultMatcher() *Matcher {
	defaultMatcherOnce.Do(func() {
		m, err := NewMatcher(Default())
		if err != nil {
			panic(fmt.Sprintf("brickcolor: %s", err))
		}
		defaultMatcher = m
	})
	return defaultMatcher
}

// Palette returns the palette m was built from.
func (m *Matcher) Palette() *Palette {
	return m.palette
}

// Distance is the squared euclidean distance between two colors.
func Distance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func checkChannel(name string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %s = %d", ErrOutOfRange, name, v)
	}
	return uint8(v), nil
}

// Nearest returns the entry closest to the color (r, g, b). When several
// entries are equally close, the one declared first in the palette wins.
// Channels outside [0, 255] are rejected, not clamped.
func (m *Matcher) Nearest(r, g, b int) (Entry, error) {
	var target RGB
	var err error
	if target.R, err = checkChannel("red", r); err != nil {
		return Entry{}, err
	}
	if target.G, err = checkChannel("green", g); err != nil {
		return Entry{}, err
	}
	if target.B, err = checkChannel("blue", b); err != nil {
		return Entry{}, err
	}
	return m.nearest(target), nil
}

// NearestColor returns the entry closest to c, ignoring alpha.
func (m *Matcher) NearestColor(c color.Color) Entry {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return m.nearest(RGB{n.R, n.G, n.B})
}

func (m *Matcher) nearest(target RGB) Entry {
	if cfg.IndexedLookup {
		return m.palette.entries[m.tree.nearest(target)]
	}
	return m.palette.entries[scanNearest(m.palette.entries, target)]
}

// scanNearest is the reference selection: the first entry, in order,
// with the smallest distance.
func scanNearest(entries []Entry, target RGB) int {
	best := 0
	bestDist := Distance(target, entries[0].Color)
	for i := 1; i < len(entries); i++ {
		if d := Distance(target, entries[i].Color); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ColorOf returns the color of the entry with the given id.
func (m *Matcher) ColorOf(id int) (RGB, error) {
	e, err := m.palette.ByID(id)
	if err != nil {
		return RGB{}, err
	}
	return e.Color, nil
}
