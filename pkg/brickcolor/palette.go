// Package brickcolor maps arbitrary RGB colors onto the fixed, legacy
// BrickColor palette and back.
//
// The palette is an ordered table of 208 entries. Each entry has a
// numeric id that is unique but neither contiguous nor sorted, and the
// order of the table is what breaks ties when two entries are equally
// close to a color. Changing the palette means editing table.go and
// recompiling; it cannot be loaded from anywhere else.
package brickcolor

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
)

var (
	// ErrOutOfRange is returned when a channel is outside [0, 255].
	ErrOutOfRange = errors.New("channel out of range")
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("brick color not found")
	// ErrEmptyPalette is returned when a palette has no entries.
	ErrEmptyPalette = errors.New("empty palette")
	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate brick color id")
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The alpha channel is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Entry is a single palette color.
type Entry struct {
	ID    int
	Name  string
	Color RGB
}

// Palette is an immutable, ordered list of entries.
type Palette struct {
	entries []Entry
	byID    map[int]int
}

// NewPalette copies entries into a new Palette, keeping their order.
func NewPalette(entries []Entry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPalette
	}
	p := &Palette{
		entries: make([]Entry, len(entries)),
		byID:    make(map[int]int, len(entries)),
	}
	copy(p.entries, entries)
	for i, e := range p.entries {
		if j, found := p.byID[e.ID]; found {
			return nil, fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicateID, e.ID, j, i)
		}
		p.byID[e.ID] = i
	}
	return p, nil
}

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
)

// Default returns the shipped BrickColor palette. It is built on first
// use and shared by all callers.
func Default() *Palette {
	defaultOnce.Do(func() {
		p, err := NewPalette(table)
		if err != nil {
			panic(fmt.Sprintf("brickcolor: invalid built-in table: %s", err))
		}
		defaultPalette = p
	})
	return defaultPalette
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns the entries in declaration order. The returned slice
// is a copy.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// ByID returns the entry with the given id.
func (p *Palette) ByID(id int) (Entry, error) {
	i, found := p.byID[id]
	if !found {
		return Entry{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return p.entries[i], nil
}

// ImagePalette returns the palette as a color.Palette, in declaration
// order, so index i of the result is entry i of Entries.
func (p *Palette) ImagePalette() color.Palette {
	pal := make(color.Palette, len(p.entries))
	for i, e := range p.entries {
		pal[i] = color.RGBA{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: 0xff}
	}
	return pal
}
