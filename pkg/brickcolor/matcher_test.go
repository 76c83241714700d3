package brickcolor_test

import (
	"errors"
	"image/color"
	"sync"
	"testing"

	"rbxconv/pkg/brickcolor"
	"rbxconv/pkg/cfg"

	"github.com/google/go-cmp/cmp"
)

// withLookup runs f once with the index and once with the linear scan.
func withLookup(t *testing.T, f func(t *testing.T)) {
	saved := cfg.IndexedLookup
	defer func() { cfg.IndexedLookup = saved }()

	for _, indexed := range []bool{true, false} {
		name := "scan"
		if indexed {
			name = "indexed"
		}
		cfg.IndexedLookup = indexed
		t.Run(name, f)
	}
}

func TestNearestScenarios(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	withLookup(t, func(t *testing.T) {
		tests := []struct {
			r, g, b int
			wantID  int
			dist    int
		}{
			{r: 242, g: 243, b: 243, wantID: 1, dist: 0},
			{r: 0, g: 0, b: 0, wantID: 1003, dist: 867},
			{r: 255, g: 0, b: 0, wantID: 1004, dist: 0},
			{r: 255, g: 255, b: 255, wantID: 1001, dist: 147},
			{r: 16, g: 18, b: 17, wantID: 1003, dist: 2},
		}
		for _, test := range tests {
			e, err := m.Nearest(test.r, test.g, test.b)
			if err != nil {
				t.Fatalf("Nearest(%d, %d, %d): %s", test.r, test.g, test.b, err)
			}
			if e.ID != test.wantID {
				t.Errorf("Nearest(%d, %d, %d): got id %d, want %d", test.r, test.g, test.b, e.ID, test.wantID)
			}
			target := brickcolor.RGB{R: uint8(test.r), G: uint8(test.g), B: uint8(test.b)}
			if d := brickcolor.Distance(target, e.Color); d != test.dist {
				t.Errorf("Nearest(%d, %d, %d): got distance %d, want %d", test.r, test.g, test.b, d, test.dist)
			}
		}
	})
}

func TestNearestReflexive(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	withLookup(t, func(t *testing.T) {
		firstWithColor := map[brickcolor.RGB]brickcolor.Entry{}
		for _, e := range m.Palette().Entries() {
			if _, found := firstWithColor[e.Color]; !found {
				firstWithColor[e.Color] = e
			}
		}
		for _, e := range m.Palette().Entries() {
			got, err := m.Nearest(int(e.Color.R), int(e.Color.G), int(e.Color.B))
			if err != nil {
				t.Fatalf("Nearest(%s): %s", e.Color, err)
			}
			if diff := cmp.Diff(firstWithColor[e.Color], got); diff != "" {
				t.Errorf("Nearest(%s) incorrect: %s", e.Color, diff)
			}
		}
	})
}

func TestNearestTieBreak(t *testing.T) {
	// Declaration order wins, not id order.
	p, err := brickcolor.NewPalette([]brickcolor.Entry{
		{ID: 50, Name: "left", Color: brickcolor.RGB{R: 10, G: 100, B: 100}},
		{ID: 5, Name: "right", Color: brickcolor.RGB{R: 30, G: 100, B: 100}},
		{ID: 1, Name: "twin", Color: brickcolor.RGB{R: 10, G: 100, B: 100}},
		{ID: 2, Name: "far", Color: brickcolor.RGB{R: 200, G: 200, B: 200}},
	})
	if err != nil {
		t.Fatal(err)
	}
	m, err := brickcolor.NewMatcher(p)
	if err != nil {
		t.Fatal(err)
	}

	withLookup(t, func(t *testing.T) {
		tests := []struct {
			r, g, b int
			wantID  int
		}{
			{r: 20, g: 100, b: 100, wantID: 50},
			{r: 10, g: 100, b: 100, wantID: 50},
			{r: 21, g: 100, b: 100, wantID: 5},
			{r: 255, g: 255, b: 255, wantID: 2},
		}
		for _, test := range tests {
			e, err := m.Nearest(test.r, test.g, test.b)
			if err != nil {
				t.Fatalf("Nearest(%d, %d, %d): %s", test.r, test.g, test.b, err)
			}
			if e.ID != test.wantID {
				t.Errorf("Nearest(%d, %d, %d): got id %d, want %d", test.r, test.g, test.b, e.ID, test.wantID)
			}
		}
	})
}

func TestNearestOutOfRange(t *testing.T) {
	m := brickcolor.DefaultMatcher()
	for _, c := range [][3]int{
		{256, 0, 0},
		{-1, 0, 0},
		{300, 0, 0},
		{0, 256, 0},
		{0, -1, 0},
		{0, 0, 256},
		{0, 0, -1000},
	} {
		if _, err := m.Nearest(c[0], c[1], c[2]); !errors.Is(err, brickcolor.ErrOutOfRange) {
			t.Errorf("Nearest(%v): got error %v, want ErrOutOfRange", c, err)
		}
	}
}

func TestNearestColor(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	e := m.NearestColor(color.RGBA{R: 242, G: 243, B: 243, A: 0xff})
	if e.ID != 1 {
		t.Errorf("got id %d, want 1", e.ID)
	}
	e = m.NearestColor(color.Gray{Y: 0})
	if e.ID != 1003 {
		t.Errorf("got id %d, want 1003", e.ID)
	}
	e = m.NearestColor(brickcolor.RGB{R: 0, G: 0, B: 255})
	if e.ID != 1010 {
		t.Errorf("got id %d, want 1010", e.ID)
	}
}

func TestColorOf(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	c, err := m.ColorOf(1)
	if err != nil {
		t.Fatalf("ColorOf(1): %s", err)
	}
	if diff := cmp.Diff(brickcolor.RGB{R: 242, G: 243, B: 243}, c); diff != "" {
		t.Errorf("ColorOf(1) incorrect: %s", diff)
	}

	for _, e := range m.Palette().Entries() {
		c, err := m.ColorOf(e.ID)
		if err != nil {
			t.Fatalf("ColorOf(%d): %s", e.ID, err)
		}
		if c != e.Color {
			t.Errorf("ColorOf(%d): got %s, want %s", e.ID, c, e.Color)
		}
	}

	if _, err := m.ColorOf(9999); !errors.Is(err, brickcolor.ErrNotFound) {
		t.Errorf("ColorOf(9999): got error %v, want ErrNotFound", err)
	}
}

func TestNewMatcherEmpty(t *testing.T) {
	if _, err := brickcolor.NewMatcher(nil); !errors.Is(err, brickcolor.ErrEmptyPalette) {
		t.Errorf("got error %v, want ErrEmptyPalette", err)
	}
}

func TestNearestConcurrent(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	want := make([]brickcolor.Entry, 256)
	for v := range want {
		want[v], _ = m.Nearest(v, 255-v, v/2)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if brickcolor.DefaultMatcher() != m {
				errs <- "DefaultMatcher built more than once"
				return
			}
			for v := range want {
				got, err := m.Nearest(v, 255-v, v/2)
				if err != nil || got != want[v] {
					errs <- "Nearest is not deterministic"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
