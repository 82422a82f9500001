package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
RGBA is a color with float channels in [0, 1].
*/
type RGBA struct {
	R, G, B, A float64
}

/*
String renders the color as rgba(R, G, B, A) with truncated 0-255 integer
channels and a fractional alpha, e.g. "rgba(31, 119, 180, 1.0)".
*/
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channel(c.R), channel(c.G), channel(c.B), formatAlpha(c.A))
}

func channel(v float64) int {
	return int(v * 255)
}

// formatAlpha prints the shortest representation that keeps a decimal point.
func formatAlpha(a float64) string {
	s := strconv.FormatFloat(a, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

/*
Colormap is a listed colormap: a fixed sequence of colors addressed by a
position in [0, 1].
*/
type Colormap struct {
	Name   string
	colors []RGBA
	under  RGBA
	over   RGBA
	bad    RGBA
}

/*
NewColormap creates a listed colormap from hex colors such as "#1f77b4".

Positions below 0 map to the first color, positions at or above 1 map to
the last color and NaN maps to fully transparent black.
*/
func NewColormap(name string, hexColors []string) (*Colormap, error) {
	if len(hexColors) == 0 {
		return nil, fmt.Errorf("colormap %s has no colors", name)
	}

	colors := make([]RGBA, len(hexColors))
	for i, h := range hexColors {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: %w", name, err)
		}
		colors[i] = c
	}

	return &Colormap{
		Name:   name,
		colors: colors,
		under:  colors[0],
		over:   colors[len(colors)-1],
	}, nil
}

/*
N returns the number of colors in the map
*/
func (m *Colormap) N() int {
	return len(m.colors)
}

/*
At returns the color at position x.

The position is scaled by N and truncated; x == 1 selects the last color.
*/
func (m *Colormap) At(x float64) RGBA {
	if math.IsNaN(x) {
		return m.bad
	}

	n := float64(len(m.colors))
	xa := x * n
	if xa == n {
		xa = n - 1
	}

	switch {
	case xa < 0:
		return m.under
	case xa >= n:
		return m.over
	default:
		return m.colors[int(xa)]
	}
}

/*
Label returns the color for a label index.

The lookup position is idx / numClasses. For a map with exactly numClasses
colors this selects color idx for every idx in [0, numClasses).
*/
func (m *Colormap) Label(idx, numClasses int) RGBA {
	return m.At(float64(idx) / float64(numClasses))
}

/*
ParseHex parses "#rrggbb" or "#rrggbbaa" into an RGBA with channels divided
by 255.
*/
func ParseHex(h string) (RGBA, error) {
	s := strings.TrimPrefix(h, "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color %q", h)
	}

	var channels [4]float64
	channels[3] = 1
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", h, err)
		}
		channels[i] = float64(v) / 255
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}
