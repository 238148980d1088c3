package game

import (
	"encoding/json"
	"fmt"
)

// Color is a transport card color, or a route color requirement.
// The zero value means "no color" and doubles as the empty-card marker.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorBlack
	ColorWhite
	// ColorLocomotive is the wildcard card color. It substitutes for any
	// required color when claiming a route.
	ColorLocomotive
	// ColorAny marks a gray route: not tied to one fixed color.
	ColorAny
)

var colorNames = map[Color]string{
	ColorNone:       "none",
	ColorRed:        "red",
	ColorOrange:     "orange",
	ColorYellow:     "yellow",
	ColorGreen:      "green",
	ColorBlue:       "blue",
	ColorPurple:     "purple",
	ColorBlack:      "black",
	ColorWhite:      "white",
	ColorLocomotive: "locomotive",
	ColorAny:        "any",
}

var colorValues = func() map[string]Color {
	m := make(map[string]Color, len(colorNames))
	for c, n := range colorNames {
		m[n] = c
	}
	return m
}()

// TrainColors lists the eight real card colors (no locomotive, no gray).
var TrainColors = []Color{
	ColorRed, ColorOrange, ColorYellow, ColorGreen,
	ColorBlue, ColorPurple, ColorBlack, ColorWhite,
}

func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor returns the color for a wire name such as "red" or "locomotive".
func ParseColor(name string) (Color, error) {
	if c, ok := colorValues[name]; ok && c != ColorNone {
		return c, nil
	}
	return ColorNone, fmt.Errorf("unknown color %q", name)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := colorValues[name]
	if !ok {
		return fmt.Errorf("unknown color %q", name)
	}
	*c = parsed
	return nil
}
