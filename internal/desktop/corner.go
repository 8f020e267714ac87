package desktop

import (
	"fmt"
	"strings"
)

// Corner is a monitor corner a window can be snapped into
type Corner int

const (
	TopLeft Corner = iota
	BottomLeft
	TopRight
	BottomRight
)

var cornerNames = map[Corner]string{
	TopLeft:     "top-left",
	BottomLeft:  "bottom-left",
	TopRight:    "top-right",
	BottomRight: "bottom-right",
}

var cornerAliases = map[string]Corner{
	"top-left":     TopLeft,
	"tl":           TopLeft,
	"bottom-left":  BottomLeft,
	"bl":           BottomLeft,
	"top-right":    TopRight,
	"tr":           TopRight,
	"bottom-right": BottomRight,
	"br":           BottomRight,
}

// Valid reports whether c names one of the four corners
func (c Corner) Valid() bool {
	_, ok := cornerNames[c]
	return ok
}

// IsRight reports whether the corner is on the right monitor edge
func (c Corner) IsRight() bool { return c == TopRight || c == BottomRight }

// IsBottom reports whether the corner is on the bottom monitor edge
func (c Corner) IsBottom() bool { return c == BottomLeft || c == BottomRight }

func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Corner(%d)", int(c))
}

// ParseCorner converts a corner name or its two-letter alias
func ParseCorner(s string) (Corner, error) {
	c, ok := cornerAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown corner %q (want top-left, bottom-left, top-right or bottom-right)", ErrInvalidArgument, s)
	}

	return c, nil
}

// CornerNames lists the canonical corner names in declaration order
func CornerNames() []string {
	return []string{"top-left", "bottom-left", "top-right", "bottom-right"}
}
