package selection

import (
	"fmt"
	"strings"
)

// Criterion selects which color component(s) drive the difference metric.
type Criterion int

const (
	// Composite uses the maximum absolute delta over the R, G and B channels.
	Composite Criterion = iota
	// Red compares the red channel only.
	Red
	// Green compares the green channel only.
	Green
	// Blue compares the blue channel only.
	Blue
	// Hue compares HSV hue with wrap-around at 360°. Achromatic colors
	// (grays, black, white) have hue 0, the hue of pure red, so under Hue
	// a gray pixel matches a red reference at any threshold. Combine with a
	// Saturation selection to exclude grays.
	Hue
	// Saturation compares HSV saturation.
	Saturation
	// Value compares HSV value.
	Value
)

var criterionNames = map[Criterion]string{
	Composite:  "composite",
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Hue:        "hue",
	Saturation: "saturation",
	Value:      "value",
}

// String returns the lowercase name used in configuration and tool arguments.
func (c Criterion) String() string {
	if name, ok := criterionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Criterion(%d)", int(c))
}

// Valid reports whether c is one of the defined criteria.
func (c Criterion) Valid() bool {
	_, ok := criterionNames[c]
	return ok
}

// ParseCriterion converts a name such as "composite" or "hue" into a Criterion.
// Matching is case-insensitive; "r", "g", "b", "h", "s" and "v" are accepted
// as short forms. An empty string yields Composite.
func ParseCriterion(name string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "composite":
		return Composite, nil
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	case "hue", "h":
		return Hue, nil
	case "saturation", "s":
		return Saturation, nil
	case "value", "v":
		return Value, nil
	}
	return Composite, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
}

// CriterionNames lists the accepted criterion names in declaration order.
func CriterionNames() []string {
	names := make([]string, 0, len(criterionNames))
	for c := Composite; c <= Value; c++ {
		names = append(names, c.String())
	}
	return names
}
