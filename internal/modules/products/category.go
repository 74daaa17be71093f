package products

import "strings"

// Category is the closed set of display categories. Unclassified is the
// catch-all bucket and never matches a stored category string.
type Category int

const (
	Unclassified Category = iota
	Solid
	Liquid
	Drip
)

// Categories lists the recognized categories in display order.
var Categories = []Category{Solid, Liquid, Drip}

func (c Category) Label() string {
	switch c {
	case Solid:
		return "Katı Ürünler"
	case Liquid:
		return "Sıvı Ürünler"
	case Drip:
		return "Damlama Ürünleri"
	default:
		return "Diğer"
	}
}

func (c Category) String() string { return c.Label() }

// Recognized reports whether c is one of the selectable categories.
func (c Category) Recognized() bool { return c != Unclassified }

// ParseCategory maps a stored category string to its Category. Blank and
// unknown strings, including the catch-all label itself, map to Unclassified.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if s == c.Label() {
			return c
		}
	}
	return Unclassified
}

// CategoryLabels returns the labels offered in the admin form.
func CategoryLabels() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, c.Label())
	}
	return out
}
