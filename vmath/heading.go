package vmath

// Heading is an axis-aligned unit direction
// Screen coordinates: X grows right, Y grows down
type Heading uint8

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingNames = [...]string{
	HeadingNone:  "none",
	HeadingUp:    "up",
	HeadingDown:  "down",
	HeadingLeft:  "left",
	HeadingRight: "right",
}

// Delta returns the unit step for the heading, (0,0) for HeadingNone
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversed heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return HeadingNone
}

// IsOpposite reports whether other is the exact reversal of h
func (h Heading) IsOpposite(other Heading) bool {
	return h != HeadingNone && h.Opposite() == other
}

// Valid reports whether h is one of the four cardinal headings
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "invalid"
}

// ParseHeading resolves a heading name as produced by String
func ParseHeading(name string) (Heading, bool) {
	for i, n := range headingNames {
		if n == name && Heading(i) != HeadingNone {
			return Heading(i), true
		}
	}
	return HeadingNone, false
}
