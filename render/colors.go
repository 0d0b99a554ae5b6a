package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbEgg        = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbSpecialEgg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbVirus      = tcell.NewRGBColor(120, 200, 60)  // Sickly green
	RgbCarry      = tcell.NewRGBColor(255, 255, 160) // Pale yellow, egg seen through the body
	RgbFlatBody   = tcell.NewRGBColor(200, 100, 160) // Body when the gradient is off

	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBarBg  = tcell.NewRGBColor(50, 50, 50)    // Dark gray
	RgbStatusPaused = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbStatusHelp   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// BodyColor returns the colour of body cell index in a body of length cells
// Red rises toward the tail and blue toward the head; green is fixed
func BodyColor(index, length int) tcell.Color {
	if length < 1 {
		length = 1
	}
	ratio := float64(index+1) / float64(length)
	iratio := float64(length-index+1) / float64(length)

	return tcell.NewRGBColor(channel(255*ratio), 100, channel(160*iratio))
}

// channel saturates a colour component to 0-255
func channel(v float64) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return int32(v)
	}
}
