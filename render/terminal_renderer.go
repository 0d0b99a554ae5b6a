// Package render draws simulation snapshots on a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TerminalRenderer maps the pixel-unit playfield onto terminal cells
// One grid cell is cellColumns terminal columns wide and one row tall
type TerminalRenderer struct {
	screen      tcell.Screen
	cellColumns int
	gradient    bool
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, cfg config.RenderConfig) *TerminalRenderer {
	cols := cfg.CellColumns
	if cols < 1 {
		cols = 1
	}
	return &TerminalRenderer{
		screen:      screen,
		cellColumns: cols,
		gradient:    cfg.Gradient,
	}
}

// RequiredSize returns the terminal size that shows the whole playfield and status bar
func (r *TerminalRenderer) RequiredSize(grid config.GridConfig) (width, height int) {
	return grid.Columns * r.cellColumns, grid.Rows + constants.StatusBarHeight
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	// Collectibles first so the body covers any it overlaps
	r.drawCollectibles(snap, defaultStyle)
	r.drawBody(snap, defaultStyle)
	r.drawStatusBar(snap)

	r.screen.Show()
}

// cellOrigin converts a pixel-unit position to the top-left terminal cell
// Returns false when it falls outside the visible playfield
func (r *TerminalRenderer) cellOrigin(snap engine.Snapshot, x, y int) (int, int, bool) {
	if snap.CellWidth <= 0 || snap.CellHeight <= 0 {
		return 0, 0, false
	}
	sx := (x / snap.CellWidth) * r.cellColumns
	sy := y / snap.CellHeight

	w, h := r.screen.Size()
	if sx < 0 || sy < 0 || sx+r.cellColumns > w || sy >= h-constants.StatusBarHeight {
		return 0, 0, false
	}
	return sx, sy, true
}

// fillCell draws glyph across every terminal column of one grid cell
func (r *TerminalRenderer) fillCell(sx, sy int, glyph rune, style tcell.Style) {
	for i := 0; i < r.cellColumns; i++ {
		r.screen.SetContent(sx+i, sy, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawCollectibles(snap engine.Snapshot, defaultStyle tcell.Style) {
	for _, c := range snap.Collectibles {
		sx, sy, ok := r.cellOrigin(snap, c.Position.X, c.Position.Y)
		if !ok {
			continue
		}

		var glyph rune
		var style tcell.Style
		switch {
		case c.Kind == components.KindVirus:
			glyph = constants.VirusGlyph
			style = defaultStyle.Foreground(RgbVirus)
		case c.Special:
			glyph = constants.EggGlyph
			style = defaultStyle.Foreground(RgbSpecialEgg).Bold(true)
		default:
			glyph = constants.EggGlyph
			style = defaultStyle.Foreground(RgbEgg)
		}

		// Inset: glyph in the first column, padding after
		r.screen.SetContent(sx, sy, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawBody(snap engine.Snapshot, defaultStyle tcell.Style) {
	length := len(snap.Cells)

	// Tail first so the head is on top when cells share a position
	for i := length - 1; i >= 0; i-- {
		cell := snap.Cells[i]
		sx, sy, ok := r.cellOrigin(snap, cell.Position.X, cell.Position.Y)
		if !ok {
			continue
		}

		color := RgbFlatBody
		if r.gradient {
			color = BodyColor(i, length)
		}

		switch {
		case snap.FlashOutline:
			// Outline only: brackets in the body colour over the background
			style := defaultStyle.Foreground(color)
			if r.cellColumns >= 2 {
				r.screen.SetContent(sx, sy, constants.OutlineLeft, nil, style)
				for c := 1; c < r.cellColumns-1; c++ {
					r.screen.SetContent(sx+c, sy, ' ', nil, style)
				}
				r.screen.SetContent(sx+r.cellColumns-1, sy, constants.OutlineRight, nil, style)
			} else {
				r.screen.SetContent(sx, sy, constants.OutlineLeft, nil, style)
			}
		case cell.Carrying:
			style := defaultStyle.Foreground(RgbCarry).Background(color)
			r.fillCell(sx, sy, ' ', defaultStyle.Background(color))
			r.screen.SetContent(sx, sy, constants.CarryGlyph, nil, style)
		default:
			r.fillCell(sx, sy, constants.BodyGlyph, defaultStyle.Foreground(color))
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot) {
	w, h := r.screen.Size()
	y := h - constants.StatusBarHeight
	if y < 0 {
		return
	}

	barStyle := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBarBg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	x := 0
	x = r.drawText(x, y, w, fmt.Sprintf(constants.StatusScoreFormat, snap.Score), barStyle)
	x = r.drawText(x, y, w, fmt.Sprintf(constants.StatusTimeFormat, snap.Elapsed), barStyle)
	x = r.drawText(x, y, w, fmt.Sprintf(constants.StatusLengthFormat, len(snap.Cells)), barStyle)
	if snap.Paused {
		x = r.drawText(x, y, w, constants.StatusPaused, barStyle.Foreground(RgbStatusPaused).Bold(true))
	}

	// Help is right-aligned and dropped when it does not fit
	help := []rune(constants.StatusHelp)
	if start := w - len(help); start >= x {
		r.drawText(start, y, w, constants.StatusHelp, barStyle.Foreground(RgbStatusHelp))
	}
}

// drawText writes s from x, clipped at maxX, and returns the column after it
func (r *TerminalRenderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
