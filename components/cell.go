package components

import "github.com/lixenwraith/vi-snake/vmath"

// Cell is one body segment of the snake
// Only the head's heading is set by input; every other heading is copied from
// the cell ahead on each movement tick
type Cell struct {
	Position vmath.Point
	Heading  vmath.Heading
}
