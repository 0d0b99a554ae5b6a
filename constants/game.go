package constants

// Grid Geometry
// The playfield is a 1400x800 pixel window divided into 20x20 cells
const (
	// CellWidth is the width of one grid cell in pixel units
	CellWidth = 20

	// CellHeight is the height of one grid cell in pixel units
	CellHeight = 20

	// WindowWidth is the playfield width in pixel units
	WindowWidth = 1400

	// WindowHeight is the playfield height in pixel units
	WindowHeight = 800

	// GridColumns is the number of cells across
	GridColumns = WindowWidth / CellWidth

	// GridRows is the number of cells down
	GridRows = WindowHeight / CellHeight
)

// Simulation Timer Intervals (seconds)
const (
	// MovementInterval gates body propagation
	MovementInterval = 0.18

	// CarryInterval gates the swallowed-egg bubble advancing through the body
	CarryInterval = 0.025

	// FlashInterval gates each flash count decrement after a rejected turn
	FlashInterval = 0.3
)

// Gameplay Rules
const (
	// FlashMax is the flash count raised by a rejected reversal
	FlashMax = 6

	// EggCredit is the score and growth granted by an ordinary egg
	EggCredit = 1

	// SpecialEggCredit is the score and growth granted by a special egg
	SpecialEggCredit = 3

	// SpecialEggChance is the probability a relocated egg becomes special
	SpecialEggChance = 0.3

	// InitialSnakeLength is the number of cells the snake starts with
	InitialSnakeLength = 2

	// EggCount is the number of eggs on the grid
	EggCount = 1

	// VirusCount is the number of inert viruses placed at start
	VirusCount = 9
)
