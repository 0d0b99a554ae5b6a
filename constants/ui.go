package constants

// UI Layout Constants
const (
	// CellColumns is how many terminal columns one grid cell occupies
	// Two columns make a cell look roughly square in most fonts
	CellColumns = 2

	// StatusBarHeight is the number of rows reserved below the playfield
	StatusBarHeight = 1

	// BodyGlyph is drawn for every body cell
	BodyGlyph = '█'

	// EggGlyph is drawn for eggs
	EggGlyph = '●'

	// VirusGlyph is drawn for viruses
	VirusGlyph = '✶'

	// CarryGlyph marks the cell currently carrying a swallowed egg
	CarryGlyph = '◉'

	// OutlineLeft and OutlineRight bracket body cells while the flash outline is on
	OutlineLeft  = '['
	OutlineRight = ']'
)

// Status Bar Text
const (
	StatusScoreFormat  = " Score: %d "
	StatusTimeFormat   = " Time: %.1fs "
	StatusLengthFormat = " Length: %d "
	StatusPaused       = " PAUSED "
	StatusHelp         = " arrows/wasd move  p pause  q quit "
)
