package components

// Flash is the warning raised by a rejected reversal
// Remaining counts down once per timer firing; odd values draw the outline
type Flash struct {
	Remaining int
	Timer     Timer
}

// NewFlash creates an idle flash whose timer is stopped until raised
func NewFlash(interval float64) Flash {
	return Flash{Timer: NewStoppedTimer(interval)}
}

// Raise sets the count and resumes the timer
func (f *Flash) Raise(count int) {
	f.Remaining = count
	f.Timer.Play()
}

// Active reports whether the flash is still counting down
func (f *Flash) Active() bool {
	return f.Remaining > 0
}

// Outline reports whether the current count is odd
func (f *Flash) Outline() bool {
	return f.Remaining%2 == 1
}
