package tui

type statusMsg string

type errMsg struct{ error }

// submitDoneMsg ends the simulated submission delay.
type submitDoneMsg struct {
	reference string
}

// formResetMsg returns the form to pristine after the success screen.
type formResetMsg struct{}

type exportDoneMsg struct {
	path string
	rows int
}
