package tui

import (
	"time"

	"github.com/abhisek/intervu/internal/questiongen"
)

// tickMsg is sent every second to advance the countdown.
type tickMsg time.Time

// questionReadyMsg is sent when the current question has been installed.
type questionReadyMsg struct {
	Question questiongen.Question
}

// submitDoneMsg is sent when an answer's evaluation merge finished.
type submitDoneMsg struct {
	Accepted bool
}
