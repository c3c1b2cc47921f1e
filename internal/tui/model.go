// Package tui is the terminal front end for the interview engine. It is a
// thin rendering layer: every state transition goes through the session
// controller, and LLM-backed steps run as async commands so the event loop
// never blocks.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/intake"
	"github.com/abhisek/intervu/internal/interview"
)

type view int

const (
	viewResumePrompt view = iota
	viewProfile
	viewInterview
	viewPaused
	viewSummary
)

const profileFields = 3 // name, email, phone

// Model is the root Bubble Tea model.
type Model struct {
	ctrl *interview.Controller
	role string

	view     view
	inputs   [profileFields]textinput.Model
	focusIdx int
	answer   textarea.Model
	spin     spinner.Model
	busy     bool
	errMsg   string

	width  int
	height int
}

// New creates the root model. prefill carries contact fields parsed from a
// resume; restored is non-nil when an unfinished session was found.
func New(ctrl *interview.Controller, role string, prefill intake.Contact, restored *interview.Session) Model {
	m := Model{
		ctrl: ctrl,
		role: role,
		view: viewProfile,
		spin: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	placeholders := [profileFields]string{"Full name", "Email", "Phone"}
	values := [profileFields]string{prefill.Name, prefill.Email, prefill.Phone}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 80
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}

	m.answer = textarea.New()
	m.answer.Placeholder = "Type your answer..."
	m.answer.SetHeight(6)

	if restored != nil {
		m.view = viewResumePrompt
	}

	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == viewProfile {
		return m.inputs[0].Focus()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.answer.SetWidth(min(m.width-8, 80))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick()

	case questionReadyMsg:
		return m.handleQuestionReady()

	case submitDoneMsg:
		return m.handleSubmitDone()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.forwardToActiveInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		// Persist a paused marker so the interview survives the quit.
		m.ctrl.Pause(context.Background())
		return m, tea.Quit
	}

	switch m.view {
	case viewResumePrompt:
		switch key {
		case "r", "R", "enter":
			m.ctrl.Resume(context.Background())
			m.view = viewInterview
			return m.continueInterview()
		case "n", "N":
			m.ctrl.Reset(context.Background())
			m.view = viewProfile
			return m, m.inputs[0].Focus()
		}
		return m, nil

	case viewProfile:
		switch key {
		case "enter":
			if m.focusIdx < profileFields-1 {
				return m.focusProfileField(m.focusIdx + 1)
			}
			return m.beginInterview()
		case "tab", "down":
			return m.focusProfileField((m.focusIdx + 1) % profileFields)
		case "shift+tab", "up":
			return m.focusProfileField((m.focusIdx + profileFields - 1) % profileFields)
		}

	case viewInterview:
		if m.busy {
			return m, nil
		}
		switch key {
		case "ctrl+d":
			return m.submitCurrent()
		case "esc":
			m.ctrl.Pause(context.Background())
			m.view = viewPaused
			return m, nil
		}

	case viewPaused:
		switch key {
		case "r", "R", "enter":
			m.ctrl.Resume(context.Background())
			m.view = viewInterview
			return m.continueInterview()
		case "q", "Q":
			return m, tea.Quit
		}
		return m, nil

	case viewSummary:
		if key == "q" || key == "Q" || key == "enter" {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.forwardToActiveInput(msg)
}

func (m Model) forwardToActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.view {
	case viewProfile:
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	case viewInterview:
		if m.busy {
			return m, nil
		}
		m.answer, cmd = m.answer.Update(msg)
		// Keep the controller's draft current so timer expiry submits
		// whatever has been typed.
		m.ctrl.SetDraft(m.answer.Value())
	}

	return m, cmd
}

func (m Model) focusProfileField(idx int) (tea.Model, tea.Cmd) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	return m, m.inputs[idx].Focus()
}

func (m Model) beginInterview() (tea.Model, tea.Cmd) {
	candidate := interview.Candidate{
		Name:  strings.TrimSpace(m.inputs[0].Value()),
		Email: strings.TrimSpace(m.inputs[1].Value()),
		Phone: strings.TrimSpace(m.inputs[2].Value()),
	}

	_, err := m.ctrl.BeginSession(context.Background(), candidate, m.role)
	if err != nil {
		m.errMsg = err.Error()
		// Put focus on the first empty field.
		for i, v := range []string{candidate.Name, candidate.Email, candidate.Phone} {
			if v == "" {
				return m.focusProfileField(i)
			}
		}
		return m, nil
	}

	m.errMsg = ""
	m.view = viewInterview
	return m.continueInterview()
}

// continueInterview kicks off whatever the current index needs: question
// generation if absent, otherwise the countdown.
func (m Model) continueInterview() (tea.Model, tea.Cmd) {
	if m.ctrl.NeedsQuestion() {
		m.busy = true
		return m, tea.Batch(m.generateCmd(), m.spin.Tick)
	}

	m.resetAnswerArea()
	return m, tea.Batch(m.answer.Focus(), tickCmd())
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sess := m.ctrl.GetSnapshot()
	if m.view != viewInterview || sess.Phase != interview.PhaseInProgress {
		return m, nil
	}

	_, expired := m.ctrl.Tick()
	if expired {
		// Auto-submit whatever was composed, possibly nothing.
		return m.submitCurrent()
	}
	if m.busy {
		return m, nil
	}
	return m, tickCmd()
}

func (m Model) submitCurrent() (tea.Model, tea.Cmd) {
	sess := m.ctrl.GetSnapshot()
	if sess.CurrentQuestion() == nil || sess.Answered(sess.CurrentIndex) {
		return m, nil
	}

	m.busy = true
	index := sess.CurrentIndex
	text := m.answer.Value()
	return m, tea.Batch(m.submitCmd(index, text), m.spin.Tick)
}

func (m Model) handleQuestionReady() (tea.Model, tea.Cmd) {
	m.busy = false
	m.resetAnswerArea()
	return m, tea.Batch(m.answer.Focus(), tickCmd())
}

func (m Model) handleSubmitDone() (tea.Model, tea.Cmd) {
	m.busy = false

	sess := m.ctrl.GetSnapshot()
	if sess.Phase == interview.PhaseCompleted {
		m.view = viewSummary
		return m, nil
	}

	// Next question.
	m.busy = true
	return m, tea.Batch(m.generateCmd(), m.spin.Tick)
}

func (m *Model) resetAnswerArea() {
	m.answer = textarea.New()
	m.answer.Placeholder = "Type your answer..."
	m.answer.SetHeight(6)
	m.answer.SetWidth(min(m.width-8, 80))
}

// generateCmd installs the current question asynchronously. The generator
// never fails; worst case it returns the deterministic fallback.
func (m Model) generateCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		q, _ := ctrl.GenerateCurrent(context.Background())
		return questionReadyMsg{Question: q}
	}
}

// submitCmd runs the evaluation merge asynchronously.
func (m Model) submitCmd(index int, text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		accepted := ctrl.SubmitAnswer(context.Background(), index, text)
		return submitDoneMsg{Accepted: accepted}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(m Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
