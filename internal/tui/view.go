package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/schedule"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.view {
	case viewResumePrompt:
		content = m.renderResumePrompt()
	case viewProfile:
		content = m.renderProfile()
	case viewInterview:
		content = m.renderInterview()
	case viewPaused:
		content = m.renderPaused()
	case viewSummary:
		content = m.renderSummary()
	}

	v.SetContent(m.renderFrame(content))
	return v
}

func (m Model) renderFrame(content string) string {
	header := titleStyle.Render("  intervu") +
		dimStyle.Render("  ·  "+m.role+" interview")
	rule := ruleStyle.Render(strings.Repeat("─", max(m.width-2, 0)))

	return header + "\n" + rule + "\n\n" + content
}

func (m Model) renderResumePrompt() string {
	sess := m.ctrl.GetSnapshot()

	var b strings.Builder
	b.WriteString(bodyStyle.Bold(true).Render("  Welcome back, " + sess.Candidate.Name))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  An unfinished interview was found: question %d of %d, %ds remaining.",
		sess.CurrentIndex+1, schedule.NumQuestions, sess.Timer.Remaining)))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("  [R] Resume where you left off"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("  [N] Discard and start over"))
	return b.String()
}

func (m Model) renderProfile() string {
	labels := [profileFields]string{"Name", "Email", "Phone"}

	var b strings.Builder
	b.WriteString(bodyStyle.Bold(true).Render("  Candidate profile"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  All three fields are required to start."))
	b.WriteString("\n\n")

	for i := range m.inputs {
		marker := "  "
		if i == m.focusIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, labelStyle.Render(labels[i]+":"), m.inputs[i].View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Enter: next field / start  ·  Tab: move  ·  Ctrl+C: quit"))
	return b.String()
}

func (m Model) renderInterview() string {
	sess := m.ctrl.GetSnapshot()
	q := sess.CurrentQuestion()

	if m.busy && q == nil {
		return "  " + m.spin.View() + dimStyle.Render(" Preparing your next question...")
	}
	if q == nil {
		return dimStyle.Render("  Preparing your next question...")
	}

	var b strings.Builder

	progress := fmt.Sprintf("Question %d/%d", sess.CurrentIndex+1, schedule.NumQuestions)
	difficulty := strings.ToUpper(string(q.Difficulty))
	left := labelStyle.Render("  " + progress + "  ·  " + difficulty)
	right := m.renderTimer(sess) + "  "

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Width(min(m.width-4, 84)).PaddingLeft(2).Render(q.Text))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString("  " + m.spin.View() + dimStyle.Render(" Scoring your answer..."))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(m.answer.View()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Ctrl+D: submit  ·  Esc: pause  ·  Ctrl+C: save & quit"))
	return b.String()
}

func (m Model) renderTimer(sess interview.Session) string {
	remaining := sess.Timer.Remaining
	str := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	if remaining <= 10 {
		return timerLowStyle.Render(str)
	}
	return timerStyle.Render(str)
}

func (m Model) renderPaused() string {
	sess := m.ctrl.GetSnapshot()

	var b strings.Builder
	b.WriteString(bodyStyle.Bold(true).Render("  Interview paused"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  Question %d of %d, %ds remaining. Your progress is saved.",
		sess.CurrentIndex+1, schedule.NumQuestions, sess.Timer.Remaining)))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("  [R] Resume"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("  [Q] Quit (resume later)"))
	return b.String()
}

func (m Model) renderSummary() string {
	sess := m.ctrl.GetSnapshot()

	var b strings.Builder
	b.WriteString(bodyStyle.Bold(true).Render("  Interview complete"))
	b.WriteString("\n\n")
	b.WriteString("  " + labelStyle.Render("Final score: ") +
		scoreStyle.Render(fmt.Sprintf("%.1f / 10", sess.FinalScore)))
	b.WriteString("\n\n")

	if sess.Summary != "" {
		b.WriteString(dimStyle.Width(min(m.width-4, 84)).PaddingLeft(2).Render(sess.Summary))
		b.WriteString("\n\n")
	}

	for i, a := range sess.Answers {
		score := "—"
		if a.Score != nil {
			score = fmt.Sprintf("%d/10", *a.Score)
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s  %s\n",
			i+1,
			a.Difficulty,
			scoreStyle.Render(score),
			dimStyle.Render(truncate(a.Feedback, max(m.width-30, 20))),
		))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Q: quit"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
