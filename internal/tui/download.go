package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 150 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressMsg reports download byte counts. Total is -1 when unknown.
type ProgressMsg struct {
	Written int64
	Total   int64
}

// StageMsg switches the label shown next to the spinner.
type StageMsg string

// WorkDoneMsg signals that the background work completed.
type WorkDoneMsg struct{}

// ErrorMsg signals a fatal error; the model quits and surfaces it.
type ErrorMsg struct {
	Err error
}

type tickMsg time.Time

// DownloadModel renders a single download: spinner, stage label, and a byte
// progress bar when the server reports a length.
type DownloadModel struct {
	asset   string
	stage   string
	written int64
	total   int64
	done    bool
	err     error
	tick    int
}

// NewDownloadModel creates a model labeled with the asset being fetched.
func NewDownloadModel(asset string) DownloadModel {
	return DownloadModel{asset: asset, stage: "starting", total: -1}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init satisfies the tea.Model interface.
func (m DownloadModel) Init() tea.Cmd {
	return scheduleTick()
}

// Update satisfies the tea.Model interface.
func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.tick++
		if m.done {
			return m, nil
		}
		return m, scheduleTick()

	case StageMsg:
		m.stage = string(msg)
		return m, nil

	case ProgressMsg:
		m.written = msg.Written
		m.total = msg.Total
		return m, nil

	case WorkDoneMsg:
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View satisfies the tea.Model interface.
func (m DownloadModel) View() string {
	if m.done {
		if m.err != nil {
			return ErrorStyle.Render("error: "+m.err.Error()) + "\n"
		}
		return ""
	}

	spinner := spinnerFrames[m.tick%len(spinnerFrames)]
	line := fmt.Sprintf("%s %s %s", spinner, m.stage, FaintStyle.Render(m.asset))
	if m.written > 0 {
		line += "  " + formatBytes(m.written)
		if m.total > 0 {
			line += fmt.Sprintf(" / %s %s", formatBytes(m.total), renderBar(m.written, m.total, 24))
		}
	}
	return line + "\n"
}

// Err returns any fatal error that occurred.
func (m DownloadModel) Err() error {
	return m.err
}

func renderBar(written, total int64, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := int(written * int64(width) / total)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// RunWithWork creates a bubbletea program, launches workFn in a goroutine,
// and blocks until both the program and workFn have exited. workFn receives
// a context cancelled as soon as the view quits for any reason, including
// ctrl+c, so an in-flight download aborts and its deferred cleanup runs
// before RunWithWork returns.
func RunWithWork(ctx context.Context, out io.Writer, model DownloadModel, workFn func(ctx context.Context, send func(tea.Msg))) error {
	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithOutput(out))

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Let bubbletea start its event loop and render the initial frame.
		time.Sleep(50 * time.Millisecond)
		workFn(workCtx, p.Send)
		p.Send(WorkDoneMsg{})
	}()

	finalModel, err := p.Run()
	cancel()
	<-done

	if err != nil {
		return err
	}
	if m, ok := finalModel.(DownloadModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
