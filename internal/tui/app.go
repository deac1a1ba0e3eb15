// Package tui implements the live terminal preview of an oscillator cycle.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/choreo/internal/logging"
	"github.com/opencode-ai/choreo/internal/oscillator"
	"github.com/opencode-ai/choreo/internal/tui/styles"
)

// Config describes what the preview shows.
type Config struct {
	Title string
	Cycle oscillator.Cycle

	// Low and High bound the bar; values outside are clamped.
	Low  float64
	High float64

	FPS   int
	Width int
	Theme string
}

const (
	defaultFPS   = 30
	maxFPS       = 240
	defaultWidth = 48
	minWidth     = 8
)

// Run launches the preview and blocks until the user quits.
func Run(cfg Config) error {
	logger := logging.Component("preview")
	logger.Debug().Dur("total", cfg.Cycle.Total).Int("fps", cfg.FPS).Msg("starting preview")

	program := tea.NewProgram(newModel(cfg, time.Now()), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	cfg    Config
	styles styles.Styles
	start  time.Time
	now    time.Time
	frozen bool
	held   time.Duration
}

func newModel(cfg Config, now time.Time) model {
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.FPS > maxFPS {
		cfg.FPS = maxFPS
	}
	if cfg.Width < minWidth {
		cfg.Width = defaultWidth
	}
	return model{
		cfg:    cfg,
		styles: styles.BuildStyles(styles.ThemeByName(cfg.Theme)),
		start:  now,
		now:    now,
	}
}

func (m model) Init() tea.Cmd {
	return frameCmd(m.cfg.FPS)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.start = m.now
			m.held = 0
		case " ":
			// Freezing the preview is a host-side hold, unrelated to cycle pauses.
			if m.frozen {
				m.start = m.now.Add(-m.held)
			} else {
				m.held = m.elapsed()
			}
			m.frozen = !m.frozen
		}
	case frameMsg:
		m.now = time.Time(msg)
		return m, frameCmd(m.cfg.FPS)
	}
	return m, nil
}

func (m model) elapsed() time.Duration {
	if m.frozen {
		return m.held
	}
	return m.now.Sub(m.start)
}

func (m model) View() string {
	elapsed := m.elapsed()
	u := m.cfg.Cycle.Progress(elapsed)
	value := m.cfg.Cycle.Eval(u)

	title := m.cfg.Title
	if title == "" {
		title = "choreo preview"
	}

	status := m.styles.Accent.Render("running")
	if m.cfg.Cycle.Paused(u) {
		status = m.styles.Paused.Render("paused")
	}
	if m.frozen {
		status = m.styles.Muted.Render("frozen")
	}

	lines := []string{
		m.styles.Title.Render(title),
		"",
		m.renderBar(fraction(value, m.cfg.Low, m.cfg.High)),
		"",
		m.styles.Text.Render(fmt.Sprintf("value    %8.4f", value)),
		m.styles.Text.Render(fmt.Sprintf("progress %8.4f", u)),
		m.styles.Text.Render(fmt.Sprintf("cycle    %s / %s", formatDuration(cycleOffset(elapsed, m.cfg.Cycle.Total)), formatDuration(m.cfg.Cycle.Total))),
		"state    " + status,
		"",
		m.styles.Muted.Render("space freeze | r restart | q quit"),
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n")) + "\n"
}

func (m model) renderBar(frac float64) string {
	filled := int(math.Round(frac * float64(m.cfg.Width)))
	return m.styles.Fill.Render(strings.Repeat("█", filled)) +
		m.styles.Track.Render(strings.Repeat("░", m.cfg.Width-filled))
}

// fraction maps v onto [0,1] within [low, high], clamping outside values.
func fraction(v, low, high float64) float64 {
	if high == low || math.IsNaN(v) {
		return 0
	}
	f := (v - low) / (high - low)
	return math.Max(0, math.Min(1, f))
}

func cycleOffset(elapsed, total time.Duration) time.Duration {
	if total <= 0 {
		return 0
	}
	return elapsed % total
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}

type frameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
