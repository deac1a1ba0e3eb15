package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/choreo/internal/oscillator"
)

func testConfig() Config {
	osc := oscillator.WithPause(2*time.Second, 0.5, 0.5, oscillator.Wrap(0, 1))
	return Config{
		Title: "test",
		Cycle: oscillator.Oscillate(10*time.Second, osc),
		Low:   0,
		High:  1,
		Width: 10,
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		v, low, high, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{3, 0, 1, 1},
		{5, 5, 5, 0},
		{0, 1, -1, 0.5},
	}
	for _, tt := range tests {
		if got := fraction(tt.v, tt.low, tt.high); got != tt.want {
			t.Errorf("fraction(%v, %v, %v) = %v, want %v", tt.v, tt.low, tt.high, got, tt.want)
		}
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := newModel(Config{}, time.Now())
	if m.cfg.FPS != defaultFPS || m.cfg.Width != defaultWidth {
		t.Fatalf("unexpected defaults: fps=%d width=%d", m.cfg.FPS, m.cfg.Width)
	}
}

func TestNewModelCapsFPS(t *testing.T) {
	m := newModel(Config{FPS: 2_000_000_000}, time.Now())
	if m.cfg.FPS != maxFPS {
		t.Fatalf("expected fps capped at %d, got %d", maxFPS, m.cfg.FPS)
	}
}

func TestFrameAdvancesElapsed(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newModel(testConfig(), start)

	updated, cmd := m.Update(frameMsg(start.Add(6 * time.Second)))
	if cmd == nil {
		t.Fatal("expected next frame command")
	}
	next := updated.(model)
	if got := next.elapsed(); got != 6*time.Second {
		t.Fatalf("elapsed = %v, want 6s", got)
	}

	view := next.View()
	if !strings.Contains(view, "paused") {
		t.Fatalf("expected paused state at 6s into a 12s cycle, got:\n%s", view)
	}
}

func TestFreezeHoldsElapsed(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newModel(testConfig(), start)

	updated, _ := m.Update(frameMsg(start.Add(time.Second)))
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	updated, _ = updated.Update(frameMsg(start.Add(5 * time.Second)))

	frozen := updated.(model)
	if got := frozen.elapsed(); got != time.Second {
		t.Fatalf("frozen elapsed = %v, want 1s", got)
	}
	if !strings.Contains(frozen.View(), "frozen") {
		t.Fatal("expected frozen state in view")
	}

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	resumed := updated.(model)
	if got := resumed.elapsed(); got != time.Second {
		t.Fatalf("resumed elapsed = %v, want 1s", got)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(testConfig(), time.Now())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
