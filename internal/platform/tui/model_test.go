package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:    config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5},
		Store:   store,
		Player:  "tester",
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tickUntilOver sends ticks 1/60 s apart until the game ends.
func tickUntilOver(t *testing.T, m Model, start time.Time) (Model, time.Time) {
	t.Helper()
	now := start
	for i := 0; i < 5000; i++ {
		now = now.Add(time.Second / 60)
		m, _ = send(t, m, TickMsg(now))
		if m.Engine().State().GameOver {
			return m, now
		}
	}
	t.Fatal("game did not end within 5000 ticks")
	return m, now
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionJump},
		{"up", core.ActionJump},
		{"w", core.ActionJump},
		{"r", core.ActionRestart},
		{"enter", core.ActionRestart},
		{"tab", core.ActionBoard},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		msg := keyMsg(tc.key)
		if tc.key == "up" {
			msg = tea.KeyMsg{Type: tea.KeyUp}
		}
		if got := keys.Action(msg); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestMouseAction(t *testing.T) {
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if MouseAction(click) != core.ActionJump {
		t.Error("left click should jump")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if MouseAction(release) != core.ActionNone {
		t.Error("release should be ignored")
	}
	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if MouseAction(right) != core.ActionNone {
		t.Error("right click should be ignored")
	}
}

func TestStepFor(t *testing.T) {
	base := time.Unix(100, 0)

	if got := stepFor(time.Time{}, base, 60); got != time.Second/60 {
		t.Errorf("first tick step = %v, expected one frame", got)
	}
	if got := stepFor(base, base.Add(20*time.Millisecond), 60); got != 20*time.Millisecond {
		t.Errorf("step = %v, expected 20ms", got)
	}
	if got := stepFor(base, base.Add(5*time.Second), 60); got != maxStep {
		t.Errorf("step = %v, expected clamp to %v", got, maxStep)
	}
	if got := stepFor(base, base.Add(-time.Second), 60); got != 0 {
		t.Errorf("step = %v, expected 0 for clock going back", got)
	}
}

func TestModelStartsOnJump(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Engine().State().Started {
		t.Fatal("session should not start before input")
	}
	if !strings.Contains(m.View(), "Press Space to start") {
		t.Error("start prompt should be shown")
	}

	m, _ = send(t, m, keyMsg(" "))
	if !m.Engine().State().Started {
		t.Error("space should start the session")
	}
}

func TestModelMouseStarts(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Engine().State().Started {
		t.Error("left click should start the session")
	}
}

func TestModelTickRunsFrames(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyMsg(" "))

	now := time.Unix(0, 0)
	for i := 0; i < 30; i++ {
		now = now.Add(time.Second / 60)
		var cmd tea.Cmd
		m, cmd = send(t, m, TickMsg(now))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}

	s := m.Engine().Snapshot()
	if s.Frames != 30 {
		t.Errorf("frames = %d, expected 30", s.Frames)
	}
	if s.Spawned == 0 {
		t.Error("first obstacle should have spawned")
	}
}

func TestModelSavesRunOnceAtGameOver(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = send(t, m, keyMsg(" "))
	m, now := tickUntilOver(t, m, time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		now = now.Add(time.Second / 60)
		m, _ = send(t, m, TickMsg(now))
	}

	if n, _ := store.Count(); n != 1 {
		t.Fatalf("expected 1 saved run, got %d", n)
	}
	runs, _ := store.TopRuns(1)
	if runs[0].Player != "tester" {
		t.Errorf("player = %q, expected tester", runs[0].Player)
	}
	if runs[0].Frames != m.Engine().Snapshot().Frames {
		t.Errorf("saved frames %d, engine frames %d", runs[0].Frames, m.Engine().Snapshot().Frames)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over box should be shown")
	}

	// Restart and lose again
	m, _ = send(t, m, keyMsg("r"))
	if m.Engine().State().GameOver {
		t.Fatal("restart should clear game over")
	}
	m, _ = tickUntilOver(t, m, now)

	if n, _ := store.Count(); n != 2 {
		t.Errorf("expected 2 saved runs, got %d", n)
	}
}

func TestModelBoardToggle(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{Player: "someone", Score: 42}) //nolint:errcheck

	m := newTestModel(t, store)
	m, _ = send(t, m, keyMsg("tab"))

	view := m.View()
	if !strings.Contains(view, "BEST RUNS") {
		t.Errorf("board should be shown:\n%s", view)
	}
	if len(m.board.Runs()) != 1 || m.board.Runs()[0].Score != 42 {
		t.Errorf("board runs = %+v", m.board.Runs())
	}

	// Jump keys do not reach the engine while the board is up
	m, _ = send(t, m, keyMsg(" "))
	if m.Engine().State().Started {
		t.Error("space on the board should not start the game")
	}

	m, _ = send(t, m, keyMsg("tab"))
	if strings.Contains(m.View(), "BEST RUNS") {
		t.Error("tab should close the board")
	}
}

func TestModelBoardWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyMsg("tab"))
	if !strings.Contains(m.View(), "Run board unavailable") {
		t.Error("board without store should say so")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyMsg(" "))
	m, _ = send(t, m, TickMsg(time.Unix(0, 0)))

	before := m.Engine().Snapshot()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	after := m.Engine().Snapshot()

	if after.Frames != before.Frames || after.Started != before.Started {
		t.Error("resize should not reset the session")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 3)
	screen.DrawTextColored(0, 0, "Score: 7", core.ColorBrightWhite)
	screen.DrawText(0, 2, runner.Title)

	out := RenderScreen(screen)
	if !strings.Contains(out, "Score: 7") || !strings.Contains(out, runner.Title) {
		t.Errorf("rendered output lost text:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 row separators, got %d", got)
	}
}
