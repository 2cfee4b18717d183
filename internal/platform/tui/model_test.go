package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tilegame/internal/asset"
	"github.com/vovakirdan/tui-tilegame/internal/config"
	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/game"
	"github.com/vovakirdan/tui-tilegame/internal/level"
	"github.com/vovakirdan/tui-tilegame/internal/loop"
)

func newTestModel(t *testing.T) (Model, *game.Session, *loop.Loop, *ScreenSurface) {
	t.Helper()

	p, err := level.DefaultPack()
	if err != nil {
		t.Fatalf("DefaultPack: %v", err)
	}
	cfg := config.DefaultGameConfig()
	rt := cfg.Runtime(80, 23)

	loader := level.NewLoader(p, p.Catalog(), asset.NewCache(p.Resolver(), 0), nil)
	session, err := game.NewSession(cfg, rt, loader, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := session.StartLevel(context.Background(), 1, 1); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}

	surface := NewScreenSurface(80, 23, rt.CellW, rt.CellH)
	lp := loop.New(session, surface, rt.TickRate, nil)
	t.Cleanup(lp.Stop)

	m := NewModel(session, lp, surface, Options{TickRate: rt.TickRate})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), session, lp, surface
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelResizeKeepsFooterRow(t *testing.T) {
	_, session, _, surface := newTestModel(t)

	if w, h := surface.PixelSize(); w != 320 || h != 23*8 {
		t.Errorf("surface = %dx%d pixels, want 320x184", w, h)
	}
	if snap := session.Snapshot(); snap.Surface != [2]int{320, 184} {
		t.Errorf("session surface = %v", snap.Surface)
	}
}

func TestModelKeyHoldAndRelease(t *testing.T) {
	m, session, _, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("direction key should schedule a release")
	}
	if in := session.Intent(); !in.Moving || in.Horizontal != core.HorizontalRight {
		t.Fatalf("intent = %v, want right", in)
	}

	firstSeq := m.holdSeq
	next, _ = m.Update(keyRunes("w"))
	m = next.(Model)
	if in := session.Intent(); in.Vertical != core.VerticalUp || in.Horizontal != core.HorizontalRight {
		t.Fatalf("intent = %v, want up and right", in)
	}

	// A release scheduled by the earlier press is stale.
	next, _ = m.Update(releaseMsg{seq: firstSeq})
	m = next.(Model)
	if !session.Intent().Moving {
		t.Fatal("stale release cleared the intent")
	}

	m.Update(releaseMsg{seq: m.holdSeq})
	if session.Intent().Moving {
		t.Error("current release did not clear the intent")
	}
}

func TestModelPauseBlocksSteering(t *testing.T) {
	m, session, lp, _ := newTestModel(t)

	next, _ := m.Update(keyRunes("p"))
	m = next.(Model)
	if lp.State() != loop.Paused {
		t.Fatalf("state = %v, want paused", lp.State())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view does not show the pause marker")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if session.Intent().Moving {
		t.Error("steering accepted while paused")
	}

	m.Update(keyRunes("p"))
	if lp.State() != loop.Running {
		t.Errorf("state = %v, want running", lp.State())
	}
}

func TestModelMousePressesControls(t *testing.T) {
	m, session, _, _ := newTestModel(t)

	// 320x184 pixels, padding 10: the down control spans x 278..294, y 158..174,
	// i.e. cell column 70 and row 20.
	next, _ := m.Update(tea.MouseMsg{X: 70, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if in := session.Intent(); in.Vertical != core.VerticalDown {
		t.Fatalf("intent = %v, want down", in)
	}
	if session.Status() != "moving down" {
		t.Errorf("status = %q", session.Status())
	}

	m.Update(tea.MouseMsg{X: 70, Y: 20, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if session.Intent().Moving {
		t.Error("release did not stop movement")
	}
}

func TestModelQuitStopsLoop(t *testing.T) {
	m, _, lp, _ := newTestModel(t)
	if err := lp.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	select {
	case <-lp.Done():
	default:
		t.Error("loop still running after quit")
	}
	if next.(Model).View() != "" {
		t.Error("view not cleared on quit")
	}
}

func TestModelRestartReloadsLevel(t *testing.T) {
	m, session, _, _ := newTestModel(t)

	session.Steer(0)
	_, cmd := m.Update(keyRunes("r"))
	if cmd == nil {
		t.Fatal("restart returned no command")
	}
	msg, ok := cmd().(levelStartedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("restart msg = %#v", msg)
	}
	if session.Intent().Moving {
		t.Error("intent survived restart")
	}
	if stage, lvl := session.Current(); stage != 1 || lvl != 1 {
		t.Errorf("current = %d/%d", stage, lvl)
	}
}

func TestModelSuspendHidesSurface(t *testing.T) {
	m, session, _, surface := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("suspend returned no command")
	}
	if _, ok := cmd().(tea.SuspendMsg); !ok {
		t.Error("suspend command is not tea.Suspend")
	}
	if session.Intent().Moving {
		t.Error("suspend did not release movement")
	}
	if _, err := surface.LockCanvas(); !errors.Is(err, loop.ErrSurfaceUnavailable) {
		t.Fatalf("LockCanvas while suspended = %v, want ErrSurfaceUnavailable", err)
	}

	m.Update(tea.ResumeMsg{})
	c, err := surface.LockCanvas()
	if err != nil {
		t.Fatalf("LockCanvas after resume: %v", err)
	}
	surface.UnlockCanvasAndPost(c)
}
