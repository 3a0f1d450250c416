package app

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/yomu-dev/yomu/internal/config"
	"github.com/yomu-dev/yomu/internal/layout"
	"github.com/yomu-dev/yomu/internal/source"
	"github.com/yomu-dev/yomu/internal/statusbar"
	"github.com/yomu-dev/yomu/internal/term"
)

func TestDrainKeepsLastEvent(t *testing.T) {
	events := make(chan term.Event, 8)
	winch := make(chan os.Signal, 1)

	events <- term.Event{Kind: term.EventScrollDown}
	events <- term.Event{Kind: term.EventScrollDown}
	events <- term.Event{Kind: term.EventScrollUp}

	got := drain(term.Event{Kind: term.EventScrollDown}, events, winch)
	if got.Kind != term.EventScrollUp {
		t.Fatalf("drain should keep the last queued event, got %v", got)
	}
	if len(events) != 0 {
		t.Fatalf("drain left %d events queued", len(events))
	}
}

func TestDrainReturnsInputWhenQueueEmpty(t *testing.T) {
	events := make(chan term.Event, 1)
	winch := make(chan os.Signal, 1)

	got := drain(term.Event{Kind: term.EventQuit}, events, winch)
	if got.Kind != term.EventQuit {
		t.Fatalf("drain changed the event, got %v", got)
	}
}

func newTestApp(t *testing.T, text string, width, height int) *App {
	t.Helper()
	a := &App{
		cfg:      config.Default(),
		doc:      source.Document{Name: "demo.txt", Text: text},
		contents: layout.NewContents(text, width, height-1, 0, 0),
		bar:      statusbar.New(width, 1, 0, height-1),
	}
	if err := a.contents.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	return a
}

func TestRenderComposesContentAndStatus(t *testing.T) {
	a := newTestApp(t, "Alice\nBob\nCarol", 40, 10)

	var buf bytes.Buffer
	rc := term.NewRenderContext(&buf)
	if err := a.render(rc); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Alice") {
		t.Fatalf("content missing from frame: %q", out)
	}
	if !strings.Contains(out, "demo.txt L1/3 Ctrl+W to quit") {
		t.Fatalf("status bar missing from frame: %q", out)
	}
}

func TestRefreshStatusUpdatesPositionInPlace(t *testing.T) {
	a := newTestApp(t, strings.Join(make([]string, 30), "x\n"), 40, 10)

	a.refreshStatus()
	if a.bar.Len() != 3 {
		t.Fatalf("Len=%d want 3", a.bar.Len())
	}
	first := a.bar.Item(1).Value()

	a.contents.ScrollDown()
	var buf bytes.Buffer
	if err := a.render(term.NewRenderContext(&buf)); err != nil {
		t.Fatalf("render: %v", err)
	}

	if a.bar.Len() != 3 {
		t.Fatalf("re-render should not grow the bar, Len=%d", a.bar.Len())
	}
	second := a.bar.Item(1).Value()
	if first == second {
		t.Fatalf("position item should change after scrolling, still %q", second)
	}
	if a.bar.Item(1).Name() != "position" {
		t.Fatalf("item order changed: %q", a.bar.Item(1).Name())
	}
}

func TestRefreshStatusHonorsToggles(t *testing.T) {
	a := newTestApp(t, "one", 40, 10)
	a.cfg.StatusBar.ShowHint = false
	a.cfg.StatusBar.ShowFile = false

	a.refreshStatus()
	if a.bar.Len() != 1 {
		t.Fatalf("Len=%d want only the position item", a.bar.Len())
	}
	if a.bar.Item(0).Name() != "position" {
		t.Fatalf("unexpected item %q", a.bar.Item(0).Name())
	}
}

func TestResizeBelowMinimumKeepsErrorUntilRecovery(t *testing.T) {
	a := newTestApp(t, "hello world", 40, 10)

	a.resize(2, 10)
	if a.layoutErr == nil {
		t.Fatalf("expected layout error for a 2-column terminal")
	}

	var buf bytes.Buffer
	if err := a.render(term.NewRenderContext(&buf)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[7m") {
		t.Fatalf("status bar should still render: %q", buf.String())
	}
	if strings.Contains(buf.String(), "hello") {
		t.Fatalf("content should not render while the layout is unusable")
	}

	a.resize(40, 10)
	if a.layoutErr != nil {
		t.Fatalf("resize back should clear the error, got %v", a.layoutErr)
	}
	buf.Reset()
	if err := a.render(term.NewRenderContext(&buf)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("content should render after recovery: %q", buf.String())
	}
}

func TestResizeTooShortSetsError(t *testing.T) {
	a := newTestApp(t, "x", 40, 10)
	a.resize(40, 1)
	if a.layoutErr == nil {
		t.Fatalf("expected error when no content row is left")
	}
}
