package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/yomu-dev/yomu/internal/config"
	"github.com/yomu-dev/yomu/internal/layout"
	"github.com/yomu-dev/yomu/internal/logger"
	"github.com/yomu-dev/yomu/internal/source"
	"github.com/yomu-dev/yomu/internal/statusbar"
	"github.com/yomu-dev/yomu/internal/term"
)

// App is the top-level runtime for yomu: it loads the document, owns the
// terminal session and runs the event loop until quit.
type App struct {
	path string

	cfg      config.Config
	doc      source.Document
	contents *layout.Contents
	bar      *statusbar.StatusBar

	// layoutErr is set while the viewport is too small for a usable
	// layout; rendering falls back to the status bar alone until a
	// resize clears it.
	layoutErr error
}

func New(path string) *App {
	return &App{path: path}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(cfg.Pager.Debug); err == nil {
		defer logger.Close()
	}

	doc, err := source.Load(a.path, os.Stdin, cfg.Pager.TabWidth)
	if err != nil {
		return err
	}
	a.doc = doc

	sess, err := term.Open()
	if err != nil {
		return err
	}
	defer sess.Release()

	width, height, err := sess.Size()
	if err != nil {
		return err
	}
	if height < 2 {
		return fmt.Errorf("terminal height %d leaves no room for content and status bar", height)
	}

	a.contents = layout.NewContents(doc.Text, width, height-1, 0, 0)
	a.bar = statusbar.New(width, 1, 0, height-1)
	if err := a.contents.Update(); err != nil {
		return err
	}
	logger.Info("pager started", "name", doc.Name, "width", width, "height", height,
		"lines", a.contents.LineCount(), "segments", a.contents.SegmentCount())

	done := make(chan struct{})
	defer close(done)
	events, readErrs, stopKeys := sess.StartKeyReader(done)
	defer stopKeys()

	winch := make(chan os.Signal, 1)
	if sigs := term.ResizeSignals(); len(sigs) > 0 {
		signal.Notify(winch, sigs...)
		defer signal.Stop(winch)
	}

	if err := a.render(sess.Render()); err != nil {
		return err
	}

	for {
		var ev term.Event
		select {
		case ev = <-events:
		case <-winch:
			ev = term.Event{Kind: term.EventResize}
		case err := <-readErrs:
			return err
		}

		// Drain everything already queued behind the event just read;
		// only the last queued event is acted on. Intermediate scroll
		// steps under key repeat are skipped on purpose.
		ev = drain(ev, events, winch)

		switch ev.Kind {
		case term.EventQuit:
			logger.Info("quit")
			return nil
		case term.EventScrollUp:
			a.contents.ScrollUp()
			a.rebuild()
		case term.EventScrollDown:
			a.contents.ScrollDown()
			a.rebuild()
		case term.EventResize:
			width, height, err := sess.Size()
			if err != nil {
				return err
			}
			a.resize(width, height)
		case term.EventUnsupported:
			logger.Debug("unsupported event", "detail", ev.Detail)
			continue
		}

		if err := a.render(sess.Render()); err != nil {
			return err
		}
	}
}

// drain empties the queued events without blocking and returns the last one.
func drain(ev term.Event, events <-chan term.Event, winch <-chan os.Signal) term.Event {
	for {
		select {
		case ev = <-events:
		case <-winch:
			ev = term.Event{Kind: term.EventResize}
		default:
			return ev
		}
	}
}

// rebuild recomputes the full layout. Scroll events do not change the wrap
// width, but the layout is rebuilt from scratch on every event anyway;
// documents at interactive sizes make this cheap enough.
func (a *App) rebuild() {
	a.layoutErr = a.contents.Update()
	if a.layoutErr != nil {
		logger.Warn("layout unavailable", "error", a.layoutErr)
	}
}

func (a *App) resize(width, height int) {
	if height < 2 {
		a.layoutErr = fmt.Errorf("terminal height %d leaves no room for content and status bar", height)
		logger.Warn("layout unavailable", "error", a.layoutErr)
		return
	}
	a.bar.Width = width
	a.bar.OriginY = height - 1
	a.layoutErr = a.contents.Resize(width, height-1)
	if a.layoutErr != nil {
		logger.Warn("layout unavailable", "error", a.layoutErr)
	} else {
		logger.Debug("resized", "width", width, "height", height)
	}
}

// render draws a full frame: content window first, then the status bar,
// composed from the clamped cursor the content print left behind.
func (a *App) render(rc *term.RenderContext) error {
	if a.layoutErr == nil {
		a.contents.Print(rc)
	} else {
		rc.MoveTo(0, 0)
		rc.ClearAll()
	}
	a.refreshStatus()
	a.bar.Print(rc)
	return rc.Flush()
}

// refreshStatus merges the per-frame items into the status bar by name so
// their positions stay stable across updates.
func (a *App) refreshStatus() {
	if a.cfg.StatusBar.ShowFile {
		a.bar.AddItem(statusbar.NewItem("file", a.doc.Name))
	}
	if a.layoutErr != nil {
		a.bar.AddItem(statusbar.NewItem("position", a.layoutErr.Error()))
	} else if a.cfg.StatusBar.ShowPosition || hasItem(a.bar, "position") {
		position := fmt.Sprintf("L%d/%d", a.contents.CursorY()+1, a.contents.SegmentCount())
		a.bar.AddItem(statusbar.NewItem("position", position))
	}
	if a.cfg.StatusBar.ShowHint {
		a.bar.AddItem(statusbar.NewItem("hint", "Ctrl+W to quit"))
	}
}

func hasItem(bar *statusbar.StatusBar, name string) bool {
	for i := 0; i < bar.Len(); i++ {
		if bar.Item(i).Name() == name {
			return true
		}
	}
	return false
}
