// Package overlay renders a pet in a terminal with tcell.
//
// The terminal stands in for the desktop: its grid is the display, a
// simulated taskbar is docked to one edge, and the mouse drives hover and
// the Feed, Pet and Bury buttons. Input arrives on tcell's poll goroutine
// and is forwarded to the owner loop as posted closures; resizes and
// taskbar moves are delivered as external change notifications.
package overlay

import (
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pet/anchor"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/lifecycle"
	"github.com/lixenwraith/vi-pet/status"
)

// Muter is the audio control toggled by the 'm' key
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Options configures optional presenter features
type Options struct {
	Debug  bool
	Muter  Muter
	Status *status.Registry
	Logger *slog.Logger
}

// view is presenter state owned by the scheduler goroutine
type view struct {
	pressed   bool
	showStats bool
	showDebug bool

	// last pointer cell, re-tested when the sprite moves under it
	pointerX, pointerY int
	pointerSeen        bool
}

// Presenter draws snapshots and turns terminal input into pet actions
type Presenter struct {
	screen    tcell.Screen
	sched     *engine.Scheduler
	source    *TerminalSource
	watcher   *anchor.ExternalWatcher
	cfg       engine.PetConfig
	lifespans *lifecycle.LifespanLog
	reg       *status.Registry
	muter     Muter
	logger    *slog.Logger

	view view

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a presenter and registers its redraw with sched
// pet is only read for its config and lifespan log; all later access goes through sched
func New(screen tcell.Screen, sched *engine.Scheduler, pet *engine.Pet, source *TerminalSource, watcher *anchor.ExternalWatcher, opts Options) *Presenter {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	p := &Presenter{
		screen:    screen,
		sched:     sched,
		source:    source,
		watcher:   watcher,
		cfg:       pet.Config(),
		lifespans: pet.Lifespans(),
		reg:       opts.Status,
		muter:     opts.Muter,
		logger:    opts.Logger.With("component", "overlay"),
		view:      view{showDebug: opts.Debug},
		quit:      make(chan struct{}),
	}
	sched.SetFrameHandler(p.Draw)
	pet.OnAnchorChange(func(anchor.Anchor) { p.rehover(pet) })
	return p
}

// Run polls terminal events until quit or the screen is finalized
func (p *Presenter) Run() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		if !p.HandleEvent(ev) {
			return
		}
	}
}

// Done is closed when the user asks to quit
func (p *Presenter) Done() <-chan struct{} {
	return p.quit
}

func (p *Presenter) requestQuit() {
	p.quitOnce.Do(func() { close(p.quit) })
}

// HandleEvent dispatches one terminal event; false means quit
// Runs on the input goroutine
func (p *Presenter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
		w, h := ev.Size()
		p.source.SetSize(w, h)
		p.watcher.Fire()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			p.requestQuit()
			return false
		}
		p.sched.Post(func(pet *engine.Pet) { pet.AckNotice() })
		if ev.Key() == tcell.KeyRune {
			p.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons()
		p.sched.Post(func(pet *engine.Pet) { p.pointer(pet, x, y, btn) })
	}
	return true
}

func (p *Presenter) handleRune(r rune) {
	switch r {
	case 't':
		edge := p.source.CycleEdge()
		p.logger.Debug("taskbar moved", "edge", edge)
		p.watcher.Fire()
	case 'b':
		hidden := p.source.ToggleHidden()
		p.logger.Debug("taskbar visibility", "hidden", hidden)
		p.watcher.Fire()
	case 's':
		p.sched.Post(func(*engine.Pet) { p.view.showStats = !p.view.showStats })
	case 'd':
		p.sched.Post(func(*engine.Pet) { p.view.showDebug = !p.view.showDebug })
	case 'm':
		if p.muter != nil {
			p.sched.Post(func(*engine.Pet) { p.muter.SetMuted(!p.muter.Muted()) })
		}
	}
}

// pointer updates hover and resolves clicks; runs on the owner loop
func (p *Presenter) pointer(pet *engine.Pet, x, y int, btn tcell.ButtonMask) {
	pressed := btn&tcell.Button1 != 0
	click := pressed && !p.view.pressed
	p.view.pressed = pressed
	p.view.pointerX, p.view.pointerY, p.view.pointerSeen = x, y, true

	p.rehover(pet)
	if !click {
		return
	}

	snap := pet.Snapshot()
	if snap.Notice != nil {
		pet.AckNotice()
		return
	}
	if a, ok := p.layout(snap).HitTest(x, y); ok {
		applied := pet.Act(a)
		p.logger.Debug("click", "action", a, "applied", applied)
	}
}

// rehover syncs the pet's hover flag with the last pointer cell; owner loop only
func (p *Presenter) rehover(pet *engine.Pet) {
	if !p.view.pointerSeen {
		return
	}
	over := p.layout(pet.Snapshot()).Over(p.view.pointerX, p.view.pointerY)
	if over == pet.Hovering() {
		return
	}
	if over {
		pet.HoverEnter()
	} else {
		pet.HoverLeave()
	}
}

func (p *Presenter) layout(snap engine.Snapshot) Layout {
	return ComputeLayout(snap, p.cfg, snap.Anchor.Screen)
}

// Draw renders one frame; registered as the scheduler's frame handler
func (p *Presenter) Draw(snap engine.Snapshot) {
	s := p.screen
	s.Clear()

	l := p.layout(snap)
	drawTaskbar(s, snap.Anchor)
	drawSprite(s, snap, l)
	drawPopup(s, snap, l)

	top := snap.Anchor.Work.Top
	if p.view.showDebug {
		line := p.reg.Summary()
		if p.muter != nil && p.muter.Muted() {
			line += " muted"
		}
		for _, l := range wrapWords(line, snap.Anchor.Work.Width()) {
			putStr(s, snap.Anchor.Work.Left, top, l, styleDebug)
			top++
		}
	}
	if p.view.showStats {
		area := snap.Anchor.Work
		area.Top = top
		drawStats(s, p.lifespans, area)
	}
	if snap.Notice != nil {
		drawNotice(s, *snap.Notice)
	}
	s.Show()
}
