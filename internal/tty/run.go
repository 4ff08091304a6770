package tty

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/audio"
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/input"
	"platanus-survivor/internal/interfaces"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Action: что делать с нажатой клавишей
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
	ActionMute
	ActionPause
	ActionOther
)

var runeKeys = map[rune]interfaces.Key{
	'a': interfaces.KeyA, 'A': interfaces.KeyA,
	'd': interfaces.KeyD, 'D': interfaces.KeyD,
	'w': interfaces.KeyW, 'W': interfaces.KeyW,
	's': interfaces.KeyS, 'S': interfaces.KeyS,
}

var arrowKeys = map[tcell.Key]interfaces.Key{
	tcell.KeyLeft:  interfaces.KeyLeft,
	tcell.KeyRight: interfaces.KeyRight,
	tcell.KeyUp:    interfaces.KeyUp,
	tcell.KeyDown:  interfaces.KeyDown,
}

// Classify переводит терминальную клавишу в действие и, для движения, в логическую клавишу
func Classify(key tcell.Key, r rune) (Action, interfaces.Key) {
	if k, ok := arrowKeys[key]; ok {
		return ActionMove, k
	}
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		if k, ok := runeKeys[r]; ok {
			return ActionMove, k
		}
		switch r {
		case 'q', 'Q':
			return ActionQuit, 0
		case 'm', 'M':
			return ActionMute, 0
		case 'p', 'P':
			return ActionPause, 0
		}
	}
	return ActionOther, 0
}

type screenMode int

const (
	modeMenu screenMode = iota
	modePlaying
	modePaused
)

// Runner связывает сессию с терминалом
type Runner struct {
	screen tcell.Screen
	game   *app.Game
	latch  *input.Latch
	sound  *audio.SoundManager
	frame  *Frame
	mode   screenMode
	scores []interfaces.ScoreEntry
	logger *slog.Logger
}

// NewRunner. latch должен быть источником ввода game; sound может быть nil.
func NewRunner(screen tcell.Screen, game *app.Game, latch *input.Latch, sound *audio.SoundManager) *Runner {
	cols, rows := screen.Size()
	return &Runner{
		screen: screen,
		game:   game,
		latch:  latch,
		sound:  sound,
		frame:  NewFrame(cols, rows),
		logger: slog.Default().With("component", "tty"),
	}
}

var errQuit = errors.New("quit")

// Run крутит события и кадры, пока игрок не выйдет или ctx не отменён.
// Экран финализируется при выходе.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// экран закрыт
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer r.screen.Fini()
		// выход из цикла без ошибки тоже должен остановить насос событий
		defer cancel()
		err := r.loop(ctx, events)
		if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / config.TerminalFPS)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if r.HandleEvent(ev) {
				return errQuit
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.Step(min(dt, config.MaxDeltaTime) * 1000)
			r.Draw()
		}
	}
}

// HandleEvent обрабатывает событие терминала; true означает выход
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.frame.Resize(cols, rows)
		r.screen.Sync()
	case *tcell.EventKey:
		action, key := Classify(ev.Key(), ev.Rune())
		return r.HandleAction(action, key)
	}
	return false
}

// HandleAction применяет действие к сессии; true означает выход
func (r *Runner) HandleAction(action Action, key interfaces.Key) bool {
	switch action {
	case ActionQuit:
		return true
	case ActionMute:
		if r.sound != nil {
			muted := r.sound.ToggleMute()
			r.logger.Debug("sound toggled", "muted", muted)
		}
		return false
	}

	switch r.mode {
	case modeMenu:
		if action != ActionNone {
			r.mode = modePlaying
			if action == ActionMove {
				r.latch.Press(key)
			}
		}
	case modePaused:
		if action == ActionPause {
			r.mode = modePlaying
		}
	case modePlaying:
		if r.game.Phase() == component.PhaseGameOver {
			if action == ActionOther || action == ActionPause {
				r.latch.ReleaseAll()
				r.game.Reset()
				r.scores = nil
			}
			return false
		}
		switch action {
		case ActionMove:
			r.latch.Press(key)
		case ActionPause:
			r.latch.ReleaseAll()
			r.mode = modePaused
		}
	}
	return false
}

// Step продвигает сессию на dtMs, если она идёт
func (r *Runner) Step(dtMs float64) {
	if r.mode != modePlaying {
		return
	}
	wasRunning := r.game.Phase() == component.PhaseRunning
	r.game.Tick(dtMs)
	if wasRunning && r.game.Phase() == component.PhaseGameOver {
		if lb := r.game.Leaderboard(); lb != nil {
			r.scores = lb.Load()
		}
	}
}

// Draw собирает кадр и выводит его
func (r *Runner) Draw() {
	r.compose()
	r.frame.Flush(r.screen)
}

func (r *Runner) compose() {
	if r.mode == modeMenu {
		ComposeMenu(r.frame)
		return
	}
	snap := r.game.Snapshot()
	muted := r.sound != nil && r.sound.Muted()
	Compose(r.frame, &snap, muted)
	switch {
	case snap.HUD.Phase == component.PhaseGameOver:
		ComposeGameOver(r.frame, &snap, r.scores)
	case r.mode == modePaused:
		ComposePaused(r.frame)
	}
}
