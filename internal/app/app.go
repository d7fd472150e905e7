package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/diegok/paddleball/internal/audio"
	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/game"
	"github.com/diegok/paddleball/internal/ui"
)

// Frontend owns the frame loop for one kind of surface. It calls Step once
// per frame until the player quits, Quit is closed or Done reports true.
type Frontend func(a *App) error

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg   *config.Config
	game  *game.Game
	sound *audio.Player

	screen   *ui.Screen
	renderer *ui.Renderer
	latch    ui.KeyLatch

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration. Sounds
// go to out, which may be nil. It fails if the configured board cannot be
// played on.
func NewApp(cfg *config.Config, out audio.Output, opts ...game.Option) (*App, error) {
	if cfg.Demo {
		opts = append(opts, game.WithPlayerController(game.ScriptedController{}))
	}
	g, err := game.New(cfg.Board, opts...)
	if err != nil {
		return nil, err
	}

	sound := audio.NewPlayer(out)
	sound.SetMuted(cfg.Mute)

	return &App{
		cfg:   cfg,
		game:  g,
		sound: sound,
		quit:  make(chan struct{}),
	}, nil
}

// Run sets up signal handling and hands control to front.
func (a *App) Run(front Frontend) error {
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if _, ok := <-a.sigChan; ok {
			a.Stop()
		}
	}()

	log.Printf("Starting %s frontend, board %vx%v", a.cfg.UI, a.game.Board.Width, a.game.Board.Height)
	err := front(a)
	log.Printf("Stopped after %d frames, score %d-%d", a.game.Frame, a.game.PlayerScore, a.game.ComputerScore)

	a.cleanup()
	return err
}

// Game returns the simulation being played.
func (a *App) Game() *game.Game {
	return a.game
}

// Quit is closed when the application should stop.
func (a *App) Quit() <-chan struct{} {
	return a.quit
}

// Stop asks the frontend to stop. Safe to call more than once.
func (a *App) Stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// Done reports whether a bounded run has played all its frames.
func (a *App) Done() bool {
	return a.cfg.Frames > 0 && a.game.Frame >= a.cfg.Frames
}

// Step advances the game one frame and reacts to what happened.
func (a *App) Step(in game.InputState) game.Events {
	ev := a.game.Step(in)
	a.sound.Play(ev)

	if ev.Has(game.EventPlayerScored) {
		log.Printf("Frame %d: player scored, %d-%d", a.game.Frame, a.game.PlayerScore, a.game.ComputerScore)
	}
	if ev.Has(game.EventComputerScored) {
		log.Printf("Frame %d: computer scored, %d-%d", a.game.Frame, a.game.PlayerScore, a.game.ComputerScore)
	}
	return ev
}

// ToggleMute flips sound on or off and returns whether it is now muted.
func (a *App) ToggleMute() bool {
	muted := a.sound.ToggleMute()
	log.Printf("Sound muted: %v", muted)
	return muted
}

// Muted reports whether sound is off.
func (a *App) Muted() bool {
	return a.sound.Muted()
}

// Terminal runs the game in the current terminal.
func Terminal(a *App) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.Errorf("terminal frontend needs a TTY on stdout, try --ui %s", config.UIWindow)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	return a.runScreen(screen)
}

// runScreen drives the game on screen until it stops, then finalizes it.
func (a *App) runScreen(screen *ui.Screen) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.game.Board)
	defer screen.Fini()
	defer a.Stop()
	return a.mainLoop()
}

// mainLoop is the main event loop: key events fold into the key latch,
// and each tick runs one frame and renders it.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	screen := a.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.renderer.RenderGame(a.game, a.Muted())

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Step(a.latch.State())
			a.latch.Tick()
			a.renderer.RenderGame(a.game, a.Muted())
			if a.Done() {
				return nil
			}
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsMuteKey(ev.Key(), ev.Rune()) {
			a.ToggleMute()
			return false
		}
		a.latch.Press(ui.KeyToDirection(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.RenderGame(a.game, a.Muted())
	}

	return false
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
		close(a.sigChan)
	}
}
