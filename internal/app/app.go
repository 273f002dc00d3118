package app

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/diegok/solopong/internal/audio"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/protocol"
	"github.com/diegok/solopong/internal/replay"
	"github.com/diegok/solopong/internal/ui"
)

// App is the main application controller. Input, ticks and rendering all
// run on the goroutine that calls Run.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *game.Match
	recorder *replay.Recorder

	prevState protocol.GameState // For sound detection

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		log:  zap.NewNop(),
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays a match or a trace.
func (a *App) Run() error {
	log, err := newLogger(a.cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = log

	// Game works without sound
	if err := audio.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
	}
	audio.SetMuted(a.cfg.Muted)

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, ui.DefaultPalette)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	var runErr error
	if a.cfg.Replaying() {
		runErr = a.runReplay()
	} else {
		runErr = a.runMatch()
	}

	a.cleanup()

	return runErr
}

// newLogger writes JSON logs to path, or discards them when path is empty
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

// runMatch builds a match and runs it until the player quits.
func (a *App) runMatch() error {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	match, err := game.NewMatch(game.Options{
		AISpeed: a.cfg.AISpeed,
		Seed:    seed,
		Logger:  a.log,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create match")
	}
	a.match = match
	audio.Attach(match.Machine)

	if a.cfg.RecordFile != "" {
		header := protocol.Header{TickRate: game.TickRate, Seed: seed, AISpeed: a.cfg.AISpeed}
		rec, err := replay.Create(a.cfg.RecordFile, header, a.log.Named("replay"))
		if err != nil {
			return errors.Wrap(err, "failed to start recording")
		}
		a.recorder = rec
		match.Machine.SubscribeAll(rec)
	}

	a.log.Info("starting match", zap.Int64("seed", seed), zap.Float64("ai_speed", a.cfg.AISpeed))
	match.Start()

	return a.mainLoop()
}

// pollEvents forwards screen events until quit closes
func (a *App) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
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
	return events
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	events := a.pollEvents()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsMuteKey(ev.Key(), ev.Rune()) {
			a.log.Debug("mute toggled", zap.Bool("muted", audio.ToggleMute()))
			return false
		}
		if dir := ui.KeyToDirection(ev.Key(), ev.Rune()); dir != protocol.DirNone {
			a.match.HandleCommand(dir)
		}

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.RenderGame(a.prevState, a.status())
	}

	return false
}

// tick advances the match one step and presents the result
func (a *App) tick() {
	a.match.Step()
	state := a.match.Snapshot()

	audio.DetectCues(a.prevState, state).Play()
	a.prevState = state

	if a.recorder != nil {
		if err := a.recorder.Record(state); err != nil {
			a.log.Error("recording stopped", zap.Error(err))
			a.closeRecorder()
		}
	}

	a.renderer.RenderGame(state, a.status())
}

func (a *App) status() string {
	return statusLine(a.cfg.Replaying(), audio.Muted(), a.recorder != nil)
}

// statusLine builds the hint text shown in the bottom bar
func statusLine(replaying, muted, recording bool) string {
	parts := []string{"W/S or arrows: move"}
	if replaying {
		parts = []string{"REPLAY"}
	}
	parts = append(parts, "M: mute", "Q: quit")
	if muted {
		parts = append(parts, "MUTED")
	}
	if recording {
		parts = append(parts, "REC")
	}
	return strings.Join(parts, " | ")
}

// runReplay plays a recorded trace back at its original tick rate.
func (a *App) runReplay() error {
	trace, err := replay.Open(a.cfg.ReplayFile)
	if err != nil {
		a.renderer.RenderError(err.Error())
		a.screen.PollEvent()
		return err
	}
	a.log.Info("replaying trace",
		zap.String("file", a.cfg.ReplayFile),
		zap.Int("frames", len(trace.Frames)),
		zap.Int64("seed", trace.Header.Seed))

	rate := trace.Header.TickRate
	if rate <= 0 {
		rate = game.TickRate
	}

	events := a.pollEvents()
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for i := 0; i < len(trace.Frames); {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if ui.IsQuitKey(key.Key(), key.Rune()) {
					return nil
				}
				if ui.IsMuteKey(key.Key(), key.Rune()) {
					audio.ToggleMute()
				}
			}

		case <-ticker.C:
			state := trace.Frames[i]
			audio.DetectCues(a.prevState, state).Play()
			a.prevState = state
			a.renderer.RenderGame(state, a.status())
			i++
		}
	}

	a.renderer.RenderReplayEnd(trace.Last())
	for {
		select {
		case <-a.quit:
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return nil
			}
		}
	}
}

func (a *App) closeRecorder() {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.Close(); err != nil {
		a.log.Warn("close trace", zap.Error(err))
	}
	a.recorder = nil
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	a.closeRecorder()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	_ = a.log.Sync()
}
