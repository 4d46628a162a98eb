package gui

import (
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/viz"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Sound receives every snapshot the window pulls.
type Sound interface {
	Play(s step.Snapshot)
}

type Options struct {
	Config   *config.Config
	Registry *algorithms.Registry
	Sound    Sound
	Logger   *slog.Logger
}

type App struct {
	Player *player.Player
	Cfg    *config.Config
	Font   rl.Font
	Glow   *viz.Glow
	Width  int32
	Height int32

	log *slog.Logger
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Display.Width), int32(cfg.Display.Height), cfg.Display.Title)
	rl.SetTargetFPS(int32(cfg.Timing.FPS))
	rl.SetExitKey(rl.KeyEscape)
}

// loadFont prefers Liberation Mono and falls back to the raylib default.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	source, err := dataset.Source(cfg.Data, cfg.Seed)
	if err != nil {
		return nil, err
	}
	popts := player.Options{
		Algorithm: cfg.Algorithm,
		Source:    source,
		Delays:    cfg.Delays(),
		History:   cfg.Timing.History,
		Logger:    logger,
	}
	if opts.Sound != nil {
		popts.OnStep = opts.Sound.Play
	}
	p, err := player.New(opts.Registry, popts)
	if err != nil {
		return nil, err
	}

	return &App{
		Player: p,
		Cfg:    cfg,
		Font:   loadFont(),
		Glow:   viz.NewGlow(cfg.Timing.FPS, time.Duration(cfg.Display.FinishEffectMs)*time.Millisecond),
		Width:  int32(cfg.Display.Width),
		Height: int32(cfg.Display.Height),
		log:    logger.With("component", "gui"),
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	initWindow(opts.Config)
	defer rl.CloseWindow()

	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	app.log.Info("window opened", "width", app.Width, "height", app.Height, "algorithm", app.Player.Algorithm().ID)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update(time.Now())
		a.Draw()
	}
}

var algorithmKeys = map[int32]string{
	rl.KeyOne:   "1",
	rl.KeyTwo:   "2",
	rl.KeyThree: "3",
	rl.KeyFour:  "4",
	rl.KeyFive:  "5",
}

func (a *App) Update(now time.Time) {
	p := a.Player
	for code, k := range algorithmKeys {
		if rl.IsKeyPressed(code) {
			if _, err := p.SelectKey(k); err != nil {
				a.log.Warn("select algorithm", "key", k, "err", err)
			}
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		p.Shuffle()
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		p.Slower()
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		p.Faster()
	case rl.IsKeyPressed(rl.KeySpace):
		p.TogglePause()
	case rl.IsKeyPressed(rl.KeyPeriod):
		p.StepOnce()
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		p.Scrub(-1)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		p.Scrub(1)
	}

	p.Tick(now)
	a.Glow.Update(now, p.Current().Complete())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(color(a.Cfg.Display.Colors.Background))

	snap := a.Player.Current()
	a.drawBars(snap)
	a.drawHeaders(len(snap.Array))
	if a.Cfg.Display.ShowDescription && snap.Description != "" {
		a.drawDescription(snap.Description)
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int32, size float32, c rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), size, 1, c)
}
