package viz

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/step"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errText = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

const (
	stateMenu = iota
	stateConfig
	stateLive
)

// Sound receives every snapshot the live view pulls.
type Sound interface {
	Play(s step.Snapshot)
}

type Options struct {
	Config   *config.Config
	Registry *algorithms.Registry
	Sound    Sound
	Logger   *slog.Logger
	// SkipMenu starts straight into the live view with Config.Algorithm.
	SkipMenu bool
	GIFPath  string
}

type field struct {
	name   string
	value  func(c *config.Config) string
	adjust func(c *config.Config, dir int)
}

var fields = []field{
	{
		name:  "size",
		value: func(c *config.Config) string { return fmt.Sprint(c.Data.Size) },
		adjust: func(c *config.Config, dir int) {
			c.Data.Size = min(max(c.Data.Size+dir*10, 10), 400)
		},
	},
	{
		name:  "delay",
		value: func(c *config.Config) string { return fmt.Sprintf("%d ms", c.Timing.InitialDelayMs) },
		adjust: func(c *config.Config, dir int) {
			t := &c.Timing
			t.InitialDelayMs = min(max(t.InitialDelayMs+dir*t.DelayStepMs, t.MinDelayMs), t.MaxDelayMs)
		},
	},
	{
		name:  "shape",
		value: func(c *config.Config) string { return c.Data.Shape },
		adjust: func(c *config.Config, dir int) {
			shapes := dataset.Shapes()
			cur := 0
			for i, s := range shapes {
				if string(s) == c.Data.Shape {
					cur = i
				}
			}
			c.Data.Shape = string(shapes[(cur+dir+len(shapes))%len(shapes)])
		},
	},
}

// App is the top level program: algorithm menu, run settings, live view.
type App struct {
	state, cursor int
	fieldCursor   int
	cfg           *config.Config
	reg           *algorithms.Registry
	algos         []algorithms.Algorithm
	sound         Sound
	log           *slog.Logger
	gifPath       string
	width, height int
	err           error
	live          Model
	initCmd       tea.Cmd
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reg := opts.Registry
	if reg == nil {
		reg = algorithms.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		state:   stateMenu,
		cfg:     cfg,
		reg:     reg,
		algos:   reg.List(),
		sound:   opts.Sound,
		log:     logger,
		gifPath: opts.GIFPath,
		width:   width,
		height:  height,
	}
	for i, algo := range a.algos {
		if algo.ID == cfg.Algorithm {
			a.cursor = i
		}
	}
	return a
}

func (a *App) Init() tea.Cmd { return a.initCmd }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.state == stateLive {
			return a.forward(msg)
		}
	case BackMsg:
		a.state = stateMenu
		a.cfg.Algorithm = a.live.player.Algorithm().ID
	default:
		if a.state == stateLive {
			return a.forward(msg)
		}
	}
	return a, nil
}

func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.live.Update(msg)
	a.live = next.(Model)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateLive:
		return a.forward(msg)
	}
	return a, nil
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.algos)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.cfg.Algorithm = a.algos[a.cursor].ID
		a.state, a.fieldCursor, a.err = stateConfig, 0, nil
	default:
		if algo, err := a.reg.ByKey(msg.String()); err == nil {
			a.cfg.Algorithm = algo.ID
			return a, a.start()
		}
	}
	return a, nil
}

func (a *App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.fieldCursor > 0 {
			a.fieldCursor--
		}
	case "down", "j":
		if a.fieldCursor < len(fields)-1 {
			a.fieldCursor++
		}
	case "left", "h":
		fields[a.fieldCursor].adjust(a.cfg, -1)
	case "right", "l":
		fields[a.fieldCursor].adjust(a.cfg, 1)
	case "s", "enter":
		return a, a.start()
	}
	return a, nil
}

// start builds a player from the current settings and enters the live view.
func (a *App) start() tea.Cmd {
	source, err := dataset.Source(a.cfg.Data, a.cfg.Seed)
	if err != nil {
		a.err = err
		a.state = stateConfig
		return nil
	}
	opts := player.Options{
		Algorithm: a.cfg.Algorithm,
		Source:    source,
		Delays:    a.cfg.Delays(),
		History:   a.cfg.Timing.History,
		Logger:    a.log,
	}
	if a.sound != nil {
		opts.OnStep = a.sound.Play
	}
	p, err := player.New(a.reg, opts)
	if err != nil {
		a.err = err
		a.state = stateConfig
		return nil
	}

	a.log.Info("run started", "algorithm", a.cfg.Algorithm, "size", a.cfg.Data.Size, "shape", a.cfg.Data.Shape)
	a.live = NewModel(p, a.cfg, a.log)
	if a.gifPath != "" {
		a.live.gifPath = a.gifPath
	}
	a.live.resize(a.width, a.height)
	a.state, a.err = stateLive, nil
	return a.live.Init()
}

func (a *App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateLive:
		return a.live.View()
	}
	return ""
}

func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(keyHint.Render(pairs[i]) + dim.Render(" "+pairs[i+1]+"  "))
	}
	return b.String()
}

func (a *App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("SORTVIZ", "#00cccc", "#ff88ff") + "\n    " + Subtle.Render("sorting algorithm visualizer") + "\n    " + Separator(26) + "\n\n")
	for i, algo := range a.algos {
		label := fmt.Sprintf("%s %-16s", algo.Key, algo.Name)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cyan.Render("▸"), white.Render(label), magenta.Render(algo.Summary)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", dim.Render(label), dimmer.Render(algo.Summary)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "configure", "1-5", "run now", "q", "quit") + "\n")
	return b.String()
}

func (a *App) viewConfig() string {
	var b strings.Builder
	algo, _ := a.reg.Get(a.cfg.Algorithm)
	b.WriteString("\n\n    " + cyan.Render(strings.ToUpper(algo.Name)) + "\n    " + Subtle.Render(algo.Summary) + "\n    " + Separator(26) + "\n\n")
	for i, f := range fields {
		val := fmt.Sprintf("%10s", f.value(a.cfg))
		if i == a.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", cyan.Render("▸"), white.Render(fmt.Sprintf("%-8s", f.name)), magenta.Render("◂"+val+" ▸")))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render(fmt.Sprintf("%-8s", f.name)), dimmer.Render(" "+val)))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + errText.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// Run opens the terminal program and blocks until the user quits.
func Run(opts Options) error {
	app := NewApp(opts)
	if opts.SkipMenu {
		app.initCmd = app.start()
	}
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
