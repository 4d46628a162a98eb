package viz

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/player"
)

const (
	width      = 80
	height     = 24
	statsWidth = 42
	chromeRows = 7
)

// TickMsg drives playback. id ties it to the live view that scheduled it so
// ticks from an abandoned view die out.
type TickMsg struct {
	At time.Time
	id int
}

// BackMsg asks the enclosing app to return to the menu.
type BackMsg struct{}

// Model is the live view over a player.
type Model struct {
	player   *player.Player
	canvas   *Canvas
	theme    Theme
	style    chrome
	keys     KeyMap
	help     help.Model
	glow     *Glow
	interval time.Duration
	id       int
	frame    int
	now      time.Time
	log      *slog.Logger

	width, height   int
	showHelp        bool
	showDescription bool

	recording bool
	frames    []*image.Paletted
	gifPath   string
	notice    string
}

var liveIDs int

func NewModel(p *player.Player, cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	theme := GetTheme(cfg.Display.Theme)
	if cfg.Display.Theme == "classic" {
		theme = ThemeFromConfig("classic", cfg.Display.Colors)
	}
	liveIDs++
	m := Model{
		player:          p,
		canvas:          NewCanvas(width-statsWidth-4, height-chromeRows),
		theme:           theme,
		style:           newChrome(theme),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		glow:            NewGlow(cfg.Timing.FPS, time.Duration(cfg.Display.FinishEffectMs)*time.Millisecond),
		interval:        cfg.FrameInterval(),
		id:              liveIDs,
		log:             logger.With("component", "tui"),
		width:           width,
		height:          height,
		showDescription: cfg.Display.ShowDescription,
		gifPath:         "sortviz.gif",
	}
	return m
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg{At: t, id: id} })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances playback on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.now = msg.At
		m.player.Tick(msg.At)
		m.glow.Update(msg.At, m.player.Current().Complete())
		m.frame++
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		return m, func() tea.Msg { return BackMsg{} }
	case key.Matches(msg, m.keys.Algorithm):
		if _, err := m.player.SelectKey(msg.String()); err != nil {
			m.log.Warn("select algorithm", "key", msg.String(), "err", err)
		}
	case key.Matches(msg, m.keys.Shuffle):
		m.player.Shuffle()
	case key.Matches(msg, m.keys.Faster):
		m.player.Faster()
	case key.Matches(msg, m.keys.Slower):
		m.player.Slower()
	case key.Matches(msg, m.keys.Pause):
		m.player.TogglePause()
	case key.Matches(msg, m.keys.Step):
		m.player.StepOnce()
	case key.Matches(msg, m.keys.Rewind):
		m.player.Scrub(-1)
	case key.Matches(msg, m.keys.Forward):
		m.player.Scrub(1)
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.style = newChrome(m.theme)
		m.notice = "theme " + m.theme.Name
	case key.Matches(msg, m.keys.Record):
		m.toggleRecording()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = make([]*image.Paletted, 0)
		m.notice = ""
		return
	}
	m.recording = false
	n := len(m.frames)
	if err := m.saveGIF(); err != nil {
		m.log.Error("save gif", "path", m.gifPath, "err", err)
		m.notice = "gif failed: " + err.Error()
	} else if n > 0 {
		m.log.Info("gif saved", "path", m.gifPath, "frames", n)
		m.notice = fmt.Sprintf("saved %s (%d frames)", m.gifPath, n)
	}
	m.frames = nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.canvas.Resize(max(w-statsWidth-4, 10), max(h-chromeRows, 4))
}

// palette resolves tones for the current theme, brightening the finish glow.
func (m Model) palette(t Tone) lipgloss.Color {
	if t == ToneGlow {
		return Blend(m.theme.Sorted, m.glow.Intensity())
	}
	return m.theme.Color(t)
}

func (m Model) status() string {
	p := m.player
	var s string
	switch {
	case p.Replaying() && p.Paused():
		s = m.style.paused.Render(fmt.Sprintf("REPLAY PAUSED (-%d)", p.ReplayOffset()))
	case p.Replaying():
		s = m.style.running.Render(fmt.Sprintf("REPLAYING (-%d)", p.ReplayOffset()))
	case p.Complete():
		s = m.style.running.Render("COMPLETE")
	case p.Paused():
		s = m.style.paused.Render("PAUSED")
	default:
		s = m.style.running.Render(spinnerFrame(m.frame) + " RUNNING")
	}
	if m.recording {
		s += "  " + m.style.recording.Render(fmt.Sprintf("● REC %d", len(m.frames)))
	}
	return s
}

// View renders the bar chart beside the stats panel.
func (m Model) View() string {
	p := m.player
	snap := p.Current()
	DrawBars(m.canvas, snap)

	var left strings.Builder
	title := GradientText(strings.ToUpper(p.Algorithm().Name), m.theme.Accent, m.theme.Sorted)
	left.WriteString(title + "  " + m.status() + "\n")
	left.WriteString(m.style.subtle.Render(fmt.Sprintf("Delay: %d ms | Size: %d", p.Delay().Milliseconds(), len(snap.Array))) + "\n")
	left.WriteString(m.canvas.Render(m.palette))
	if m.showDescription && snap.Description != "" {
		left.WriteString(m.style.description.Render(snap.Description))
	}
	left.WriteString("\n")
	if m.notice != "" {
		left.WriteString(m.style.subtle.Render(m.notice))
	}
	canvasView := m.style.canvas.Render(left.String())

	stats := p.Stats()
	var s strings.Builder
	s.WriteString(m.style.label.Render("Steps") + m.style.value.Render(fmt.Sprint(stats.Steps)) + "\n")
	s.WriteString(m.style.label.Render("Compares") + m.style.value.Render(fmt.Sprint(stats.Comparisons)) + "\n")
	s.WriteString(m.style.label.Render("Swaps") + m.style.value.Render(fmt.Sprint(stats.Swaps)) + "\n")
	s.WriteString(m.style.label.Render("Inversions") + m.style.value.Render(fmt.Sprintf("%d / %d", stats.Inversions, stats.InitialInversions)) + "\n")
	s.WriteString(m.style.label.Render("Finalized") + m.style.progress(stats.Progress, 20) + "\n")
	if len(stats.InversionHistory) > 1 {
		chart := asciigraph.Plot(stats.InversionHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Inversions"))
		s.WriteString(m.style.graph.Render(chart) + "\n")
	}
	s.WriteString(m.style.subtle.Render("theme: " + m.theme.Name))
	statsView := m.style.stats.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	return mainView + "\n" + m.style.help.Render(m.help.View(m.keys))
}
