package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

type progressMsg struct {
	line   int
	height int
}

type doneMsg struct {
	frame *renderer.Frame
	stats renderer.RenderStats
	err   error
}

type tickMsg time.Time

type keyMap struct {
	Quit key.Binding
}

var tuiKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// tuiModel drives the terminal progress UI while a render runs in the
// background
type tuiModel struct {
	scene    *scene.Scene
	progress progress.Model
	percent  float64
	line     int
	height   int
	started  time.Time
	done     bool
	cancel   context.CancelFunc
	frame    *renderer.Frame
	stats    renderer.RenderStats
	err      error
}

func newTUIModel(s *scene.Scene, cancel context.CancelFunc) tuiModel {
	return tuiModel{
		scene:    s,
		progress: progress.New(progress.WithDefaultGradient()),
		height:   s.CameraConfig.Height,
		started:  time.Now(),
		cancel:   cancel,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tuiKeys.Quit) {
			// The cancelled render delivers a doneMsg which quits
			m.cancel()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 10
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil
	case progressMsg:
		m.line = msg.line
		m.height = msg.height
		m.percent = float64(msg.line) / float64(msg.height)
		return m, nil
	case doneMsg:
		m.done = true
		m.frame = msg.frame
		m.stats = msg.stats
		m.err = msg.err
		return m, tea.Quit
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Phong Raytracer"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Scene:"), valueStyle.Render(m.scene.Name)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Size:"),
		valueStyle.Render(fmt.Sprintf("%dx%d", m.scene.CameraConfig.Width, m.scene.CameraConfig.Height))))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		labelStyle.Render("Elapsed:"),
		valueStyle.Render(time.Since(m.started).Round(100*time.Millisecond).String())))
	b.WriteString(m.progress.ViewAs(m.percent))
	b.WriteString(fmt.Sprintf("  line %d/%d\n", m.line, m.height))
	b.WriteString(helpStyle.Render(tuiKeys.Quit.Help().Key + " to " + tuiKeys.Quit.Help().Desc))
	b.WriteString("\n")
	return b.String()
}

// renderWithTUI renders the scene behind a bubbletea progress UI.
// Quitting the UI cancels the render.
func renderWithTUI(ctx context.Context, s *scene.Scene) (*renderer.Frame, renderer.RenderStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newTUIModel(s, cancel))

	go func() {
		// The UI owns progress display, so the renderer stays silent
		r := renderer.NewRenderer(s, nil)
		frame, stats, err := r.Render(ctx, renderer.RenderOptions{
			OnScanline: func(line, height int) {
				p.Send(progressMsg{line: line, height: height})
			},
		})
		p.Send(doneMsg{frame: frame, stats: stats, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("terminal UI failed: %w", err)
	}

	m := finalModel.(tuiModel)
	if m.err != nil {
		return nil, m.stats, m.err
	}
	return m.frame, m.stats, nil
}
