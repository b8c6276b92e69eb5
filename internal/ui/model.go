// ABOUTME: Bubbletea model for the tone audition TUI
// ABOUTME: Adjusts shape, frequency, amplitude and overtones interactively
package ui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soundgen/soundgen-go/internal/app"
	"github.com/soundgen/soundgen-go/internal/config"
	"github.com/soundgen/soundgen-go/internal/playback"
	"github.com/soundgen/soundgen-go/pkg/synth"
)

// semitone is the equal-temperament frequency step used by left/right keys.
var semitone = math.Pow(2, 1.0/12)

// previewMs is the duration auditioned on the space key.
const previewMs = 500

// Model represents the audition TUI state
type Model struct {
	cfg     config.Config
	outPath string

	playing bool
	status  string
	err     error

	width  int
	height int
}

// NewModel creates a new TUI model starting from a validated configuration.
func NewModel(cfg config.Config, outPath string) Model {
	return Model{
		cfg:     cfg,
		outPath: outPath,
		status:  "ready",
	}
}

// Err returns the error the session ended with, if any.
func (m Model) Err() error {
	return m.err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case previewDoneMsg:
		m.playing = false
		if msg.err != nil {
			m.status = fmt.Sprintf("preview failed: %v", msg.err)
		} else {
			m.status = "ready"
		}
	case writeDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("write failed: %v", msg.err)
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up":
		m.cfg.Amplitude = math.Min(m.cfg.Amplitude+5, config.MaxAmplitude)
	case "down":
		m.cfg.Amplitude = math.Max(m.cfg.Amplitude-5, config.MinAmplitude)
	case "right":
		m.cfg.Frequencies = transpose(m.cfg.Frequencies, semitone)
	case "left":
		m.cfg.Frequencies = transpose(m.cfg.Frequencies, 1/semitone)
	case "s":
		m.cfg.Shape = nextShape(m.cfg.Shape)
	case "o":
		if m.cfg.Overtones < config.MaxOvertones {
			m.cfg.Overtones++
		}
	case "O":
		if m.cfg.Overtones > 0 {
			m.cfg.Overtones--
		}
	case " ":
		if m.playing {
			return m, nil
		}
		m.playing = true
		m.status = "playing preview..."
		return m, previewCmd(m.cfg)
	case "w":
		if m.outPath == "" {
			m.status = "no output file (start with -file to write)"
			return m, nil
		}
		m.status = "writing..."
		return m, writeCmd(m.cfg, m.outPath)
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := "┌─ soundgen ───────────────────────────────────────────┐\n"
	s += fmt.Sprintf("│ Shape:     %-41s │\n", m.cfg.Shape)
	s += fmt.Sprintf("│ Pitches:   %-41s │\n", truncate(formatFrequencies(m.cfg.Frequencies), 41))
	s += fmt.Sprintf("│ Amplitude: %-41s │\n",
		fmt.Sprintf("[%s] %.1f%%", renderBar(m.cfg.Amplitude, config.MaxAmplitude, 10), m.cfg.Amplitude))
	s += fmt.Sprintf("│ Overtones: %-41d │\n", m.cfg.Overtones)
	s += fmt.Sprintf("│ Output:    %-41s │\n", truncate(outputName(m.outPath), 41))
	s += "├──────────────────────────────────────────────────────┤\n"
	s += fmt.Sprintf("│ %-52s │\n", truncate(m.status, 52))
	s += "│ ←/→:Pitch  ↑/↓:Amplitude  s:Shape  o/O:Overtones     │\n"
	s += "│ space:Preview  w:Write  q:Quit                       │\n"
	s += "└──────────────────────────────────────────────────────┘\n"
	return s
}

// previewDoneMsg reports a finished audition playback
type previewDoneMsg struct {
	err error
}

// writeDoneMsg reports a finished file write
type writeDoneMsg struct {
	err error
}

// previewCmd synthesizes a short buffer and plays it
func previewCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		preview := cfg
		preview.DurationMs = previewMs
		samples, sampleRate, err := app.Produce(app.Options{Config: preview})
		if err != nil {
			return previewDoneMsg{err: err}
		}
		return previewDoneMsg{err: playback.Play(samples, sampleRate)}
	}
}

// writeCmd writes the configured tone to the output file
func writeCmd(cfg config.Config, outPath string) tea.Cmd {
	return func() tea.Msg {
		return writeDoneMsg{err: app.WriteFile(app.Options{Config: cfg}, outPath)}
	}
}

// transpose scales every pitch by factor, clamped to the valid range.
func transpose(freqs []float64, factor float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		scaled := f * factor
		if scaled < config.MinFrequency {
			scaled = config.MinFrequency
		}
		if scaled > config.MaxFrequency {
			scaled = config.MaxFrequency
		}
		out[i] = scaled
	}
	return out
}

// nextShape cycles through the closed shape enumeration.
func nextShape(s synth.Shape) synth.Shape {
	switch s {
	case synth.ShapeSine:
		return synth.ShapeSquare
	case synth.ShapeSquare:
		return synth.ShapeTriangle
	case synth.ShapeTriangle:
		return synth.ShapeSawtooth
	case synth.ShapeSawtooth:
		return synth.ShapePoint
	case synth.ShapePoint:
		return synth.ShapeCircle
	default:
		return synth.ShapeSine
	}
}

func formatFrequencies(freqs []float64) string {
	s := ""
	for i, f := range freqs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.2f Hz", f)
	}
	return s
}

func outputName(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}

func renderBar(value, max float64, width int) string {
	filled := int(value * float64(width) / max)
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// truncate shortens s to at most length runes. Slicing on runes keeps
// multi-byte status text (wrapped OS errors, file names) valid UTF-8.
func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}
