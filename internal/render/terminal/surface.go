// Package terminal draws workflow states to a terminal. Nothing is configured at
// import time: Init binds styles to a writer and returns the surface handle.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/zra-sdk/zra-demo/internal/compliance"
	"github.com/zra-sdk/zra-demo/internal/views"
	"github.com/zra-sdk/zra-demo/internal/workflow"
)

// Mode selects how successful views are drawn.
type Mode string

const (
	ModePlain    Mode = "plain"
	ModeMarkdown Mode = "markdown"
)

const defaultWidth = 80

var ErrClosed = errors.New("terminal surface is closed")

// Options configures a Surface.
type Options struct {
	Mode Mode
	// Width wraps markdown output. Zero uses 80 columns.
	Width int
	// NoColor forces plain ASCII output regardless of the terminal.
	NoColor bool
	// Quiet suppresses pending states.
	Quiet bool
}

// Surface implements workflow.Surface on an io.Writer.
type Surface struct {
	mu       sync.Mutex
	out      io.Writer
	opts     Options
	styles   Styles
	markdown *glamour.TermRenderer
	closed   bool
	writeErr error
}

// Init creates a surface writing to w.
func Init(w io.Writer, opts Options) (*Surface, error) {
	if w == nil {
		return nil, errors.New("terminal surface requires a writer")
	}
	if opts.Mode == "" {
		opts.Mode = ModePlain
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	renderer := lipgloss.NewRenderer(w)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	s := &Surface{
		out:    w,
		opts:   opts,
		styles: newStyles(renderer),
	}

	switch opts.Mode {
	case ModePlain:
	case ModeMarkdown:
		style := glamour.WithAutoStyle()
		if opts.NoColor {
			style = glamour.WithStandardStyle("notty")
		}
		md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(opts.Width))
		if err != nil {
			return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		s.markdown = md
	default:
		return nil, fmt.Errorf("unknown terminal mode %q", opts.Mode)
	}

	return s, nil
}

// Show implements workflow.Surface. Write failures are kept and reported by Close.
func (s *Surface) Show(id workflow.WorkflowID, state workflow.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if state.Phase == workflow.PhasePending && s.opts.Quiet {
		return
	}

	text := s.format(id, state)
	if _, err := io.WriteString(s.out, text); err != nil && s.writeErr == nil {
		s.writeErr = err
	}
}

// Close stops drawing. It returns the first write error, if any.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.markdown = nil
	return s.writeErr
}

func (s *Surface) format(id workflow.WorkflowID, state workflow.State) string {
	prefix := s.styles.Workflow.Render("[" + string(id) + "]")

	switch state.Phase {
	case workflow.PhasePending:
		return prefix + " " + s.styles.Pending.Render(state.Message) + "\n"
	case workflow.PhaseError:
		return prefix + " " + s.styles.Error.Render("✗ "+state.Message) + "\n"
	case workflow.PhaseSuccess:
		if state.View == nil {
			return prefix + "\n"
		}
		return prefix + "\n" + s.formatView(*state.View)
	default:
		return ""
	}
}

func (s *Surface) formatView(v views.View) string {
	if s.markdown != nil {
		if out, err := s.markdown.Render(views.Markdown(v)); err == nil {
			return out
		}
	}

	var b strings.Builder
	b.WriteString(s.styles.ForSeverity(v.Severity).Render(v.Title))
	b.WriteString("\n")

	for _, section := range v.Sections {
		if section.Kind == views.SectionHeader {
			if section.Subtitle != "" {
				b.WriteString(s.styles.Subtitle.Render(section.Subtitle))
				b.WriteString("\n")
			}
			continue
		}
		if section.Heading != "" {
			b.WriteString("\n")
			b.WriteString(s.styles.Heading.Render(section.Heading))
			b.WriteString("\n")
		}
		for _, f := range section.Fields {
			b.WriteString("  ")
			b.WriteString(s.styles.Label.Render(f.Label + ":"))
			b.WriteString(" ")
			b.WriteString(s.styles.ForClass(f.Class).Render(f.Value))
			b.WriteString("\n")
		}
		for _, item := range section.Items {
			b.WriteString("  • ")
			b.WriteString(s.styles.Item.Render(item))
			b.WriteString("\n")
		}
		if len(section.Items) == 0 && section.Affirmation != "" {
			b.WriteString("  ")
			b.WriteString(s.styles.ForClass(string(compliance.BadgeSuccess)).Render("✓ " + section.Affirmation))
			b.WriteString("\n")
		}
	}
	return b.String()
}

var _ workflow.Surface = (*Surface)(nil)
