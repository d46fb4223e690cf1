package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zra-sdk/zra-demo/internal/compliance"
)

var (
	colorSuccess = lipgloss.Color("#2E7D32")
	colorWarning = lipgloss.Color("#F9A825")
	colorError   = lipgloss.Color("#C62828")
	colorInfo    = lipgloss.Color("#1565C0")
	colorMuted   = lipgloss.Color("#78909C")
	colorAccent  = lipgloss.Color("#00796B")
)

// Styles holds the lipgloss styles bound to one renderer.
type Styles struct {
	Workflow lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Item     lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style

	severity map[compliance.Severity]lipgloss.Style
	class    map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Workflow: r.NewStyle().Bold(true).Foreground(colorAccent),
		Title:    r.NewStyle().Bold(true),
		Heading:  r.NewStyle().Bold(true).Underline(true),
		Subtitle: r.NewStyle().Italic(true).Foreground(colorMuted),
		Label:    r.NewStyle().Bold(true),
		Value:    r.NewStyle(),
		Item:     r.NewStyle(),
		Pending:  r.NewStyle().Italic(true).Foreground(colorMuted),
		Error:    r.NewStyle().Bold(true).Foreground(colorError),
	}

	s.severity = map[compliance.Severity]lipgloss.Style{
		compliance.SeveritySuccess: r.NewStyle().Bold(true).Foreground(colorSuccess),
		compliance.SeverityWarning: r.NewStyle().Bold(true).Foreground(colorWarning),
		compliance.SeverityError:   r.NewStyle().Bold(true).Foreground(colorError),
		compliance.SeverityInfo:    r.NewStyle().Bold(true).Foreground(colorInfo),
	}

	s.class = map[string]lipgloss.Style{
		string(compliance.BadgeSuccess): r.NewStyle().Foreground(colorSuccess),
		string(compliance.BadgeWarning): r.NewStyle().Foreground(colorWarning),
		string(compliance.BadgeError):   r.NewStyle().Foreground(colorError),
		string(compliance.BadgeInfo):    r.NewStyle().Foreground(colorInfo),
		string(compliance.TierLow):      r.NewStyle().Foreground(colorSuccess),
		string(compliance.TierMedium):   r.NewStyle().Foreground(colorWarning),
		string(compliance.TierHigh):     r.NewStyle().Foreground(colorError),
		string(compliance.TierUnknown):  r.NewStyle().Foreground(colorInfo),
		"amount-due":                    r.NewStyle().Bold(true),
	}
	return s
}

// ForSeverity returns the title style for a view severity.
func (s Styles) ForSeverity(sev compliance.Severity) lipgloss.Style {
	if style, ok := s.severity[sev]; ok {
		return style
	}
	return s.Title
}

// ForClass returns the value style for a field class.
func (s Styles) ForClass(class string) lipgloss.Style {
	if style, ok := s.class[class]; ok {
		return style
	}
	return s.Value
}
