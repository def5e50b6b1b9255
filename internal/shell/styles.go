// SPDX-License-Identifier: MIT

package shell

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the shell and the one-shot commands.
const (
	// ColorPrimary is purple - used for titles and menu headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for prompts and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for true predicates and results.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and false predicates.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for re-prompts.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for matrices and scalar values.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles renders text with the palette bound to one writer's color profile.
// The zero value (or color disabled) renders text unchanged.
type Styles struct {
	enabled bool
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	value   lipgloss.Style
}

// NewStyles builds styles bound to w's color profile.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{}
	}
	r := lipgloss.NewRenderer(w)

	return Styles{
		enabled: true,
		title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		muted:   r.NewStyle().Foreground(ColorMuted),
		success: r.NewStyle().Foreground(ColorSuccess),
		err:     r.NewStyle().Bold(true).Foreground(ColorError),
		warning: r.NewStyle().Foreground(ColorWarning),
		value:   r.NewStyle().Foreground(ColorHighlight),
	}
}

// Title styles headers.
func (s Styles) Title(text string) string { return s.apply(s.title, text) }

// Muted styles prompts and secondary text.
func (s Styles) Muted(text string) string { return s.apply(s.muted, text) }

// Success styles positive outcomes.
func (s Styles) Success(text string) string { return s.apply(s.success, text) }

// Error styles failures.
func (s Styles) Error(text string) string { return s.apply(s.err, text) }

// Warning styles re-prompts.
func (s Styles) Warning(text string) string { return s.apply(s.warning, text) }

// Value styles results.
func (s Styles) Value(text string) string { return s.apply(s.value, text) }

// apply styles each line on its own so multi-line matrices keep their
// layout (lipgloss pads every line of a block to the widest one).
func (s Styles) apply(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}

	return strings.Join(lines, "\n")
}
