package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recipebox/webclient/internal/model"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	failStyle  = lipgloss.NewStyle().Foreground(colorFail)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// RenderRecipesTerminal is the CLI counterpart of RenderRecipes.
func RenderRecipesTerminal(w io.Writer, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render(EmptyPlaceholder))
		return err
	}
	for _, r := range recipes {
		if _, err := fmt.Fprintln(w, renderCard(r)); err != nil {
			return err
		}
	}
	return nil
}

func renderCard(r model.Recipe) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Title))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render("#" + r.ID.String()))
	b.WriteString("\n")
	if r.ImageURL != "" {
		b.WriteString(mutedStyle.Render(r.ImageURL))
		b.WriteString("\n")
	}
	b.WriteString(r.Instructions)
	return cardStyle.Render(b.String())
}

// RenderError formats a failed operation for the terminal.
func RenderError(err error) string {
	return failStyle.Render("✗ " + err.Error())
}
