package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sharesout/internal/view"
)

const (
	defaultWidth  = 72
	defaultHeight = 16
	borderPadding = 2
	labelWidth    = 28
)

// RenderShares renders vm as a boxed panel of the given width.
func RenderShares(vm *view.ViewModel, width int) string {
	if width <= borderPadding {
		width = defaultWidth
	}

	switch vm.State {
	case view.StateError:
		var content strings.Builder
		content.WriteString(CriticalStyle.Render("ERROR"))
		content.WriteString("\n")
		content.WriteString(vm.ErrorMessage)
		return ErrorBoxStyle.Width(width - borderPadding).Render(content.String())

	case view.StateContent:
		var content strings.Builder
		content.WriteString(HeaderStyle.Render(vm.Heading))
		content.WriteString("\n\n")
		writeRow(&content, "Entity", vm.EntityName)
		writeRow(&content, "Max shares outstanding", fmt.Sprintf("%s  (FY %s)", vm.MaxValue, vm.MaxFY))
		writeRow(&content, "Min shares outstanding", fmt.Sprintf("%s  (FY %s)", vm.MinValue, vm.MinFY))
		return BoxStyle.Width(width - borderPadding).Render(strings.TrimRight(content.String(), "\n"))

	default:
		return InfoStyle.Render("Loading...")
	}
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Width(labelWidth).Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

// RenderLoading returns the spinner line for loading. A nil loading renders plain text.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return "Loading..."
	}
	return fmt.Sprintf("\n %s %s\n\n", loading.spinner.View(), loading.message)
}

// RenderHelp renders the key bindings line.
func RenderHelp() string {
	return lipgloss.NewStyle().Foreground(ColorLabel).Render("r reload • q quit")
}
