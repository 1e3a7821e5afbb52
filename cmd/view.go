package cmd

import (
	"fmt"

	"github.com/Duong37/dvre-dal-jupyter/pkg/probe"
	"github.com/charmbracelet/lipgloss"
)

func probeStatusLine(res probe.Result) string {
	switch res.Outcome {
	case probe.OutcomePassed:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			stylePassed.Render("▶︎"), " ",
			styleHighlight.Render(res.Name), " (",
			stylePassed.Render("passed"), "; status=",
			styleHighlight.Render(fmt.Sprintf("%d", res.StatusCode)), ")",
		)
	case probe.OutcomeInfo:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleInfo.Render("◼︎"), " ",
			styleHighlight.Render(res.Name), " (",
			styleInfo.Render("info"), "; ",
			styleHighlight.Render(res.Message), ")",
		)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleFailed.Render("◼︎"), " ",
			styleHighlight.Render(res.Name), " (",
			styleFailed.Render("failed"), "; reason=",
			styleHighlight.Render(res.Message), ")",
		)
	}
}
