package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/ifcgraph/pkg/errors"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by console output and the prompt views.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh  = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// status prints one icon-prefixed console line.
func status(w io.Writer, icon string, style lipgloss.Style, msg string) {
	fmt.Fprintln(w, style.Render(icon)+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) {
	status(w, iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	status(w, iconError, styleIconError, fmt.Sprintf(format, args...))
}

// printWarning is used for the recoverable interactive outcomes (bad file,
// unknown tag) as well as viewer problems.
func printWarning(w io.Writer, format string, args ...any) {
	status(w, iconWarning, StyleWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	status(w, iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under the previous message.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints "N nodes · N edges · depth D · cached|fresh".
func printStats(w io.Writer, nodes, edges, maxDistance int, cached bool) {
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleDim.Render(humanize.Comma(int64(nodes)) + " nodes"),
		StyleDim.Render(humanize.Comma(int64(edges)) + " edges"),
		StyleDim.Render(fmt.Sprintf("depth %d", maxDistance)),
		styleFresh.Render(iconFresh),
	}
	if cached {
		parts[3] = styleCached.Render(iconCached)
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, sep))
}

func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// ReportError prints a command failure for the user. The error code, when
// there is one, goes on a detail line instead of prefixing the message.
func ReportError(w io.Writer, err error) {
	msg := err.Error()
	code := errors.GetCode(err)
	if code != "" {
		msg = strings.TrimPrefix(msg, string(code)+": ")
	}
	printError(w, "%s", msg)
	if code != "" {
		printDetail(w, "code %s", code)
	}
}
