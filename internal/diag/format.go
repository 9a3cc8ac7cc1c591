package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
	codeColor    = color.New(color.Faint)
)

func severityColor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// FormatGolden renders diagnostics one per line in a stable plain-text form
// suitable for golden files: "<severity> <code> <location> <message>".
func FormatGolden(diags []Diagnostic) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s %s %s", d.Severity, d.Code.ID(), d.Primary, flatten(d.Message))
		if d.Subject != "" {
			fmt.Fprintf(&sb, " (%s)", d.Subject)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "\nnote %s %s %s", d.Code.ID(), n.Loc, flatten(n.Msg))
		}
	}
	return sb.String()
}

// Pretty writes diagnostics for a terminal. Colors follow color.NoColor.
func Pretty(w io.Writer, diags []Diagnostic) error {
	for _, d := range diags {
		sev := severityColor(d.Severity).Sprint(d.Severity)
		if _, err := fmt.Fprintf(w, "%s %s %s: %s\n", sev, codeColor.Sprint(d.Code.ID()), d.Primary, d.Message); err != nil {
			return err
		}
		if d.Subject != "" {
			if _, err := fmt.Fprintf(w, "    value: %s\n", d.Subject); err != nil {
				return err
			}
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "    %s %s: %s\n", noteColor.Sprint("note"), n.Loc, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
