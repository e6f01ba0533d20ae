// Package report renders use case results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/ui/output"
	"go.trai.ch/viewgraph/internal/ui/style"
)

// Renderer writes plain-text reports. Colours follow the terminal profile and NO_COLOR.
type Renderer struct {
	out *termenv.Output
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

func (r *Renderer) paint(s string, c lipgloss.Color) string {
	return output.Paint(r.out, s, string(c))
}

func (r *Renderer) flush(b *strings.Builder) error {
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Prune renders the retained node counts and lost requirements per configuration.
func (r *Renderer) Prune(rep *app.PruneReport) error {
	var b strings.Builder

	total := 0
	for _, c := range rep.Configurations {
		total += c.Total
	}
	fmt.Fprintf(&b, "view %s: %d of %d nodes removed\n", r.paint(rep.View, style.Iris), rep.Removed(), total)
	fmt.Fprintf(&b, "invalid: %s\n", joinIDs(rep.Invalid))

	width := 0
	for _, c := range rep.Configurations {
		width = max(width, len(c.Name))
	}
	for _, c := range rep.Configurations {
		icon := r.paint(style.Check, style.Green)
		switch {
		case c.Retained == 0 && c.Total > 0:
			icon = r.paint(style.Cross, style.Red)
		case len(c.Missing) > 0:
			icon = r.paint(style.Warning, style.Yellow)
		}
		fmt.Fprintf(&b, "%s %-*s  %d/%d nodes retained\n", icon, width, c.Name, c.Retained, c.Total)
		for _, req := range c.Missing {
			fmt.Fprintf(&b, "    %s %s\n", r.paint(style.Arrow, style.Slate), req)
		}
	}
	return r.flush(&b)
}

// Validity renders the view window and the verdict for the requested instant.
func (r *Renderer) Validity(rep *app.ValidityReport) error {
	var b strings.Builder

	at := rep.At.UTC().Format(time.RFC3339)
	if rep.Valid {
		fmt.Fprintf(&b, "%s view %s is valid at %s\n", r.paint(style.Check, style.Green), r.paint(rep.View, style.Iris), at)
	} else {
		fmt.Fprintf(&b, "%s view %s is not valid at %s\n", r.paint(style.Cross, style.Red), r.paint(rep.View, style.Iris), at)
	}
	fmt.Fprintf(&b, "window: %s\n", rep.Window)

	width := 0
	for _, c := range rep.Configurations {
		width = max(width, len(c.Name))
	}
	for _, c := range rep.Configurations {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Name, r.paint(c.Window.String(), style.Slate))
	}
	return r.flush(&b)
}

// Resolve renders the ledger content and what changed during the run.
func (r *Renderer) Resolve(rep *app.ResolveReport) error {
	var b strings.Builder
	arrow := r.paint(style.Arrow, style.Slate)

	fmt.Fprintf(&b, "view %s resolved at %s\n", r.paint(rep.View, style.Iris), rep.VersionCorrection)
	if len(rep.Entries) == 0 {
		b.WriteString("ledger: empty\n")
	} else {
		fmt.Fprintf(&b, "ledger (%d):\n", len(rep.Entries))
		for _, e := range rep.Entries {
			fmt.Fprintf(&b, "  %s %s %s\n", e.Reference, arrow, e.Resolved)
		}
	}
	if len(rep.Changed) > 0 {
		fmt.Fprintf(&b, "%s changed since compilation (%d):\n", r.paint(style.Warning, style.Yellow), len(rep.Changed))
		for _, c := range rep.Changed {
			fmt.Fprintf(&b, "  %s %s %s %s\n", c.Reference, c.Compiled, arrow, c.Current)
		}
	}
	if len(rep.Unresolved) > 0 {
		fmt.Fprintf(&b, "%s unresolved (%d):\n", r.paint(style.Cross, style.Red), len(rep.Unresolved))
		for _, ref := range rep.Unresolved {
			fmt.Fprintf(&b, "  %s\n", ref)
		}
	}
	if len(rep.Expired) > 0 {
		fmt.Fprintf(&b, "expired (%d):\n", len(rep.Expired))
		for _, id := range rep.Expired {
			fmt.Fprintf(&b, "  %s %s\n", r.paint(style.Dot, style.Red), id)
		}
	}
	if rep.Touched > 0 {
		fmt.Fprintf(&b, "touched %d targets\n", rep.Touched)
	}
	return r.flush(&b)
}

func joinIDs(ids []domain.UniqueID) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
