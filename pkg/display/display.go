// Package display renders provisioning run reports for the terminal.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/devup/pkg/provision"
)

// Renderer writes run reports in a readable three-line-per-step format.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to w. Color is disabled when
// the destination is not a terminal or the environment asks for none.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) || termenv.EnvNoColor() {
		pterm.DisableColor()
	}
	return &Renderer{out: w}
}

// RenderReport writes every step with its item outcomes, then a totals
// line. Failures are listed with their errors so a best-effort run
// still surfaces what went wrong.
func (r *Renderer) RenderReport(report *provision.Report) {
	for _, step := range report.Steps {
		if len(step.Items) == 0 {
			continue
		}
		pterm.DefaultSection.WithWriter(r.out).Println(step.Step)
		for _, item := range step.Items {
			r.renderItem(item)
		}
	}

	summary := fmt.Sprintf("%d installed, %d skipped, %d failed",
		report.Installed(), report.Skipped(), report.Failed())
	if report.Failed() > 0 {
		pterm.Warning.WithWriter(r.out).Println(summary)
		return
	}
	pterm.Success.WithWriter(r.out).Println(summary)
}

func (r *Renderer) renderItem(item provision.ItemResult) {
	switch item.Status {
	case provision.StatusInstalled:
		pterm.Success.WithWriter(r.out).Println(item.Name)
	case provision.StatusSkipped:
		pterm.Info.WithWriter(r.out).Printfln("%s (already present)", item.Name)
	case provision.StatusFailed:
		pterm.Error.WithWriter(r.out).Printfln("%s: %v", item.Name, item.Err)
	}
}

// RenderPresence writes a presence table: one row per identifier with
// whether it currently resolves. Used by the status command.
func (r *Renderer) RenderPresence(rows [][]string) error {
	data := pterm.TableData{{"Item", "Check", "Present"}}
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithWriter(r.out).
		WithHasHeader().
		WithData(data).
		Render()
}
