package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/provtools/wlsprov/pkg/domain"
)

// PlanMarkdown renders a plan as a markdown document, one numbered entry per
// administrative call in execution order.
func PlanMarkdown(plan domain.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Plan: %s\n\n", plan.Name)
	fmt.Fprintf(&b, "%d step(s), executed in order, fail-fast.\n\n", len(plan.Steps))
	for i, step := range plan.Steps {
		fmt.Fprintf(&b, "%d. **%s** — %s\n", i+1, step.ID, step.Description)
	}
	return b.String()
}

// RenderPlan writes the plan to stdout: styled markdown on a terminal,
// plain markdown otherwise (so output stays pipeable).
func RenderPlan(plan domain.Plan) error {
	return renderPlanTo(os.Stdout, plan, term.IsTerminal(int(os.Stdout.Fd())))
}

func renderPlanTo(w io.Writer, plan domain.Plan, pretty bool) error {
	md := PlanMarkdown(plan)

	if !pretty {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithColorProfile(termenv.ColorProfile()),
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to plain output rather than failing the command.
		_, werr := io.WriteString(w, md)
		return werr
	}

	out, err := renderer.Render(md)
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}
	_, err = io.WriteString(w, out)
	return err
}
