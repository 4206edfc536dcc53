// Package ui renders partitions, script steps and validation results for
// people. Results meant for other programs are written by the cmd package
// instead.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/partitions/internal/script"
)

// Printer writes styled, human-readable output.
type Printer struct {
	w     io.Writer
	color bool
}

// NewWriter returns a Printer writing to w. When color is false no styling
// is applied.
func NewWriter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleDanger, "error:"), msg)
}

// Info prints a de-emphasized message.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.render(styleMuted, msg))
}

// ValidateResult prints the outcome of validating the named script.
func (p *Printer) ValidateResult(name string, ops int, errs []script.ValidationError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.w, "%s %s\n", p.render(styleSuccess, iconDone+" script "+strconv.Quote(name)),
			p.render(styleMuted, fmt.Sprintf("%d op(s), no errors", ops)))
		return
	}
	fmt.Fprintf(p.w, "%s %d error(s):\n", p.render(styleDanger, iconFailed+" script "+strconv.Quote(name)), len(errs))
	for _, e := range errs {
		fmt.Fprintf(p.w, "  %s %s\n", p.render(styleDanger, iconBullet), e.Error())
	}
}

// Step prints one applied step.
func (p *Printer) Step(s script.Step) {
	icon, style := iconStep, styleMuted
	if s.Kind.IsExpectation() {
		icon, style = iconDone, styleSuccess
		if s.Err != nil {
			icon, style = iconFailed, styleDanger
		}
	}
	line := fmt.Sprintf("%s %3d %-18s len=%d sets=%d", p.render(style, icon), s.Number, s.Kind, s.Len, s.Sets)
	if s.Output != "" {
		line += " " + p.render(styleMuted, "→ "+strconv.Quote(s.Output))
	}
	if s.Err != nil {
		line += "\n      " + p.render(styleDanger, s.Err.Error())
	}
	fmt.Fprintln(p.w, line)
}

// Result prints the final partition: one line per set, listing member
// indices and their values.
func (p *Printer) Result(res *script.Result) {
	name := res.Name
	if name == "" {
		name = "partition"
	}
	sets := res.Sets()
	fmt.Fprintf(p.w, "%s %s\n", p.render(styleHeading, name),
		p.render(styleMuted, fmt.Sprintf("(%d element(s), %d set(s))", res.Vec.Len(), len(sets))))
	for n, set := range sets {
		idx := make([]string, len(set))
		values := make([]string, len(set))
		for i, member := range set {
			idx[i] = strconv.Itoa(member)
			values[i] = strconv.Quote(res.Vec.At(member))
		}
		fmt.Fprintf(p.w, "  %s %s %s\n",
			p.render(styleMuted, fmt.Sprintf("%2d", n+1)),
			p.render(styleIndex, "["+strings.Join(idx, " ")+"]"),
			strings.Join(values, ", "))
	}
}
