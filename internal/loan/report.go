package loan

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// Money formats an amount as dollars with thousands separators
func Money(v float64) string {
	if !Feasible(v) {
		return "never"
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func years(l Line) string {
	if !l.Feasible {
		return "never"
	}
	return fmt.Sprintf("%.2f", l.Years())
}

// WriteBreakdown prints the payment split for one genome
func WriteBreakdown(w io.Writer, b Breakdown) {
	for i, l := range b.Lines {
		name := l.Loan.Name
		if name == "" {
			name = fmt.Sprintf("Loan %d", i)
		}
		fmt.Fprintf(w, " %-12s Payment: %-12s Years: %s\n", name+":", Money(l.Payment), years(l))
	}
	fmt.Fprintf(w, "Monthly Payment: %s\n", Money(b.Monthly))
	fmt.Fprintf(w, "Total Paid:      %s\n", Money(b.TotalPaid))
}

// WriteSummary prints the breakdown of every individual, in the order given
func WriteSummary(w io.Writer, plan Plan, individuals [][]float64) {
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	for i, genes := range individuals {
		title := fmt.Sprintf("Individual %d", i)
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, strings.Repeat("-", len(title)))
		WriteBreakdown(w, plan.Breakdown(genes))
		fmt.Fprintln(w)
	}
}
