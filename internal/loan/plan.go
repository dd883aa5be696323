package loan

import (
	"errors"
	"fmt"
)

// Plan describes the fixed monthly budget and the loans it is split across
type Plan struct {
	// Nominal is the total monthly payment
	Nominal float64 `json:"nominal"`
	// Deviation lets the last gene raise the monthly payment by up to this amount
	Deviation float64 `json:"deviation"`
	Loans     []Loan  `json:"loans"`
}

// Validate checks the plan
func (p Plan) Validate() error {
	if len(p.Loans) == 0 {
		return errors.New("at least one loan is required")
	}
	if p.Nominal <= 0 {
		return fmt.Errorf("nominal payment must be positive, got %v", p.Nominal)
	}
	if p.Deviation < 0 {
		return fmt.Errorf("payment deviation must be non-negative, got %v", p.Deviation)
	}
	for i, l := range p.Loans {
		if l.Principal <= 0 {
			return fmt.Errorf("loan %d (%s): principal must be positive", i, l.Name)
		}
		if l.InterestRate < 0 {
			return fmt.Errorf("loan %d (%s): interest rate must be non-negative", i, l.Name)
		}
	}
	return nil
}

// GenomeSize returns the number of genes a genome for this plan carries
func (p Plan) GenomeSize() int {
	return len(p.Loans)
}

// MinimumTotal is the least anyone could pay: the sum of all principals
func (p Plan) MinimumTotal() float64 {
	var total float64
	for _, l := range p.Loans {
		total += l.Principal
	}
	return total
}

// MonthlyNominal returns the monthly payment encoded by genes
func (p Plan) MonthlyNominal(genes []float64) float64 {
	return p.Nominal + p.Deviation*genes[len(p.Loans)-1]
}

// Payments splits the monthly payment across the loans. Gene i is the share
// of what is still unallocated that goes to loan i; the last loan gets the rest.
//
//	genes = [0.75, 0.25, x], payment = 1000
//	loan0 = 750, loan1 = 62.50, loan2 = 187.50
func (p Plan) Payments(genes []float64) []float64 {
	n := len(p.Loans)
	payments := make([]float64, n)
	remaining := p.MonthlyNominal(genes)
	for i := 0; i < n-1; i++ {
		payments[i] = remaining * genes[i]
		remaining -= payments[i]
	}
	payments[n-1] = remaining
	return payments
}

// Line is the outcome for one loan under a plan
type Line struct {
	Loan      Loan    `json:"loan"`
	Payment   float64 `json:"payment"`
	Months    float64 `json:"months"`
	TotalPaid float64 `json:"total_paid"`
	Feasible  bool    `json:"feasible"`
}

// Years returns the payoff time in years
func (l Line) Years() float64 {
	return l.Months / 12.0
}

// Breakdown is the full outcome of a genome under a plan
type Breakdown struct {
	Lines     []Line  `json:"lines"`
	Monthly   float64 `json:"monthly"`
	TotalPaid float64 `json:"total_paid"`
	Feasible  bool    `json:"feasible"`
}

// Breakdown computes the per-loan payments, payoff times and totals for genes
func (p Plan) Breakdown(genes []float64) Breakdown {
	payments := p.Payments(genes)
	b := Breakdown{
		Lines:    make([]Line, len(p.Loans)),
		Monthly:  p.MonthlyNominal(genes),
		Feasible: true,
	}
	for i, l := range p.Loans {
		months := NumPayments(l, payments[i])
		ok := Feasible(months)
		b.Lines[i] = Line{
			Loan:      l,
			Payment:   payments[i],
			Months:    months,
			TotalPaid: months * payments[i],
			Feasible:  ok,
		}
		b.TotalPaid += b.Lines[i].TotalPaid
		if !ok {
			b.Feasible = false
		}
	}
	return b
}
