// Package loan holds the amortization math and the objective that scores a
// split of a fixed monthly payment across several loans.
package loan

import "math"

// Loan is a single fixed-rate loan
type Loan struct {
	Name         string  `yaml:"name" json:"name"`
	InterestRate float64 `yaml:"interest_rate" json:"interest_rate"` // annual, percent
	Principal    float64 `yaml:"principal" json:"principal"`
}

// MonthlyRate returns the periodic interest rate as a fraction
func (l Loan) MonthlyRate() float64 {
	return l.InterestRate / 12.0 / 100.0
}

// NumPayments returns how many monthly payments of the given amount pay the
// loan off. The result is NaN or +Inf when the payment never covers the interest.
func NumPayments(l Loan, payment float64) float64 {
	i := l.MonthlyRate()
	if i == 0 {
		return l.Principal / payment
	}
	n := -math.Log10(1 - i*l.Principal/payment)
	return n / math.Log10(1+i)
}

// TotalPaid returns the total amount paid over the life of the loan
func TotalPaid(l Loan, payment float64) float64 {
	return NumPayments(l, payment) * payment
}

// Feasible reports whether a payment count is a usable number
func Feasible(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
}
