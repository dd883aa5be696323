package loan

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPlan() Plan {
	return Plan{
		Nominal: 1250,
		Loans: []Loan{
			{Name: "a", InterestRate: 5.00, Principal: 1500},
			{Name: "b", InterestRate: 3.50, Principal: 10000},
			{Name: "c", InterestRate: 9.50, Principal: 5000},
		},
	}
}

func TestNumPayments(t *testing.T) {
	l := Loan{InterestRate: 6, Principal: 10000}

	// standard amortization: 10000 at 0.5%/month over 60 months is ~193.33
	n := NumPayments(l, 193.328)
	assert.InDelta(t, 60, n, 0.01)
	assert.InDelta(t, 60*193.328, TotalPaid(l, 193.328), 1)
}

func TestNumPaymentsZeroRate(t *testing.T) {
	l := Loan{InterestRate: 0, Principal: 1200}
	assert.Equal(t, 12.0, NumPayments(l, 100))
	assert.Equal(t, 1200.0, TotalPaid(l, 100))
}

func TestNumPaymentsBelowInterestIsInfeasible(t *testing.T) {
	l := Loan{InterestRate: 12, Principal: 10000}

	// interest alone is 100/month
	assert.False(t, Feasible(NumPayments(l, 50)))
	assert.False(t, Feasible(NumPayments(l, 100)))
	assert.False(t, Feasible(NumPayments(l, 0)))
	assert.True(t, Feasible(NumPayments(l, 150)))
}

func TestPaymentsSplitRemaining(t *testing.T) {
	p := Plan{Nominal: 1000, Loans: make([]Loan, 3)}

	got := p.Payments([]float64{0.75, 0.25, 0.9})
	assert.InDeltaSlice(t, []float64{750, 62.5, 187.5}, got, 1e-9)
}

func TestPaymentsSumToMonthly(t *testing.T) {
	p := defaultPlan()
	p.Deviation = 200
	genes := []float64{0.3, 0.6, 0.5}

	var sum float64
	for _, v := range p.Payments(genes) {
		sum += v
	}
	assert.InDelta(t, 1350, p.MonthlyNominal(genes), 1e-9)
	assert.InDelta(t, 1350, sum, 1e-9)
}

func TestBreakdown(t *testing.T) {
	p := defaultPlan()
	b := p.Breakdown([]float64{0.2, 0.5, 0})

	require.Len(t, b.Lines, 3)
	assert.True(t, b.Feasible)
	assert.Equal(t, 1250.0, b.Monthly)

	var total float64
	for _, l := range b.Lines {
		assert.True(t, l.Feasible)
		assert.Greater(t, l.TotalPaid, l.Loan.Principal)
		total += l.TotalPaid
	}
	assert.InDelta(t, total, b.TotalPaid, 1e-9)
}

func TestObjectiveFitness(t *testing.T) {
	o := NewObjective(defaultPlan(), false)

	genes := []float64{0.2, 0.5, 0}
	b := o.Plan.Breakdown(genes)
	assert.InDelta(t, 1/b.TotalPaid, o.Fitness(genes), 1e-15)

	// all money on loan a leaves b and c unpaid
	assert.Equal(t, InfeasibleFitness, o.Fitness([]float64{1, 0, 0}))
}

func TestObjectivePrefersCheaperPlans(t *testing.T) {
	o := NewObjective(defaultPlan(), false)

	cheap := o.Fitness([]float64{0.05, 0.5, 0})
	dear := o.Fitness([]float64{0.05, 0.95, 0})
	assert.Greater(t, cheap, dear)
}

func TestObjectiveAccept(t *testing.T) {
	lenient := NewObjective(defaultPlan(), false)
	strict := NewObjective(defaultPlan(), true)
	infeasible := []float64{1, 0, 0}

	assert.True(t, lenient.Accept(infeasible))
	assert.False(t, strict.Accept(infeasible))
	assert.True(t, strict.Accept([]float64{0.2, 0.5, 0}))
}

func TestFitnessThreshold(t *testing.T) {
	o := NewObjective(defaultPlan(), false)

	assert.InDelta(t, 1/(16500*1.3), o.FitnessThreshold(1.3), 1e-15)
	assert.Zero(t, o.FitnessThreshold(0))
}

func TestPlanValidate(t *testing.T) {
	assert.NoError(t, defaultPlan().Validate())

	p := defaultPlan()
	p.Loans = nil
	assert.Error(t, p.Validate())

	p = defaultPlan()
	p.Nominal = 0
	assert.Error(t, p.Validate())

	p = defaultPlan()
	p.Loans[1].Principal = -1
	assert.Error(t, p.Validate())

	p = defaultPlan()
	p.Deviation = math.Inf(-1)
	assert.Error(t, p.Validate())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, defaultPlan(), [][]float64{{0.2, 0.5, 0}, {1, 0, 0}})

	out := buf.String()
	assert.Contains(t, out, "Individual 0")
	assert.Contains(t, out, "Individual 1")
	assert.Contains(t, out, "Monthly Payment: $1,250.00")
	assert.Contains(t, out, "never")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$16,500.00", Money(16500))
	assert.Equal(t, "never", Money(math.Inf(1)))
}
