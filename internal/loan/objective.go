package loan

// InfeasibleFitness is assigned to plans that never pay off some loan
const InfeasibleFitness = 1e-10

// Objective scores genomes by the inverse of the total paid across all loans.
// It satisfies ga.Objective and ga.Acceptor.
type Objective struct {
	Plan Plan
	// RejectInfeasible makes Accept veto seeds that leave a loan unpaid
	RejectInfeasible bool
}

// NewObjective creates an objective for plan
func NewObjective(plan Plan, rejectInfeasible bool) *Objective {
	return &Objective{Plan: plan, RejectInfeasible: rejectInfeasible}
}

// Fitness returns 1/total paid, or InfeasibleFitness when any loan cannot be paid off
func (o *Objective) Fitness(genes []float64) float64 {
	b := o.Plan.Breakdown(genes)
	if !b.Feasible || b.TotalPaid <= 0 {
		return InfeasibleFitness
	}
	return 1.0 / b.TotalPaid
}

// Accept admits every genome unless RejectInfeasible is set
func (o *Objective) Accept(genes []float64) bool {
	if !o.RejectInfeasible {
		return true
	}
	return o.Plan.Breakdown(genes).Feasible
}

// FitnessThreshold returns 1/(minimum total * margin), the fitness of a plan
// paying margin times the principal
func (o *Objective) FitnessThreshold(margin float64) float64 {
	minimum := o.Plan.MinimumTotal()
	if minimum <= 0 || margin <= 0 {
		return 0
	}
	return 1.0 / (minimum * margin)
}
