package ga

import (
	"errors"
	"math"
	"sort"
)

// maxRedraws bounds how many same-slot pairs are discarded in a row before the
// second parent is drawn from the wheel with the mother's slot removed. Only
// reached when nearly all probability mass sits on one slot.
const maxRedraws = 1000

// CumulativeDistribution builds the roulette wheel over genomes sorted by
// ascending fitness: P[i] = P[i-1] + fitness[i]/total. When the total is not
// positive and finite every slot gets the same share.
func CumulativeDistribution(genomes []Genome) []float64 {
	n := len(genomes)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}

	var total float64
	for _, g := range genomes {
		total += g.Fitness
	}

	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		for i := range dist {
			dist[i] = float64(i+1) / float64(n)
		}
		return dist
	}

	var cumulative float64
	for i, g := range genomes {
		cumulative += g.Fitness / total
		dist[i] = cumulative
	}
	return dist
}

// RouletteSelect returns the smallest rank i with r <= dist[i] for a uniform r.
// Rounding can leave the last entry just below 1; such draws land on the last rank.
func RouletteSelect(dist []float64, rng Rand) int {
	r := rng.Float64()
	i := sort.SearchFloat64s(dist, r)
	if i >= len(dist) {
		return len(dist) - 1
	}
	return i
}

// Pair holds the population slots of two parents
type Pair struct {
	Mother int
	Father int
}

// SelectParents draws n parent pairs from the wheel. A pair whose draws land on
// the same slot is discarded and redrawn, so mother and father are always
// distinct slots.
func SelectParents(dist []float64, n int, rng Rand) ([]Pair, error) {
	if n == 0 {
		return nil, nil
	}
	if len(dist) < 2 {
		return nil, errors.New("need at least two slots to select distinct parents")
	}

	pairs := make([]Pair, 0, n)
	for len(pairs) < n {
		var p Pair
		for redraws := 0; ; redraws++ {
			p.Mother = RouletteSelect(dist, rng)
			if redraws >= maxRedraws {
				p.Father = selectExcluding(dist, p.Mother, rng)
				break
			}
			p.Father = RouletteSelect(dist, rng)
			if p.Mother != p.Father {
				break
			}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// selectExcluding spins the wheel with slot skip removed and the remaining
// mass renormalized. Slots without mass are never picked; only when no other
// slot carries any mass is the draw uniform over the other slots.
func selectExcluding(dist []float64, skip int, rng Rand) int {
	var remaining float64
	for i := range dist {
		if i != skip {
			remaining += slotMass(dist, i)
		}
	}
	if remaining <= 0 || math.IsNaN(remaining) {
		return otherSlot(skip, len(dist), rng)
	}

	r := rng.Float64() * remaining
	var cumulative float64
	last := -1
	for i := range dist {
		m := slotMass(dist, i)
		if i == skip || m <= 0 {
			continue
		}
		last = i
		cumulative += m
		if r < cumulative {
			return i
		}
	}
	return last
}

// slotMass is the probability share of slot i on the wheel
func slotMass(dist []float64, i int) float64 {
	if i == 0 {
		return dist[0]
	}
	return dist[i] - dist[i-1]
}

// otherSlot draws uniformly among the n-1 slots that are not skip
func otherSlot(skip, n int, rng Rand) int {
	i := int(rng.Float64() * float64(n-1))
	if i >= n-1 {
		i = n - 2
	}
	if i >= skip {
		i++
	}
	return i
}
