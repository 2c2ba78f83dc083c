// Package metrics compares an objective value against a lower bound.
package metrics

// Packing summarizes a bin-packing result against a lower bound.
type Packing struct {
	NumBins    int      `json:"num_bins"`
	LowerBound int      `json:"lower_bound"`
	Ratio      *float64 `json:"ratio"` // bins / LB, nil when LB = 0
	Gap        *float64 `json:"gap"`   // (bins - LB) / LB, nil when LB = 0
}

// Makespan summarizes a schedule against a lower bound.
type Makespan struct {
	Makespan   float64  `json:"makespan"`
	LowerBound float64  `json:"lower_bound"`
	Ratio      *float64 `json:"ratio"`
	Gap        *float64 `json:"gap"`
}

// ForPacking computes ratio and gap of numBins against lb.
func ForPacking(numBins, lb int) Packing {
	out := Packing{NumBins: numBins, LowerBound: lb}
	out.Ratio, out.Gap = ratioGap(float64(numBins), float64(lb))
	return out
}

// ForMakespan computes ratio and gap of makespan against lb.
func ForMakespan(makespan, lb float64) Makespan {
	out := Makespan{Makespan: makespan, LowerBound: lb}
	out.Ratio, out.Gap = ratioGap(makespan, lb)
	return out
}

func ratioGap(obj, lb float64) (*float64, *float64) {
	if lb <= 0 {
		return nil, nil
	}
	ratio := obj / lb
	gap := (obj - lb) / lb
	return &ratio, &gap
}
