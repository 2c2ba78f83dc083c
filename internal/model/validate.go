package model

import (
	"fmt"
	"math"
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateItems checks a 1D instance and returns a fresh copy of the items.
// Every item must be a finite number in (0, capacity] and capacity must be > 0.
func ValidateItems(items []float64, capacity float64) ([]float64, error) {
	if !finite(capacity) {
		return nil, fmt.Errorf("%w: capacity must be numeric, got %v", ErrInvalidInstance, capacity)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be > 0, got %v", ErrInvalidInstance, capacity)
	}
	out := make([]float64, len(items))
	for i, x := range items {
		if !finite(x) {
			return nil, fmt.Errorf("%w: item %d size must be numeric, got %v", ErrInvalidInstance, i, x)
		}
		if x <= 0 {
			return nil, fmt.Errorf("%w: item %d size must be > 0, got %v", ErrInvalidInstance, i, x)
		}
		if x > capacity {
			return nil, fmt.Errorf("%w: item %d size %v exceeds capacity %v", ErrInvalidInstance, i, x, capacity)
		}
		out[i] = x
	}
	return out, nil
}

// ValidateRects checks a 2D instance and returns a fresh copy of the rectangles.
func ValidateRects(rects []Rect, w, h float64) ([]Rect, error) {
	if !finite(w) || !finite(h) {
		return nil, fmt.Errorf("%w: bin dimensions must be numeric, got (%v, %v)", ErrInvalidInstance, w, h)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: bin dimensions must be > 0, got (%v, %v)", ErrInvalidInstance, w, h)
	}
	out := make([]Rect, len(rects))
	for i, r := range rects {
		if !finite(r.W) || !finite(r.H) {
			return nil, fmt.Errorf("%w: rectangle %d must have numeric size, got (%v, %v)", ErrInvalidInstance, i, r.W, r.H)
		}
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("%w: rectangle %d must have positive size, got (%v, %v)", ErrInvalidInstance, i, r.W, r.H)
		}
		if r.W > w || r.H > h {
			return nil, fmt.Errorf("%w: rectangle %d (%v, %v) does not fit in bin (%v, %v)", ErrInvalidInstance, i, r.W, r.H, w, h)
		}
		out[i] = r
	}
	return out, nil
}

// ValidateJobs checks an identical-machines instance and returns a fresh copy
// of the processing times.
func ValidateJobs(p []float64, m int) ([]float64, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: machine count must be >= 1, got %d", ErrInvalidInstance, m)
	}
	out := make([]float64, len(p))
	for j, x := range p {
		if !finite(x) {
			return nil, fmt.Errorf("%w: job %d processing time must be numeric, got %v", ErrInvalidInstance, j, x)
		}
		if x <= 0 {
			return nil, fmt.Errorf("%w: job %d processing time must be > 0, got %v", ErrInvalidInstance, j, x)
		}
		out[j] = x
	}
	return out, nil
}

// ValidateUnrelated checks that P is a non-empty rectangular matrix of
// positive finite processing times and returns a deep copy.
func ValidateUnrelated(inst UnrelatedInstance) (UnrelatedInstance, error) {
	m := len(inst.P)
	if m < 1 {
		return UnrelatedInstance{}, fmt.Errorf("%w: machine count must be >= 1, got %d", ErrInvalidInstance, m)
	}
	n := len(inst.P[0])
	p := make([][]float64, m)
	for i, row := range inst.P {
		if len(row) != n {
			return UnrelatedInstance{}, fmt.Errorf("%w: machine %d has %d jobs, want %d", ErrInvalidInstance, i, len(row), n)
		}
		p[i] = make([]float64, n)
		for j, x := range row {
			if !finite(x) {
				return UnrelatedInstance{}, fmt.Errorf("%w: p[%d][%d] must be numeric, got %v", ErrInvalidInstance, i, j, x)
			}
			if x <= 0 {
				return UnrelatedInstance{}, fmt.Errorf("%w: p[%d][%d] must be > 0, got %v", ErrInvalidInstance, i, j, x)
			}
			p[i][j] = x
		}
	}
	return UnrelatedInstance{P: p}, nil
}
