// Package instances generates reproducible synthetic problem instances for
// every problem family. The same (spec, seed) pair always yields the same
// instance.
package instances

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/piwi3910/apsuite/internal/model"
)

// Distribution names an instance family.
type Distribution string

const (
	Uniform   Distribution = "uniform"
	Bimodal   Distribution = "bimodal"
	HeavyTail Distribution = "heavy_tail"

	// Unrelated-machine families.
	LognormalMachines Distribution = "lognormal_machines" // p[i][j] = base[j] / speed[i] * noise
	RandomMatrix      Distribution = "random_matrix"      // Independent p[i][j]
	BimodalJobs       Distribution = "bimodal_jobs"       // Job sizes 10 or 80 scaled by machine speed
)

// Spec selects size, family and seed of a generated instance.
type Spec struct {
	N    int          `json:"n" yaml:"n"`
	M    int          `json:"m,omitempty" yaml:"m,omitempty"`
	Dist Distribution `json:"dist" yaml:"dist"`
	Seed int64        `json:"seed" yaml:"seed"`
}

type sampler struct {
	rng *rand.Rand
}

func newSampler(seed int64) *sampler {
	return &sampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *sampler) uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi}.Quantile(s.rng.Float64())
}

// pareto draws from a Pareto distribution with scale 1, so values are >= 1.
func (s *sampler) pareto(alpha float64) float64 {
	return distuv.Pareto{Xm: 1, Alpha: alpha}.Quantile(s.rng.Float64())
}

func (s *sampler) lognormal(mu, sigma float64) float64 {
	// Quantile(0) is 0 and lognormal values must stay positive.
	u := s.rng.Float64()
	for u == 0 {
		u = s.rng.Float64()
	}
	return distuv.LogNormal{Mu: mu, Sigma: sigma}.Quantile(u)
}

func (s *sampler) shuffle(xs []float64) {
	s.rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}

func clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Items1D generates n item sizes in (0, capacity).
func Items1D(spec Spec, capacity float64) ([]float64, error) {
	if spec.N < 0 {
		return nil, fmt.Errorf("%w: item count must be >= 0, got %d", model.ErrInvalidSetting, spec.N)
	}
	s := newSampler(spec.Seed)
	x := make([]float64, spec.N)

	switch spec.Dist {
	case Uniform:
		for i := range x {
			x[i] = s.rng.Float64()
		}
	case Bimodal:
		half := spec.N / 2
		for i := range x {
			if i < half {
				x[i] = s.uniform(0.05, 0.3)
			} else {
				x[i] = s.uniform(0.6, 0.95)
			}
		}
		s.shuffle(x)
	case HeavyTail:
		for i := range x {
			x[i] = clip(1/s.pareto(2), 0.01, 0.99)
		}
	default:
		return nil, fmt.Errorf("%w: unknown 1D distribution %q", model.ErrInvalidSetting, spec.Dist)
	}

	for i := range x {
		x[i] = clip(x[i], 1e-6, 1-1e-6) * capacity
	}
	return x, nil
}

// Rects generates n rectangles that each fit in a w x h bin. IDs are the
// generation index.
func Rects(spec Spec, w, h float64) ([]model.Rect, error) {
	if spec.N < 0 {
		return nil, fmt.Errorf("%w: rectangle count must be >= 0, got %d", model.ErrInvalidSetting, spec.N)
	}
	s := newSampler(spec.Seed)
	ws := make([]float64, spec.N)
	hs := make([]float64, spec.N)

	switch spec.Dist {
	case Uniform:
		for i := range ws {
			ws[i] = s.uniform(0.05, 0.8) * w
			hs[i] = s.uniform(0.05, 0.8) * h
		}
	case Bimodal:
		// Half flat-and-wide, half tall-and-narrow, then permuted.
		half := spec.N / 2
		for i := range ws {
			if i < half {
				ws[i] = s.uniform(0.4, 0.9) * w
				hs[i] = s.uniform(0.05, 0.3) * h
			} else {
				ws[i] = s.uniform(0.05, 0.3) * w
				hs[i] = s.uniform(0.4, 0.9) * h
			}
		}
		perm := s.rng.Perm(spec.N)
		pw := make([]float64, spec.N)
		ph := make([]float64, spec.N)
		for i, k := range perm {
			pw[i], ph[i] = ws[k], hs[k]
		}
		ws, hs = pw, ph
	case HeavyTail:
		for i := range ws {
			ws[i] = clip(0.95*w/s.pareto(2), 0.02*w, 0.95*w)
			hs[i] = clip(0.95*h/s.pareto(2), 0.02*h, 0.95*h)
		}
	default:
		return nil, fmt.Errorf("%w: unknown 2D distribution %q", model.ErrInvalidSetting, spec.Dist)
	}

	rects := make([]model.Rect, spec.N)
	for i := range rects {
		rects[i] = model.Rect{W: ws[i], H: hs[i], ID: i}
	}
	return rects, nil
}

// IdenticalJobs generates n processing times for identical machines.
func IdenticalJobs(spec Spec) ([]float64, error) {
	if spec.N < 0 {
		return nil, fmt.Errorf("%w: job count must be >= 0, got %d", model.ErrInvalidSetting, spec.N)
	}
	s := newSampler(spec.Seed)
	p := make([]float64, spec.N)

	switch spec.Dist {
	case Uniform:
		for i := range p {
			p[i] = s.uniform(1, 100)
		}
	case Bimodal:
		half := spec.N / 2
		for i := range p {
			if i < half {
				p[i] = s.uniform(1, 20)
			} else {
				p[i] = s.uniform(50, 100)
			}
		}
		s.shuffle(p)
	case HeavyTail:
		for i := range p {
			p[i] = clip(s.lognormal(2.5, 1), 1, 200)
		}
	default:
		return nil, fmt.Errorf("%w: unknown identical-machines distribution %q", model.ErrInvalidSetting, spec.Dist)
	}
	return p, nil
}

// Unrelated generates an M x N processing-time matrix.
func Unrelated(spec Spec) (model.UnrelatedInstance, error) {
	if spec.M < 1 {
		return model.UnrelatedInstance{}, fmt.Errorf("%w: machine count must be >= 1, got %d", model.ErrInvalidSetting, spec.M)
	}
	if spec.N < 0 {
		return model.UnrelatedInstance{}, fmt.Errorf("%w: job count must be >= 0, got %d", model.ErrInvalidSetting, spec.N)
	}
	s := newSampler(spec.Seed)
	m, n := spec.M, spec.N
	p := make([][]float64, m)
	for i := range p {
		p[i] = make([]float64, n)
	}

	switch spec.Dist {
	case LognormalMachines:
		speeds := make([]float64, m)
		for i := range speeds {
			speeds[i] = s.lognormal(0, 0.6)
		}
		base := make([]float64, n)
		for j := range base {
			base[j] = s.uniform(1, 100)
		}
		for i := range p {
			for j := range p[i] {
				p[i][j] = base[j] / speeds[i] * s.uniform(0.8, 1.2)
			}
		}
	case RandomMatrix:
		for i := range p {
			for j := range p[i] {
				p[i][j] = s.uniform(1, 100)
			}
		}
	case BimodalJobs:
		base := make([]float64, n)
		for j := range base {
			base[j] = 80
			if s.rng.Float64() < 0.6 {
				base[j] = 10
			}
		}
		speeds := make([]float64, m)
		for i := range speeds {
			speeds[i] = s.uniform(0.5, 2)
		}
		for i := range p {
			for j := range p[i] {
				p[i][j] = base[j] / speeds[i] * s.uniform(0.9, 1.1)
			}
		}
	default:
		return model.UnrelatedInstance{}, fmt.Errorf("%w: unknown unrelated-machines distribution %q", model.ErrInvalidSetting, spec.Dist)
	}
	return model.UnrelatedInstance{P: p}, nil
}
