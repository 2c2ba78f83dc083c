package model

// Eps is the absolute tolerance used for floating-point boundary comparisons:
// capacity checks, tie-breaks and free-rectangle containment.
const Eps = 1e-12

// Bin holds the item sizes assigned to one 1D bin, in insertion order.
type Bin []float64

// Load returns the sum of item sizes in the bin.
func (b Bin) Load() float64 {
	var total float64
	for _, x := range b {
		total += x
	}
	return total
}

// Count returns the number of items in the bin.
func (b Bin) Count() int {
	return len(b)
}

// PackingResult is the output of every 1D packing engine.
type PackingResult struct {
	Bins []Bin `json:"bins" yaml:"bins"`
}

// NumBins returns the number of bins used.
func (r PackingResult) NumBins() int {
	return len(r.Bins)
}

// Loads returns the load of each bin.
func (r PackingResult) Loads() []float64 {
	loads := make([]float64, len(r.Bins))
	for i, b := range r.Bins {
		loads[i] = b.Load()
	}
	return loads
}

// ItemCount returns the total number of packed items.
func (r PackingResult) ItemCount() int {
	n := 0
	for _, b := range r.Bins {
		n += len(b)
	}
	return n
}

// Clone returns a deep copy of the packing.
func (r PackingResult) Clone() PackingResult {
	bins := make([]Bin, len(r.Bins))
	for i, b := range r.Bins {
		bins[i] = append(Bin(nil), b...)
	}
	return PackingResult{Bins: bins}
}

// Rect is an axis-aligned rectangle to be packed into a 2D bin.
// ID is an optional caller-provided identifier (0 when unset).
type Rect struct {
	W  float64 `json:"w" yaml:"w"`
	H  float64 `json:"h" yaml:"h"`
	ID int     `json:"id,omitempty" yaml:"id,omitempty"`
}

// Area returns w*h.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Placement represents a single rectangle placed in a 2D bin.
type Placement struct {
	Rect Rect    `json:"rect" yaml:"rect"`
	X    float64 `json:"x" yaml:"x"` // Position from left edge
	Y    float64 `json:"y" yaml:"y"` // Position from bottom edge
}

// Right returns the x coordinate of the placement's right edge.
func (p Placement) Right() float64 {
	return p.X + p.Rect.W
}

// Top returns the y coordinate of the placement's top edge.
func (p Placement) Top() float64 {
	return p.Y + p.Rect.H
}

// Overlaps reports whether two placements share interior area.
// Touching edges do not count as overlap.
func (p Placement) Overlaps(o Placement) bool {
	return p.X < o.Right()-Eps && o.X < p.Right()-Eps &&
		p.Y < o.Top()-Eps && o.Y < p.Top()-Eps
}

// Bin2D represents one 2D bin with its placed rectangles.
type Bin2D struct {
	Placements []Placement `json:"placements" yaml:"placements"`
}

// UsedArea returns the total area covered by placements.
func (b Bin2D) UsedArea() float64 {
	var total float64
	for _, p := range b.Placements {
		total += p.Rect.Area()
	}
	return total
}

// Packing2DResult is the output of every 2D packing engine.
type Packing2DResult struct {
	Bins []Bin2D `json:"bins" yaml:"bins"`
}

// NumBins returns the number of bins used.
func (r Packing2DResult) NumBins() int {
	return len(r.Bins)
}

// Efficiency returns the percentage of total bin area covered by rectangles.
func (r Packing2DResult) Efficiency(w, h float64) float64 {
	total := float64(len(r.Bins)) * w * h
	if total == 0 {
		return 0
	}
	var used float64
	for _, b := range r.Bins {
		used += b.UsedArea()
	}
	return (used / total) * 100.0
}

// Schedule maps each identical machine to the processing times assigned to it.
type Schedule struct {
	Machines [][]float64 `json:"machines" yaml:"machines"`
}

// Loads returns the summed processing time per machine.
func (s Schedule) Loads() []float64 {
	loads := make([]float64, len(s.Machines))
	for i, jobs := range s.Machines {
		for _, p := range jobs {
			loads[i] += p
		}
	}
	return loads
}

// Makespan returns the maximum machine load, or 0 for an empty schedule.
func (s Schedule) Makespan() float64 {
	var ms float64
	for _, l := range s.Loads() {
		if l > ms {
			ms = l
		}
	}
	return ms
}

// UnrelatedInstance holds processing times P[i][j] of job j on machine i.
type UnrelatedInstance struct {
	P [][]float64 `json:"p" yaml:"p"`
}

// Machines returns m, the number of rows of P.
func (u UnrelatedInstance) Machines() int {
	return len(u.P)
}

// Jobs returns n, the number of columns of P.
func (u UnrelatedInstance) Jobs() int {
	if len(u.P) == 0 {
		return 0
	}
	return len(u.P[0])
}

// Time returns the processing time of job j on machine i.
func (u UnrelatedInstance) Time(i, j int) float64 {
	return u.P[i][j]
}

// MinTime returns min_i P[i][j].
func (u UnrelatedInstance) MinTime(j int) float64 {
	best := u.P[0][j]
	for i := 1; i < len(u.P); i++ {
		if u.P[i][j] < best {
			best = u.P[i][j]
		}
	}
	return best
}

// MaxTime returns max_i P[i][j].
func (u UnrelatedInstance) MaxTime(j int) float64 {
	best := u.P[0][j]
	for i := 1; i < len(u.P); i++ {
		if u.P[i][j] > best {
			best = u.P[i][j]
		}
	}
	return best
}

// Assignment maps job j to machine Assignment[j].
type Assignment []int

// Loads recomputes the per-machine load of the assignment.
func (a Assignment) Loads(inst UnrelatedInstance) []float64 {
	loads := make([]float64, inst.Machines())
	for j, i := range a {
		loads[i] += inst.P[i][j]
	}
	return loads
}

// Makespan recomputes the maximum machine load of the assignment.
func (a Assignment) Makespan(inst UnrelatedInstance) float64 {
	var ms float64
	for _, l := range a.Loads(inst) {
		if l > ms {
			ms = l
		}
	}
	return ms
}

// Clone returns a copy of the assignment.
func (a Assignment) Clone() Assignment {
	return append(Assignment(nil), a...)
}

// Instance1D is a 1D bin-packing problem.
type Instance1D struct {
	Capacity float64   `json:"capacity" yaml:"capacity"`
	Items    []float64 `json:"items" yaml:"items"`
}

// Instance2D is a 2D bin-packing problem.
type Instance2D struct {
	W     float64 `json:"w" yaml:"w"`
	H     float64 `json:"h" yaml:"h"`
	Rects []Rect  `json:"rects" yaml:"rects"`
}

// IdenticalInstance is a scheduling problem on m identical machines.
type IdenticalInstance struct {
	Machines int       `json:"machines" yaml:"machines"`
	Jobs     []float64 `json:"jobs" yaml:"jobs"`
}

// Project ties a settings block and one instance per problem family together
// for save/load. Any of the instances may be absent.
type Project struct {
	Name      string             `json:"name" yaml:"name"`
	Settings  Settings           `json:"settings" yaml:"settings"`
	Packing1D *Instance1D        `json:"packing1d,omitempty" yaml:"packing1d,omitempty"`
	Packing2D *Instance2D        `json:"packing2d,omitempty" yaml:"packing2d,omitempty"`
	Identical *IdenticalInstance `json:"identical,omitempty" yaml:"identical,omitempty"`
	Unrelated *UnrelatedInstance `json:"unrelated,omitempty" yaml:"unrelated,omitempty"`
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Settings: DefaultSettings(),
	}
}
