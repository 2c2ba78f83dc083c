// Package identical schedules independent jobs on identical parallel
// machines to minimize makespan.
package identical

import (
	"container/heap"
	"sort"

	"github.com/piwi3910/apsuite/internal/model"
)

type machine struct {
	load  float64
	index int
}

// machineHeap is a min-heap of machines ordered by (load, index).
type machineHeap []machine

func (h machineHeap) Len() int { return len(h) }
func (h machineHeap) Less(i, j int) bool {
	if h[i].load != h[j].load {
		return h[i].load < h[j].load
	}
	return h[i].index < h[j].index
}
func (h machineHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *machineHeap) Push(x any) { *h = append(*h, x.(machine)) }
func (h *machineHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ListScheduling assigns jobs in input order, each to the currently least
// loaded machine. Equal loads go to the lowest machine index.
func ListScheduling(p []float64, m int) (model.Schedule, error) {
	p, err := model.ValidateJobs(p, m)
	if err != nil {
		return model.Schedule{}, err
	}
	return listSchedule(p, m), nil
}

func listSchedule(p []float64, m int) model.Schedule {
	machines := make([][]float64, m)
	h := make(machineHeap, m)
	for i := range h {
		h[i] = machine{index: i}
	}
	heap.Init(&h)

	for _, pj := range p {
		// The root is the least loaded machine; update it in place.
		machines[h[0].index] = append(machines[h[0].index], pj)
		h[0].load += pj
		heap.Fix(&h, 0)
	}
	return model.Schedule{Machines: machines}
}

// LPT sorts jobs by non-increasing processing time and list-schedules them.
func LPT(p []float64, m int) (model.Schedule, error) {
	p, err := model.ValidateJobs(p, m)
	if err != nil {
		return model.Schedule{}, err
	}
	sort.SliceStable(p, func(i, j int) bool {
		return p[i] > p[j]
	})
	return listSchedule(p, m), nil
}
