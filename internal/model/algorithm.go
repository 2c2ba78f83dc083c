package model

// Algorithm1D names a 1D bin-packing engine.
type Algorithm1D string

const (
	AlgorithmFirstFit          Algorithm1D = "FF"
	AlgorithmBestFit           Algorithm1D = "BF"
	AlgorithmFirstFitDecr      Algorithm1D = "FFD"
	AlgorithmBestFitDecr       Algorithm1D = "BFD"
	AlgorithmFirstFitDecrLocal Algorithm1D = "FFD+LS"      // FFD followed by bin elimination
	AlgorithmHybridFFDBF       Algorithm1D = "HYB(FFD,BF)" // Best of FFD and BF, FFD on ties
)

// Algorithms1D lists every 1D engine in reporting order.
var Algorithms1D = []Algorithm1D{
	AlgorithmFirstFit,
	AlgorithmBestFit,
	AlgorithmFirstFitDecr,
	AlgorithmBestFitDecr,
	AlgorithmFirstFitDecrLocal,
	AlgorithmHybridFFDBF,
}

// Valid reports whether a names a known engine.
func (a Algorithm1D) Valid() bool {
	for _, k := range Algorithms1D {
		if a == k {
			return true
		}
	}
	return false
}

// Algorithm2D names a 2D bin-packing engine.
type Algorithm2D string

const (
	AlgorithmShelf      Algorithm2D = "SHELF"
	AlgorithmGuillotine Algorithm2D = "GUILLOTINE"
	AlgorithmHybrid2D   Algorithm2D = "HYB(SHELF,GUIL)" // Best of Shelf and Guillotine, Shelf on ties
)

// Algorithms2D lists every 2D engine in reporting order.
var Algorithms2D = []Algorithm2D{AlgorithmShelf, AlgorithmGuillotine, AlgorithmHybrid2D}

// Valid reports whether a names a known engine.
func (a Algorithm2D) Valid() bool {
	for _, k := range Algorithms2D {
		if a == k {
			return true
		}
	}
	return false
}

// GuillotineOrder controls how rectangles are sorted before guillotine packing.
type GuillotineOrder string

const (
	OrderInput             GuillotineOrder = "input"
	OrderDecreasingArea    GuillotineOrder = "decreasing_area"
	OrderDecreasingMaxSide GuillotineOrder = "decreasing_maxside"
)

// Valid reports whether o is a known order.
func (o GuillotineOrder) Valid() bool {
	switch o {
	case OrderInput, OrderDecreasingArea, OrderDecreasingMaxSide:
		return true
	}
	return false
}

// GuillotineScore selects the free rectangle that receives the next item.
type GuillotineScore string

const (
	ScoreBestAreaFit   GuillotineScore = "best_area_fit"   // Minimize leftover area
	ScoreBestShortSide GuillotineScore = "best_short_side" // Minimize the smaller leftover side
)

// Valid reports whether s is a known score.
func (s GuillotineScore) Valid() bool {
	return s == ScoreBestAreaFit || s == ScoreBestShortSide
}

// AlgorithmIdentical names an identical-machines scheduling engine.
type AlgorithmIdentical string

const (
	AlgorithmList AlgorithmIdentical = "LIST"
	AlgorithmLPT  AlgorithmIdentical = "LPT"
)

// AlgorithmsIdentical lists every identical-machines engine.
var AlgorithmsIdentical = []AlgorithmIdentical{AlgorithmList, AlgorithmLPT}

// Valid reports whether a names a known engine.
func (a AlgorithmIdentical) Valid() bool {
	return a == AlgorithmList || a == AlgorithmLPT
}

// AlgorithmUnrelated names an unrelated-machines scheduling engine.
type AlgorithmUnrelated string

const (
	AlgorithmGreedy        AlgorithmUnrelated = "GREEDY"
	AlgorithmLPRound       AlgorithmUnrelated = "LP_ROUND"
	AlgorithmLPRoundSearch AlgorithmUnrelated = "LP_ROUND+LS"
)

// AlgorithmsUnrelated lists every unrelated-machines engine.
var AlgorithmsUnrelated = []AlgorithmUnrelated{AlgorithmGreedy, AlgorithmLPRound, AlgorithmLPRoundSearch}

// Valid reports whether a names a known engine.
func (a AlgorithmUnrelated) Valid() bool {
	switch a {
	case AlgorithmGreedy, AlgorithmLPRound, AlgorithmLPRoundSearch:
		return true
	}
	return false
}

// GreedyOrder is the job order used by the unrelated greedy baseline.
type GreedyOrder string

const (
	GreedyAsIs        GreedyOrder = "as_is"
	GreedyMinProcDesc GreedyOrder = "minproc_desc" // Decreasing min_i p[i][j]
	GreedyMaxProcDesc GreedyOrder = "maxproc_desc" // Decreasing max_i p[i][j]
)

// Valid reports whether o is a known order.
func (o GreedyOrder) Valid() bool {
	switch o {
	case GreedyAsIs, GreedyMinProcDesc, GreedyMaxProcDesc:
		return true
	}
	return false
}
