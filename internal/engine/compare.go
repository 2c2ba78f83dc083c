package engine

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/piwi3910/apsuite/internal/bounds"
	"github.com/piwi3910/apsuite/internal/metrics"
	"github.com/piwi3910/apsuite/internal/model"
)

var tracer = otel.Tracer("apsuite/engine")

// ComparisonRow is one engine's result on a shared instance, measured
// against the family's lower bound.
type ComparisonRow struct {
	Algorithm  string        `json:"algorithm"`
	Objective  float64       `json:"objective"` // Bins used or makespan
	LowerBound float64       `json:"lower_bound"`
	Ratio      *float64      `json:"ratio"`
	Gap        *float64      `json:"gap"`
	LPBound    *float64      `json:"lp_bound,omitempty"` // Unrelated LP engines only
	RatioVsLP  *float64      `json:"ratio_vs_lp,omitempty"`
	GapVsLP    *float64      `json:"gap_vs_lp,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// ComparisonScenario is a named settings variant.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// startRun opens the span wrapping one engine run.
func startRun(ctx context.Context, family, alg string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "engine."+family, trace.WithAttributes(
		attribute.String("engine.algorithm", alg),
	))
}

// endRun records the run outcome on span and closes it.
func endRun(span trace.Span, objective float64, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Float64("engine.objective", objective))
	}
	span.End()
}

func logRow(family string, row ComparisonRow) {
	log.WithFields(log.Fields{
		"family":      family,
		"algorithm":   row.Algorithm,
		"objective":   row.Objective,
		"lower_bound": row.LowerBound,
		"duration":    row.Duration,
	}).Debug("Comparison run finished")
}

// Compare1D runs every 1D engine on inst. The remaining 1D settings
// (local-search round cap) are taken from settings.
func Compare1D(ctx context.Context, settings model.Settings, inst model.Instance1D) ([]ComparisonRow, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "Compare1D", trace.WithAttributes(attribute.Int("instance.items", len(inst.Items))))
	defer span.End()

	lb, err := bounds.Combined1D(inst.Items, inst.Capacity)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	opt := New(settings)
	rows := make([]ComparisonRow, 0, len(model.Algorithms1D))
	for _, alg := range model.Algorithms1D {
		_, run := startRun(ctx, "Pack1D", string(alg))
		start := time.Now()
		res, err := opt.pack1D(alg, inst.Items, inst.Capacity)
		elapsed := time.Since(start)
		endRun(run, float64(res.NumBins()), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}

		m := metrics.ForPacking(res.NumBins(), lb)
		row := ComparisonRow{
			Algorithm:  string(alg),
			Objective:  float64(m.NumBins),
			LowerBound: float64(m.LowerBound),
			Ratio:      m.Ratio,
			Gap:        m.Gap,
			Duration:   elapsed,
		}
		logRow("packing1d", row)
		rows = append(rows, row)
	}
	return rows, nil
}

// Compare2D runs every 2D engine on inst with the shelf and guillotine
// options of settings.
func Compare2D(ctx context.Context, settings model.Settings, inst model.Instance2D) ([]ComparisonRow, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "Compare2D", trace.WithAttributes(attribute.Int("instance.rects", len(inst.Rects))))
	defer span.End()

	lb, err := bounds.Area(inst.Rects, inst.W, inst.H)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	opt := New(settings)
	rows := make([]ComparisonRow, 0, len(model.Algorithms2D))
	for _, alg := range model.Algorithms2D {
		row, err := run2D(ctx, opt, string(alg), alg, inst, lb)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func run2D(ctx context.Context, opt *Optimizer, name string, alg model.Algorithm2D, inst model.Instance2D, lb int) (ComparisonRow, error) {
	_, run := startRun(ctx, "Pack2D", name)
	start := time.Now()
	res, err := opt.pack2D(alg, inst.Rects, inst.W, inst.H)
	elapsed := time.Since(start)
	endRun(run, float64(res.NumBins()), err)
	if err != nil {
		return ComparisonRow{}, fmt.Errorf("%s: %w", name, err)
	}

	m := metrics.ForPacking(res.NumBins(), lb)
	row := ComparisonRow{
		Algorithm:  name,
		Objective:  float64(m.NumBins),
		LowerBound: float64(m.LowerBound),
		Ratio:      m.Ratio,
		Gap:        m.Gap,
		Duration:   elapsed,
	}
	logRow("packing2d", row)
	return row, nil
}

// BuildGuillotineScenarios returns one scenario per guillotine order and
// score combination, all other settings copied from base.
func BuildGuillotineScenarios(base model.Settings) []ComparisonScenario {
	orders := []model.GuillotineOrder{model.OrderInput, model.OrderDecreasingArea, model.OrderDecreasingMaxSide}
	scores := []model.GuillotineScore{model.ScoreBestAreaFit, model.ScoreBestShortSide}

	scenarios := make([]ComparisonScenario, 0, len(orders)*len(scores))
	for _, o := range orders {
		for _, s := range scores {
			variant := base
			variant.Packing2D.Algorithm = model.AlgorithmGuillotine
			variant.Packing2D.Order = o
			variant.Packing2D.Score = s
			scenarios = append(scenarios, ComparisonScenario{
				Name:     fmt.Sprintf("GUILLOTINE(%s,%s)", o, s),
				Settings: variant,
			})
		}
	}
	return scenarios
}

// CompareScenarios2D runs the configured 2D engine of each scenario on
// inst, in scenario order.
func CompareScenarios2D(ctx context.Context, scenarios []ComparisonScenario, inst model.Instance2D) ([]ComparisonRow, error) {
	ctx, span := tracer.Start(ctx, "CompareScenarios2D", trace.WithAttributes(attribute.Int("scenarios", len(scenarios))))
	defer span.End()

	lb, err := bounds.Area(inst.Rects, inst.W, inst.H)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	rows := make([]ComparisonRow, 0, len(scenarios))
	for _, sc := range scenarios {
		if err := sc.Settings.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", sc.Name, err)
		}
		row, err := run2D(ctx, New(sc.Settings), sc.Name, sc.Settings.Packing2D.Algorithm, inst, lb)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CompareIdentical runs every identical-machines engine on inst.
func CompareIdentical(ctx context.Context, settings model.Settings, inst model.IdenticalInstance) ([]ComparisonRow, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "CompareIdentical", trace.WithAttributes(
		attribute.Int("instance.jobs", len(inst.Jobs)),
		attribute.Int("instance.machines", inst.Machines),
	))
	defer span.End()

	lb, err := bounds.Identical(inst.Jobs, inst.Machines)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	opt := New(settings)
	rows := make([]ComparisonRow, 0, len(model.AlgorithmsIdentical))
	for _, alg := range model.AlgorithmsIdentical {
		_, run := startRun(ctx, "ScheduleIdentical", string(alg))
		start := time.Now()
		sched, err := opt.scheduleIdentical(alg, inst.Jobs, inst.Machines)
		elapsed := time.Since(start)
		endRun(run, sched.Makespan(), err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}

		m := metrics.ForMakespan(sched.Makespan(), lb)
		row := ComparisonRow{
			Algorithm:  string(alg),
			Objective:  m.Makespan,
			LowerBound: m.LowerBound,
			Ratio:      m.Ratio,
			Gap:        m.Gap,
			Duration:   elapsed,
		}
		logRow("identical", row)
		rows = append(rows, row)
	}
	return rows, nil
}

// CompareUnrelated runs every unrelated-machines engine on inst. Ratio and
// gap are measured against the trivial bound; LP engines also report them
// against the LP optimum T*.
func CompareUnrelated(ctx context.Context, settings model.Settings, inst model.UnrelatedInstance) ([]ComparisonRow, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "CompareUnrelated", trace.WithAttributes(
		attribute.Int("instance.jobs", inst.Jobs()),
		attribute.Int("instance.machines", inst.Machines()),
	))
	defer span.End()

	lb, err := bounds.UnrelatedTrivial(inst)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	opt := New(settings)
	rows := make([]ComparisonRow, 0, len(model.AlgorithmsUnrelated))
	for _, alg := range model.AlgorithmsUnrelated {
		_, run := startRun(ctx, "ScheduleUnrelated", string(alg))
		res, err := opt.scheduleUnrelated(alg, inst)
		endRun(run, res.Makespan, err)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}

		m := metrics.ForMakespan(res.Makespan, lb)
		row := ComparisonRow{
			Algorithm:  string(alg),
			Objective:  m.Makespan,
			LowerBound: m.LowerBound,
			Ratio:      m.Ratio,
			Gap:        m.Gap,
			RatioVsLP:  res.Info.RatioVsLP,
			GapVsLP:    res.Info.GapVsLP,
			Duration:   res.Info.TotalDuration,
		}
		if res.Info.LP != nil {
			t := res.Info.LPObjective
			row.LPBound = &t
		}
		logRow("unrelated", row)
		rows = append(rows, row)
	}
	return rows, nil
}
