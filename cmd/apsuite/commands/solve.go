package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/piwi3910/apsuite/internal/bounds"
	"github.com/piwi3910/apsuite/internal/engine"
	"github.com/piwi3910/apsuite/internal/metrics"
	"github.com/piwi3910/apsuite/internal/model"
)

// errNoInstance is returned when neither flags nor the project provide an
// instance for the requested family.
var errNoInstance = errors.New("no instance given")

func newPack1DCmd(st *state) *cobra.Command {
	var (
		projectPath string
		items       []float64
		capacity    float64
		algorithm   string
	)

	cmd := &cobra.Command{
		Use:   "pack1d",
		Short: "Pack 1D items into bins",
		Example: `  apsuite pack1d --items 0.4,0.4,0.4,0.6,0.6
  apsuite pack1d --project proj.yaml --algorithm FFD+LS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}
			inst := p.Packing1D
			if cmd.Flags().Changed("items") {
				inst = &model.Instance1D{Capacity: capacity, Items: items}
			}
			if inst == nil {
				return fmt.Errorf("%w: pass --items or a project with a packing1d instance", errNoInstance)
			}

			settings := p.Settings
			if algorithm != "" {
				settings.Packing1D.Algorithm = model.Algorithm1D(algorithm)
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			_, span := otel.Tracer("apsuite/cli").Start(cmd.Context(), "apsuite.pack1d")
			defer span.End()

			start := time.Now()
			res, err := engine.New(settings).Pack1D(inst.Items, inst.Capacity)
			elapsed := time.Since(start)
			if err != nil {
				span.RecordError(err)
				return err
			}
			lb, err := bounds.Combined1D(inst.Items, inst.Capacity)
			if err != nil {
				return err
			}
			m := metrics.ForPacking(res.NumBins(), lb)
			span.SetAttributes(attribute.Int("packing.bins", m.NumBins))

			return writeJSON(cmd.OutOrStdout(), Report{
				RunID:      newRunID(),
				Family:     "packing1d",
				Algorithm:  string(settings.Packing1D.Algorithm),
				Objective:  float64(m.NumBins),
				LowerBound: float64(m.LowerBound),
				Ratio:      m.Ratio,
				Gap:        m.Gap,
				RuntimeS:   elapsed.Seconds(),
				Result:     res,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&projectPath, "project", "p", "", "Project file")
	f.Float64SliceVar(&items, "items", nil, "Item sizes (comma-separated)")
	f.Float64Var(&capacity, "capacity", 1, "Bin capacity for --items")
	f.StringVar(&algorithm, "algorithm", "", "FF, BF, FFD, BFD, FFD+LS or HYB(FFD,BF) (overrides settings)")
	return cmd
}

func newPack2DCmd(st *state) *cobra.Command {
	var projectPath, algorithm string

	cmd := &cobra.Command{
		Use:   "pack2d",
		Short: "Pack rectangles into 2D bins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}
			inst := p.Packing2D
			if inst == nil {
				return fmt.Errorf("%w: project has no packing2d instance", errNoInstance)
			}

			settings := p.Settings
			if algorithm != "" {
				settings.Packing2D.Algorithm = model.Algorithm2D(algorithm)
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			_, span := otel.Tracer("apsuite/cli").Start(cmd.Context(), "apsuite.pack2d")
			defer span.End()

			start := time.Now()
			res, err := engine.New(settings).Pack2D(inst.Rects, inst.W, inst.H)
			elapsed := time.Since(start)
			if err != nil {
				span.RecordError(err)
				return err
			}
			lb, err := bounds.Area(inst.Rects, inst.W, inst.H)
			if err != nil {
				return err
			}
			m := metrics.ForPacking(res.NumBins(), lb)
			span.SetAttributes(attribute.Int("packing.bins", m.NumBins))

			return writeJSON(cmd.OutOrStdout(), Report{
				RunID:      newRunID(),
				Family:     "packing2d",
				Algorithm:  string(settings.Packing2D.Algorithm),
				Objective:  float64(m.NumBins),
				LowerBound: float64(m.LowerBound),
				Ratio:      m.Ratio,
				Gap:        m.Gap,
				RuntimeS:   elapsed.Seconds(),
				Result:     res,
			})
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project file")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "SHELF, GUILLOTINE or HYB(SHELF,GUIL) (overrides settings)")
	return cmd
}

func newIdenticalCmd(st *state) *cobra.Command {
	var (
		projectPath string
		jobs        []float64
		machines    int
		algorithm   string
	)

	cmd := &cobra.Command{
		Use:     "identical",
		Short:   "Schedule jobs on identical machines",
		Example: `  apsuite identical --jobs 3,3,2,2,2 --machines 2 --algorithm LPT`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}
			inst := p.Identical
			if cmd.Flags().Changed("jobs") {
				inst = &model.IdenticalInstance{Machines: machines, Jobs: jobs}
			}
			if inst == nil {
				return fmt.Errorf("%w: pass --jobs or a project with an identical instance", errNoInstance)
			}

			settings := p.Settings
			if algorithm != "" {
				settings.Identical.Algorithm = model.AlgorithmIdentical(algorithm)
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			_, span := otel.Tracer("apsuite/cli").Start(cmd.Context(), "apsuite.identical")
			defer span.End()

			start := time.Now()
			sched, err := engine.New(settings).ScheduleIdentical(inst.Jobs, inst.Machines)
			elapsed := time.Since(start)
			if err != nil {
				span.RecordError(err)
				return err
			}
			lb, err := bounds.Identical(inst.Jobs, inst.Machines)
			if err != nil {
				return err
			}
			m := metrics.ForMakespan(sched.Makespan(), lb)
			span.SetAttributes(attribute.Float64("schedule.makespan", m.Makespan))

			return writeJSON(cmd.OutOrStdout(), Report{
				RunID:      newRunID(),
				Family:     "identical",
				Algorithm:  string(settings.Identical.Algorithm),
				Objective:  m.Makespan,
				LowerBound: m.LowerBound,
				Ratio:      m.Ratio,
				Gap:        m.Gap,
				RuntimeS:   elapsed.Seconds(),
				Result:     sched,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&projectPath, "project", "p", "", "Project file")
	f.Float64SliceVar(&jobs, "jobs", nil, "Processing times (comma-separated)")
	f.IntVarP(&machines, "machines", "m", 2, "Machine count for --jobs")
	f.StringVar(&algorithm, "algorithm", "", "LIST or LPT (overrides settings)")
	return cmd
}

func newUnrelatedCmd(st *state) *cobra.Command {
	var projectPath, algorithm string

	cmd := &cobra.Command{
		Use:   "unrelated",
		Short: "Schedule jobs on unrelated machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}
			inst := p.Unrelated
			if inst == nil {
				return fmt.Errorf("%w: project has no unrelated instance", errNoInstance)
			}

			settings := p.Settings
			if algorithm != "" {
				settings.Unrelated.Algorithm = model.AlgorithmUnrelated(algorithm)
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			_, span := otel.Tracer("apsuite/cli").Start(cmd.Context(), "apsuite.unrelated")
			defer span.End()

			res, err := engine.New(settings).ScheduleUnrelated(*inst)
			if err != nil {
				span.RecordError(err)
				return err
			}
			lb, err := bounds.UnrelatedTrivial(*inst)
			if err != nil {
				return err
			}
			m := metrics.ForMakespan(res.Makespan, lb)
			span.SetAttributes(attribute.Float64("schedule.makespan", m.Makespan))

			return writeJSON(cmd.OutOrStdout(), Report{
				RunID:      newRunID(),
				Family:     "unrelated",
				Algorithm:  string(res.Algorithm),
				Objective:  m.Makespan,
				LowerBound: m.LowerBound,
				Ratio:      m.Ratio,
				Gap:        m.Gap,
				RuntimeS:   res.Info.TotalDuration.Seconds(),
				Result:     res,
			})
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project file")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "GREEDY, LP_ROUND or LP_ROUND+LS (overrides settings)")
	return cmd
}
