package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/apsuite/internal/instances"
	"github.com/piwi3910/apsuite/internal/model"
	"github.com/piwi3910/apsuite/internal/project"
)

type generateOptions struct {
	name     string
	families []string
	n, m     int
	dist     string
	seed     int64
	capacity float64
	width    float64
	height   float64
	out      string
}

// defaultDist is used when --dist is empty.
var defaultDist = map[string]instances.Distribution{
	familyPacking1D: instances.Uniform,
	familyPacking2D: instances.Uniform,
	familyIdentical: instances.Uniform,
	familyUnrelated: instances.LognormalMachines,
}

func newGenerateCmd(st *state) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a project with synthetic instances",
		Example: `  apsuite generate --family packing1d,identical --n 200 --seed 7 -o proj.yaml
  apsuite generate --family unrelated --n 40 --m 5 --dist random_matrix`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := generateProject(opts, st.cfg)
			if err != nil {
				return err
			}
			if opts.out == "" {
				data, err := yaml.Marshal(p)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := project.SaveProject(opts.out, p); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"path":     opts.out,
				"families": opts.families,
				"seed":     opts.seed,
			}).Info("Project written")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "Project name (default generated from the flags)")
	f.StringSliceVar(&opts.families, "family", []string{familyPacking1D, familyPacking2D, familyIdentical, familyUnrelated}, "Families to generate")
	f.IntVar(&opts.n, "n", 50, "Items, rectangles or jobs per instance")
	f.IntVar(&opts.m, "m", 4, "Machines for the scheduling instances")
	f.StringVar(&opts.dist, "dist", "", "Distribution (default uniform, lognormal_machines for unrelated)")
	f.Int64Var(&opts.seed, "seed", 0, "Random seed")
	f.Float64Var(&opts.capacity, "capacity", 1, "1D bin capacity")
	f.Float64Var(&opts.width, "width", 10, "2D bin width")
	f.Float64Var(&opts.height, "height", 10, "2D bin height")
	f.StringVarP(&opts.out, "out", "o", "", "Write the project to this file instead of stdout")
	return cmd
}

func generateProject(opts generateOptions, cfg model.AppConfig) (model.Project, error) {
	name := opts.name
	if name == "" {
		name = fmt.Sprintf("synthetic_n%d_s%d", opts.n, opts.seed)
	}
	p := project.NewProjectFromConfig(name, cfg)

	for _, family := range opts.families {
		dist, ok := defaultDist[family]
		if !ok {
			return model.Project{}, fmt.Errorf("%w: unknown family %q", model.ErrInvalidSetting, family)
		}
		if opts.dist != "" {
			dist = instances.Distribution(opts.dist)
		}
		spec := instances.Spec{N: opts.n, M: opts.m, Dist: dist, Seed: opts.seed}

		switch family {
		case familyPacking1D:
			items, err := instances.Items1D(spec, opts.capacity)
			if err != nil {
				return model.Project{}, err
			}
			p.Packing1D = &model.Instance1D{Capacity: opts.capacity, Items: items}
		case familyPacking2D:
			rects, err := instances.Rects(spec, opts.width, opts.height)
			if err != nil {
				return model.Project{}, err
			}
			p.Packing2D = &model.Instance2D{W: opts.width, H: opts.height, Rects: rects}
		case familyIdentical:
			if opts.m < 1 {
				return model.Project{}, fmt.Errorf("%w: machine count must be >= 1, got %d", model.ErrInvalidSetting, opts.m)
			}
			jobs, err := instances.IdenticalJobs(spec)
			if err != nil {
				return model.Project{}, err
			}
			p.Identical = &model.IdenticalInstance{Machines: opts.m, Jobs: jobs}
		case familyUnrelated:
			inst, err := instances.Unrelated(spec)
			if err != nil {
				return model.Project{}, err
			}
			p.Unrelated = &inst
		}
	}
	return p, nil
}
