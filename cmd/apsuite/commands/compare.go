package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/piwi3910/apsuite/internal/engine"
	"github.com/piwi3910/apsuite/internal/model"
)

// Families accepted by compare.
const (
	familyPacking1D  = "packing1d"
	familyPacking2D  = "packing2d"
	familyIdentical  = "identical"
	familyUnrelated  = "unrelated"
	familyGuillotine = "guillotine" // Guillotine order x score variants
)

func newCompareCmd(st *state) *cobra.Command {
	var projectPath, format string

	cmd := &cobra.Command{
		Use:   "compare FAMILY",
		Short: "Run every algorithm of a family on the project instance",
		Long: `Run every algorithm of a family on the project instance and report
objective, lower bound, ratio and gap side by side.

FAMILY is one of packing1d, packing2d, identical, unrelated or guillotine
(every guillotine order and score combination).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{familyPacking1D, familyPacking2D, familyIdentical, familyUnrelated, familyGuillotine},
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("%w: unknown format %q", model.ErrInvalidSetting, format)
			}
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}

			family := args[0]
			rows, err := compareFamily(cmd, family, p)
			if err != nil {
				return err
			}
			return writeComparison(cmd.OutOrStdout(), format, family, rows)
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Project file")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	return cmd
}

func compareFamily(cmd *cobra.Command, family string, p model.Project) ([]engine.ComparisonRow, error) {
	ctx := cmd.Context()
	missing := fmt.Errorf("%w: project has no %s instance", errNoInstance, family)

	switch family {
	case familyPacking1D:
		if p.Packing1D == nil {
			return nil, missing
		}
		return engine.Compare1D(ctx, p.Settings, *p.Packing1D)
	case familyPacking2D, familyGuillotine:
		if p.Packing2D == nil {
			return nil, fmt.Errorf("%w: project has no packing2d instance", errNoInstance)
		}
		if family == familyGuillotine {
			return engine.CompareScenarios2D(ctx, engine.BuildGuillotineScenarios(p.Settings), *p.Packing2D)
		}
		return engine.Compare2D(ctx, p.Settings, *p.Packing2D)
	case familyIdentical:
		if p.Identical == nil {
			return nil, missing
		}
		return engine.CompareIdentical(ctx, p.Settings, *p.Identical)
	case familyUnrelated:
		if p.Unrelated == nil {
			return nil, missing
		}
		return engine.CompareUnrelated(ctx, p.Settings, *p.Unrelated)
	}
	return nil, fmt.Errorf("%w: unknown family %q", model.ErrInvalidSetting, family)
}

func writeComparison(w io.Writer, format, family string, rows []engine.ComparisonRow) error {
	if format == "json" {
		return writeJSON(w, ComparisonReport{RunID: newRunID(), Family: family, Rows: rows})
	}
	_, err := io.WriteString(w, renderComparison(family, rows))
	return err
}
