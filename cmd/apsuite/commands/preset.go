package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/piwi3910/apsuite/internal/model"
	"github.com/piwi3910/apsuite/internal/project"
)

func newPresetCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named settings presets",
		Long: `Manage named settings presets stored next to the config file.

Select a preset for any command with --preset NAME; project file
settings still override it.`,
	}
	cmd.AddCommand(
		newPresetSaveCmd(st),
		newPresetListCmd(st),
		newPresetRemoveCmd(st),
	)
	return cmd
}

func newPresetSaveCmd(st *state) *cobra.Command {
	var projectPath, description string

	cmd := &cobra.Command{
		Use:     "save NAME",
		Short:   "Save the effective settings under NAME",
		Example: `  apsuite preset save thorough -p tuned.yaml --description "long local search"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.loadProject(projectPath)
			if err != nil {
				return err
			}
			if err := p.Settings.Validate(); err != nil {
				return err
			}

			path := project.PresetsPath(st.configPath)
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			preset := model.NewSettingsPreset(args[0], description, p.Settings)
			store.Put(preset)
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": path, "preset": args[0]}).Info("Preset saved")
			fmt.Fprintln(cmd.OutOrStdout(), store.FindByName(args[0]).ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "Take settings from this project file")
	cmd.Flags().StringVar(&description, "description", "", "Preset description")
	return cmd
}

func newPresetListCmd(st *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := project.LoadPresets(project.PresetsPath(st.configPath))
			if err != nil {
				return err
			}
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), store)
			case "table":
				_, err := fmt.Fprint(cmd.OutOrStdout(), renderPresets(store))
				return err
			default:
				return fmt.Errorf("%w: unknown format %q", model.ErrInvalidSetting, format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	return cmd
}

func newPresetRemoveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME|ID",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := project.PresetsPath(st.configPath)
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("%w: unknown preset %q", model.ErrInvalidSetting, args[0])
			}
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": path, "preset": args[0]}).Info("Preset removed")
			return nil
		},
	}
}

func renderPresets(store model.PresetStore) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Name", "ID", "1D", "2D", "Identical", "Unrelated", "Description").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range store.Presets {
		s := p.Settings
		t.Row(p.Name, p.ID,
			string(s.Packing1D.Algorithm),
			string(s.Packing2D.Algorithm),
			string(s.Identical.Algorithm),
			string(s.Unrelated.Algorithm),
			p.Description)
	}
	return t.Render() + "\n"
}
