package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/apsuite/internal/project"
)

func newConfigCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(st.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.AddCommand(
		newConfigInitCmd(st),
		newConfigExportCmd(st),
		newConfigImportCmd(st),
	)
	return cmd
}

func newConfigInitCmd(st *state) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := os.Stat(st.configPath)
			switch {
			case err == nil && !force:
				return fmt.Errorf("config %s already exists (use --force to overwrite)", st.configPath)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return err
			}
			if err := project.SaveAppConfig(st.configPath, st.cfg); err != nil {
				return err
			}
			log.WithField("path", st.configPath).Info("Config written")
			fmt.Fprintln(cmd.OutOrStdout(), st.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigExportCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Bundle the effective configuration and all presets into FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := project.LoadPresets(project.PresetsPath(st.configPath))
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], st.cfg, presets); err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": args[0], "presets": len(presets.Presets)}).Info("Backup written")
			return nil
		},
	}
}

func newConfigImportCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the config file and presets with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(st.configPath, backup.Config); err != nil {
				return err
			}
			if err := project.SavePresets(project.PresetsPath(st.configPath), backup.Presets); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"path":    args[0],
				"version": backup.Version,
				"presets": len(backup.Presets.Presets),
			}).Info("Backup imported")
			return nil
		},
	}
}
