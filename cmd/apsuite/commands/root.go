// Package commands implements the apsuite command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/piwi3910/apsuite/internal/model"
	"github.com/piwi3910/apsuite/internal/project"
	"github.com/piwi3910/apsuite/internal/telemetry"
)

// recentProjectsLimit caps AppConfig.RecentProjects.
const recentProjectsLimit = 10

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// state is shared by every command of one invocation.
type state struct {
	configPath string
	logLevel   string
	logFormat  string
	preset     string
	trace      bool

	cfg      model.AppConfig
	shutdown func(context.Context) error
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "apsuite",
		Short: "Approximation heuristics for packing and scheduling",
		Long: `apsuite - bin packing and makespan scheduling heuristics

Solves 1D/2D bin packing and identical/unrelated machine scheduling
instances from a project file and reports each result against a
lower bound.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  st.setup,
		PersistentPostRunE: st.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", project.DefaultConfigPath(), "Config file (YAML or JSON)")
	pf.StringVar(&st.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	pf.StringVar(&st.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	pf.StringVar(&st.preset, "preset", "", "Use the settings of a saved preset as defaults")
	pf.BoolVar(&st.trace, "trace", false, "Write OpenTelemetry spans to stderr")

	root.AddCommand(
		newPack1DCmd(st),
		newPack2DCmd(st),
		newIdenticalCmd(st),
		newUnrelatedCmd(st),
		newCompareCmd(st),
		newConfigCmd(st),
		newGenerateCmd(st),
		newPresetCmd(st),
	)
	return root
}

func (st *state) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := project.LoadAppConfig(st.configPath)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.LogLevel = st.logLevel
	}
	if st.logFormat != "" {
		cfg.LogFormat = st.logFormat
	}
	if err := configureLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if st.preset != "" {
		if err := project.ApplyPreset(project.PresetsPath(st.configPath), st.preset, &cfg); err != nil {
			return err
		}
	}
	st.cfg = cfg

	if st.trace {
		shutdown, err := telemetry.Init(cmd.Context(), "apsuite", Version, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		st.shutdown = shutdown
	}

	log.WithFields(log.Fields{
		"config":  st.configPath,
		"preset":  st.preset,
		"command": cmd.Name(),
	}).Debug("Configuration loaded")
	return nil
}

func (st *state) teardown(cmd *cobra.Command, _ []string) error {
	if st.shutdown == nil {
		return nil
	}
	return st.shutdown(cmd.Context())
}

func configureLogging(cfg model.AppConfig, w io.Writer) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidSetting, err)
	}
	switch cfg.LogFormat {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("%w: unknown log format %q", model.ErrInvalidSetting, cfg.LogFormat)
	}
	log.SetLevel(level)
	log.SetOutput(w)
	return nil
}

// loadProject reads the project at path with config defaults underneath.
func (st *state) loadProject(path string) (model.Project, error) {
	if path == "" {
		p := project.NewProjectFromConfig("", st.cfg)
		return p, nil
	}
	p, err := project.LoadProjectWithConfig(path, st.cfg)
	if err != nil {
		return model.Project{}, err
	}
	if err := project.RecordRecentProject(st.configPath, path, recentProjectsLimit); err != nil {
		log.WithError(err).Warn("Failed to record recent project")
	}
	return p, nil
}
