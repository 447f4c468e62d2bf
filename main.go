package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/clusterconfig"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
	"github.com/hazelcast/hazelcast-cluster-config/internal/util"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type renderOptions struct {
	settingsFile string
	maps         []string
	output       string
	development  bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hazelcast-cluster-config",
		Short:         "Build Hazelcast member configurations from cluster settings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render hazelcast.yaml for the given settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.development || util.IsDeveloperModeEnabled())
			if err != nil {
				return err
			}
			if err := render(cmd, logger, opts); err != nil {
				logger.Error(err, "unable to render Hazelcast configuration")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.settingsFile, "settings", os.Getenv(n.SettingsFileEnv), "Cluster settings file (YAML or JSON).")
	cmd.Flags().StringArrayVar(&opts.maps, "map", nil, "Map to configure as name=idleTimeoutSeconds. Can be repeated.")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "File to write the configuration to. Defaults to stdout.")
	cmd.Flags().BoolVar(&opts.development, "development", false, "Use development logging.")
	return cmd
}

func newLogger(development bool) (logr.Logger, error) {
	var (
		zl  *zap.Logger
		err error
	)
	if development {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

func render(cmd *cobra.Command, logger logr.Logger, opts renderOptions) error {
	settings := hazelcastv1alpha1.DefaultClusterSettings()
	s := &settings
	if opts.settingsFile != "" {
		loaded, err := hazelcastv1alpha1.LoadClusterSettings(opts.settingsFile)
		if err != nil {
			return err
		}
		s = loaded
	}
	if err := hazelcastv1alpha1.ValidateClusterSettings(s); err != nil {
		return err
	}

	f := clusterconfig.NewFactory(logger.WithName("clusterconfig"))
	maps := map[string]config.Map{}
	for _, spec := range opts.maps {
		name, idle, err := parseMapFlag(spec)
		if err != nil {
			return err
		}
		m, err := f.BuildMapPolicy(s, name, idle)
		if err != nil {
			return err
		}
		maps[name] = m
	}

	cfg, err := f.Build(s, maps)
	if err != nil {
		return err
	}
	data, err := clusterconfig.ConfigData(cfg)
	if err != nil {
		return err
	}
	sum, err := clusterconfig.Checksum(cfg)
	if err != nil {
		return err
	}
	logger.Info("Rendered Hazelcast configuration", "instance", cfg.InstanceName, "maps", len(cfg.Map), "checksum", sum)

	if opts.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), data[n.HazelcastConfigFile])
		return err
	}
	return os.WriteFile(opts.output, []byte(data[n.HazelcastConfigFile]), 0o644)
}

func parseMapFlag(spec string) (string, int64, error) {
	name, idle, found := strings.Cut(spec, "=")
	if name == "" {
		return "", 0, fmt.Errorf("map %q: name must not be empty", spec)
	}
	if !found {
		return name, 0, nil
	}
	seconds, err := strconv.ParseInt(idle, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("map %q: invalid idle timeout: %w", spec, err)
	}
	return name, seconds, nil
}
