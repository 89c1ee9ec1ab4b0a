package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the path of the dashboard configuration file
type Dashboard struct {
	Path string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-config",
			Usage:       "YAML file with the default product and report options",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("CRASHSTATS_DASHBOARD_CONFIG"),
			Destination: &d.Path,
		},
	}
}

// Configure loads the dashboard configuration, or returns the built-in
// defaults when no file is given
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	if d.Path == "" {
		return model.DefaultDashboardConfig(), nil
	}
	return LoadDashboardConfig(d.Path)
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
	)
}

// LoadDashboardConfig loads the dashboard configuration from a YAML file.
// Unset fields take their built-in defaults.
func LoadDashboardConfig(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.DashboardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}
	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
