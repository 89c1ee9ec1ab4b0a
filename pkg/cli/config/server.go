package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CRASHSTATS_ADDR"),
			Destination: &s.Addr,
		},
		&cli.DurationFlag{
			Name:        "read-header-timeout",
			Usage:       "Time allowed to read request headers",
			Value:       15 * time.Second,
			Sources:     cli.EnvVars("CRASHSTATS_READ_HEADER_TIMEOUT"),
			Destination: &s.ReadHeaderTimeout,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if s.Addr == "" {
		return goerr.New("server address is required")
	}
	if s.ReadHeaderTimeout <= 0 {
		return goerr.New("read header timeout must be positive",
			goerr.V("read_header_timeout", s.ReadHeaderTimeout))
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Duration("read_header_timeout", s.ReadHeaderTimeout),
	)
}
