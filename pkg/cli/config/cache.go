package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/repository"
	"github.com/secmon-lab/crashstats/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

// Cache holds the middleware response cache configuration
type Cache struct {
	TTL        time.Duration
	Dir        string
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Cache configuration
func (c *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Lifetime of cached middleware responses (0 disables caching)",
			Category:    "Cache",
			Value:       time.Hour,
			Sources:     cli.EnvVars("CRASHSTATS_CACHE_TTL"),
			Destination: &c.TTL,
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Directory of the on-disk JSON response cache",
			Category:    "Cache",
			Sources:     cli.EnvVars("CRASHSTATS_CACHE_DIR"),
			Destination: &c.Dir,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID of the shared Firestore cache",
			Category:    "Cache",
			Sources:     cli.EnvVars("CRASHSTATS_FIRESTORE_PROJECT"),
			Destination: &c.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Cache",
			Value:       "(default)",
			Sources:     cli.EnvVars("CRASHSTATS_FIRESTORE_DATABASE"),
			Destination: &c.DatabaseID,
		},
	}
}

// Configure builds the cache chain: memory or Firestore first, then the
// on-disk cache when a directory is set. It returns nil when caching is
// disabled. Expired Firestore entries are purged in the background through d.
func (c *Cache) Configure(ctx context.Context, d *async.Dispatcher) (interfaces.Cache, error) {
	logger := ctxlog.From(ctx)

	if c.TTL <= 0 {
		logger.Info("Middleware response cache is disabled")
		return nil, nil
	}

	var tiers []interfaces.Cache
	var shared *repository.Firestore
	if c.IsFirestoreConfigured() {
		fs, err := repository.NewFirestore(ctx, c.ProjectID, c.DatabaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", c.ProjectID),
				goerr.V("database", c.DatabaseID),
			)
		}
		tiers = append(tiers, fs)
		shared = fs
	} else {
		tiers = append(tiers, repository.NewMemory())
	}

	if c.Dir != "" {
		file, err := repository.NewFile(c.Dir)
		if err != nil {
			for _, t := range tiers {
				_ = t.Close()
			}
			return nil, goerr.Wrap(err, "failed to init file cache", goerr.V("dir", c.Dir))
		}
		tiers = append(tiers, file)
	}

	if shared != nil {
		d.Dispatch(ctx, func(ctx context.Context) error {
			n, err := shared.Purge(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to purge expired cache entries")
			}
			ctxlog.From(ctx).Info("Purged expired cache entries", "count", n)
			return nil
		})
	}

	return repository.NewChain(c.TTL, tiers...), nil
}

// IsFirestoreConfigured checks if the Firestore cache is configured
func (c *Cache) IsFirestoreConfigured() bool {
	return c.ProjectID != ""
}

// LogValue returns structured log value
func (c Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("ttl", c.TTL),
		slog.String("dir", c.Dir),
		slog.String("firestore_project", c.ProjectID),
		slog.String("firestore_database", c.DatabaseID),
	)
}
