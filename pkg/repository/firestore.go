package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// cacheCollection holds one document per cached middleware response
	cacheCollection = "middleware_cache"

	// MaxFirestoreValueSize keeps documents below Firestore's 1 MiB limit,
	// leaving room for the key and timestamps
	MaxFirestoreValueSize = 1000 * 1000
)

type cacheDoc struct {
	Key       string    `firestore:"Key"`
	Data      []byte    `firestore:"Data"`
	ExpiresAt time.Time `firestore:"ExpiresAt"`
	CreatedAt time.Time `firestore:"CreatedAt"`
}

// Firestore implements interfaces.Cache with a Firestore collection, so that
// several dashboard instances share fetched responses.
type Firestore struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestore creates a new Firestore cache
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on a wrong project or missing permissions; an empty
	// collection is fine.
	_, err = client.Collection(cacheCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore cache initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
		now:    time.Now,
	}, nil
}

var _ interfaces.Cache = (*Firestore)(nil)

// Get returns the cached response. Expired documents are misses.
func (f *Firestore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	doc, err := f.client.Collection(cacheCollection).Doc(KeyDigest(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to get cached response from firestore")
	}

	var entry cacheDoc
	if err := doc.DataTo(&entry); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode cached response")
	}

	if !entry.ExpiresAt.IsZero() && !f.now().Before(entry.ExpiresAt) {
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Put stores value under the digest of key. Values larger than
// MaxFirestoreValueSize are not stored.
func (f *Firestore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if len(value) > MaxFirestoreValueSize {
		ctxlog.From(ctx).Debug("response too large for firestore cache",
			"key", key,
			"size", len(value),
		)
		return nil
	}

	now := f.now()
	entry := cacheDoc{
		Key:       key,
		Data:      value,
		CreatedAt: now,
	}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	if _, err := f.client.Collection(cacheCollection).Doc(KeyDigest(key)).Set(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to save cached response to firestore", goerr.V("key", key))
	}
	return nil
}

// Purge deletes expired documents and returns how many were removed
func (f *Firestore) Purge(ctx context.Context) (int, error) {
	iter := f.client.Collection(cacheCollection).
		Where("ExpiresAt", "<", f.now()).
		Documents(ctx)
	defer iter.Stop()

	var removed int
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return removed, goerr.Wrap(err, "failed to iterate expired cache documents")
		}

		var entry cacheDoc
		if err := doc.DataTo(&entry); err != nil {
			return removed, goerr.Wrap(err, "failed to decode cached response")
		}
		// ExpiresAt is zero for entries without ttl
		if entry.ExpiresAt.IsZero() {
			continue
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return removed, goerr.Wrap(err, "failed to delete expired cache document", goerr.V("id", doc.Ref.ID))
		}
		removed++
	}
	return removed, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
