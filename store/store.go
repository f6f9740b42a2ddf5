// Package store anchors encoded metadata in a content-addressed store and
// resolves it back.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
	"github.com/openfund/donation-pipeline/models"
)

const (
	BackendIPFS   = "ipfs"
	BackendS3     = "s3"
	BackendGCS    = "gcs"
	BackendMemory = "memory"
)

// Store is a content-addressed blob store. Anchor returns the content id of
// data and is idempotent; Resolve fails with common.ErrNotFound for unknown
// ids and common.ErrStoreUnavailable for anything transient.
type Store interface {
	Anchor(ctx context.Context, data []byte) (string, error)
	Resolve(ctx context.Context, contentID string) ([]byte, error)
}

// NewStore builds the configured backend wrapped in bounded retries.
func NewStore(ctx context.Context, cfg models.ContentStoreConfig) (Store, error) {
	var (
		backend Store
		err     error
	)

	switch strings.ToLower(cfg.Backend) {
	case BackendIPFS:
		backend, err = NewIPFSStore(IPFSConfig{
			APIURL:     cfg.IPFSAPIURL,
			GatewayURL: cfg.IPFSGatewayURL,
			Auth:       cfg.IPFSAuth,
			Timeout:    time.Duration(cfg.TimeoutMillis) * time.Millisecond,
		})
	case BackendS3:
		backend, err = NewS3Store(ctx, S3Config{
			Bucket:   cfg.Bucket,
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
			Prefix:   cfg.Prefix,
		})
	case BackendGCS:
		backend, err = NewGCSStore(ctx, GCSConfig{
			Bucket: cfg.Bucket,
			Prefix: cfg.Prefix,
		})
	case BackendMemory, "":
		backend = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown content store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.WithField("backend", cfg.Backend).Debug("[STORE] Content store initialized")

	return NewRetrying(backend, RetryConfig{
		MaxRetries: cfg.MaxRetries,
	}), nil
}

func verifyResolved(contentID string, data []byte) ([]byte, error) {
	if err := codec.VerifyContentID(contentID, data); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
	}
	return data, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %s", common.ErrStoreUnavailable, op, err.Error())
}
