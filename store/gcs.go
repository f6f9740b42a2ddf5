package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
)

type GCSConfig struct {
	Bucket string
	Prefix string
}

// GCSStore keeps each blob under its content id. Credentials come from ADC.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSStore(ctx context.Context, cfg GCSConfig) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs store needs a bucket")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *GCSStore) object(contentID string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.prefix + contentID)
}

func (s *GCSStore) Anchor(ctx context.Context, data []byte) (string, error) {
	id := codec.ContentID(data)
	obj := s.object(id)

	_, err := obj.Attrs(ctx)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, storage.ErrObjectNotExist) {
		return "", unavailable("gcs attrs", err)
	}

	w := obj.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", unavailable("gcs write", err)
	}
	if err := w.Close(); err != nil {
		if isPreconditionFailed(err) {
			return id, nil
		}
		return "", unavailable("gcs close", err)
	}
	return id, nil
}

func (s *GCSStore) Resolve(ctx context.Context, contentID string) ([]byte, error) {
	if _, err := codec.ParseContentID(contentID); err != nil {
		return nil, err
	}

	reader, err := s.object(contentID).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, contentID)
		}
		return nil, unavailable("gcs read", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, unavailable("gcs read", err)
	}
	return verifyResolved(contentID, data)
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func isPreconditionFailed(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed
}
