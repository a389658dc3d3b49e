package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rotaviva/voucher-api/internal/config"
	"github.com/rotaviva/voucher-api/internal/logger"
)

// objectStore talks to a Supabase-style storage HTTP API. Objects are
// addressed as {endpoint}/object/{bucket}/{path} and publicly served from
// {endpoint}/object/public/{bucket}/{path}.
type objectStore struct {
	client     *resty.Client
	endpoint   string
	serviceKey string
	bucket     string
	logger     *logger.Logger
}

// NewObjectStore constructs an [ObjectStore] from the storage configuration.
// Missing credentials are not an error at construction time; the store is
// simply reported as unconfigured so upload endpoints can answer 503.
func NewObjectStore(cfg config.Objects, log *logger.Logger) ObjectStore {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")

	cli := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(30 * time.Second)

	return &objectStore{
		client:     cli,
		endpoint:   endpoint,
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		logger:     log,
	}
}

// Configured implements [ObjectStore].
func (o *objectStore) Configured() bool {
	return o.endpoint != "" && o.serviceKey != ""
}

// Upload implements [ObjectStore]. The x-upsert header makes re-uploads
// overwrite the previous object under the same path.
func (o *objectStore) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if !o.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", o.serviceKey)).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(fmt.Sprintf("/object/%s/%s", o.bucket, objectPath))
	if err != nil {
		log.Err(err).Str("func", "*objectStore.Upload").Str("path", objectPath).Msg("object store request failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	if resp.IsError() {
		log.Error().
			Str("func", "*objectStore.Upload").
			Str("path", objectPath).
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("object store rejected upload")
		return "", fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode())
	}

	return fmt.Sprintf("%s/object/public/%s/%s", o.endpoint, o.bucket, objectPath), nil
}
