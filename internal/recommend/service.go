// Package recommend fetches the server-hosted recommendation list.
package recommend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/config"
	"github.com/yichuanzhang/booktracker/internal/model"
	"github.com/yichuanzhang/booktracker/pkg/breaker"
)

type Service struct {
	log    *zap.Logger
	client *resty.Client
	cb     breaker.CircuitBreaker
	path   string
}

func NewService(cfg config.Recommendations, log *zap.Logger) *Service {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	const (
		cbRecordLength     = 10
		cbTimeout          = 30 * time.Second
		cbPercentile       = 0.5
		cbRecoveryRequests = 2
	)

	return &Service{
		log:    log.Named("recommend"),
		client: client,
		cb:     breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
		path:   cfg.Path,
	}
}

// FetchAll performs a single round-trip for the whole recommendation
// corpus. Any failure (transport, non-2xx, malformed payload) is
// returned as an error; callers fall back to an empty list. When the
// breaker is open the call fails fast with the same contract.
func (s *Service) FetchAll(ctx context.Context) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := s.cb.Call(func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			Get(s.path)
		if err != nil {
			return errors.Wrap(err, "fetch recommendations")
		}
		if resp.IsError() {
			return errors.Errorf("fetch recommendations: status %d", resp.StatusCode())
		}
		recs, err = decodeBooks(resp.Body())
		return err
	})
	if err != nil {
		s.log.Warn("FetchAll", zap.Error(err))
		return nil, err
	}
	s.log.Debug("FetchAll", zap.Int("count", len(recs)))
	return recs, nil
}

// decodeBooks accepts the canonical `{"books": [...]}` shape and, for
// older payload revisions, a bare top-level array. Unknown fields are
// ignored.
func decodeBooks(data []byte) ([]model.Recommendation, error) {
	var wrapped struct {
		Books []model.Recommendation `json:"books"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Books != nil {
		return wrapped.Books, nil
	}

	var bare []model.Recommendation
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, errors.Wrap(err, "decode recommendations")
	}
	return bare, nil
}
