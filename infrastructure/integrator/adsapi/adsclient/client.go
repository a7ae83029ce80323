package adsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	ListPlatforms() ([]domain.Platform, error)
	ListAccounts(platform string) ([]domain.Account, error)
	ListFields(platform string) ([]domain.Field, error)
	ListAccountInsights(platform, accountID, accountToken, fields string) ([]any, error)
}

type AdsClient struct {
	Cfg        config.Upstream
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	rps := cfg.Upstream.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Upstream.RequestBurst
	if burst <= 0 {
		burst = 1
	}

	return &AdsClient{
		Cfg: cfg.Upstream,
		httpClient: &http.Client{
			Timeout: cfg.Upstream.RequestTimeout(),
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: m,
	}
}

// get faz uma requisição autenticada à API upstream e retorna o corpo da
// resposta. Toda chamada passa pelo rate limiter antes de sair.
func (c *AdsClient) get(resource string, params url.Values) ([]byte, error) {
	start := time.Now()

	if err := c.limiter.Wait(context.Background()); err != nil {
		c.metrics.RecordUpstreamFailure(resource, "rate_limit")
		return nil, errors.Wrap(err, "erro ao aguardar o rate limiter")
	}

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.BaseURL, resource)
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		c.metrics.RecordUpstreamFailure(resource, "request_creation")
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamFailure(resource, "network_error")
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordUpstreamCall(resource, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return nil, errors.Errorf("resposta inesperada da API upstream: %s status: %s", resource, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstreamFailure(resource, "read_body")
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	c.metrics.RecordUpstreamCall(resource, "success", duration)

	return body, nil
}
