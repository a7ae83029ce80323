package adsclient

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
)

type ResponsePlatforms struct {
	Platforms []domain.Platform `json:"platforms"`
}

// ListPlatforms obtém o diretório de plataformas disponíveis. A rota não é
// paginada.
func (c *AdsClient) ListPlatforms() ([]domain.Platform, error) {
	body, err := c.get("platforms", nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar plataformas")
	}

	var response ResponsePlatforms
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON de plataformas")
	}

	return response.Platforms, nil
}
