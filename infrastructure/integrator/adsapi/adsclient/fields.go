package adsclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
)

type ResponseFields struct {
	Fields     []domain.Field     `json:"fields"`
	Pagination *domain.Pagination `json:"pagination"`
}

// ListFields obtém o catálogo de campos de métrica de uma plataforma,
// percorrendo as páginas e removendo duplicatas pelo value, preservando a
// ordem de chegada.
func (c *AdsClient) ListFields(platform string) ([]domain.Field, error) {
	fields := make([]domain.Field, 0)
	seen := make(map[string]bool)

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("platform", platform)
		params.Set("page", strconv.Itoa(page))

		body, err := c.get("fields", params)
		if err != nil {
			return fields, errors.Wrapf(err, "erro ao buscar campos da plataforma %s (página %d)", platform, page)
		}

		var response ResponseFields
		if err := json.Unmarshal(body, &response); err != nil {
			return fields, errors.Wrapf(err, "erro ao decodificar JSON de campos da plataforma %s (página %d)", platform, page)
		}

		for _, field := range response.Fields {
			if seen[field.Value] {
				continue
			}
			seen[field.Value] = true
			fields = append(fields, field)
		}

		if !response.Pagination.HasNext() {
			break
		}
	}

	return fields, nil
}
