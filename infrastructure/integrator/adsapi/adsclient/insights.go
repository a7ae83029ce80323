package adsclient

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// ResponseInsights carrega os registros brutos por anúncio. Cada item deveria
// ser um mapeamento campo → valor, mas a API já devolveu entradas fora desse
// formato, então a lista é decodificada sem tipo e validada pelo consumidor.
type ResponseInsights struct {
	Insights []any `json:"insights"`
}

// ListAccountInsights obtém os insights de uma conta específica em uma única
// requisição, usando o token da própria conta e a lista de campos resolvida
// (values separados por vírgula). Sem retries: qualquer falha vira erro e o
// chamador degrada para "conta sem anúncios".
func (c *AdsClient) ListAccountInsights(platform, accountID, accountToken, fields string) ([]any, error) {
	params := url.Values{}
	params.Set("platform", platform)
	params.Set("account", accountID)
	params.Set("token", accountToken)
	params.Set("fields", fields)

	body, err := c.get("insights", params)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar insights da conta de id %s", accountID)
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar JSON de insights da conta de id %s", accountID)
	}

	return response.Insights, nil
}
