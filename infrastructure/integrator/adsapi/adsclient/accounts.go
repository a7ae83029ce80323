package adsclient

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
)

type ResponseAccounts struct {
	Accounts   []domain.Account   `json:"accounts"`
	Pagination *domain.Pagination `json:"pagination"`
}

// ListAccounts obtém todas as contas de uma plataforma, percorrendo as
// páginas a partir da 1 enquanto o cursor indicar que há mais. Um erro no
// meio da caminhada interrompe a busca e retorna o que já foi acumulado,
// junto com o erro, para que o chamador decida degradar.
func (c *AdsClient) ListAccounts(platform string) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("platform", platform)
		params.Set("page", strconv.Itoa(page))

		body, err := c.get("accounts", params)
		if err != nil {
			return accounts, errors.Wrapf(err, "erro ao buscar contas da plataforma %s (página %d)", platform, page)
		}

		var response ResponseAccounts
		if err := json.Unmarshal(body, &response); err != nil {
			return accounts, errors.Wrapf(err, "erro ao decodificar JSON de contas da plataforma %s (página %d)", platform, page)
		}

		accounts = append(accounts, response.Accounts...)

		if !response.Pagination.HasNext() {
			break
		}
	}

	return accounts, nil
}
