package reporting

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/adsclient"
	adsapidomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

type Service struct {
	cfg    *config.Config
	client adsclient.Client
}

// NewService cria uma nova instância do motor de agregação.
func NewService(cfg *config.Config, client adsclient.Client) Reporter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// ListPlatforms retorna o diretório de plataformas. O diretório é rebuscado
// a cada chamada de propósito: atualizações upstream aparecem imediatamente,
// ao custo de chamadas redundantes.
func (s *Service) ListPlatforms() []adsapidomain.Platform {
	platforms, err := s.client.ListPlatforms()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar plataformas")
		return []adsapidomain.Platform{}
	}

	return platforms
}

// PlatformName retorna o nome da plataforma com base no value.
func (s *Service) PlatformName(value string) string {
	for _, platform := range s.ListPlatforms() {
		if platform.Value == value {
			return platform.Text
		}
	}

	return value
}

// ListInsights combina as contas da plataforma com seus insights. As contas
// são processadas por um pool limitado de workers; os resultados são
// encaixados pelo índice da conta para preservar a ordem de busca.
func (s *Service) ListInsights(platformValue string) []domain.AdRecord {
	accounts, err := s.client.ListAccounts(platformValue)
	if err != nil {
		logrus.WithError(err).WithField("platform", platformValue).
			Warn("Busca de contas interrompida; usando as páginas já acumuladas")
	}

	if len(accounts) == 0 {
		return []domain.AdRecord{}
	}

	fields := s.resolveFields(platformValue)

	maxWorkers := s.cfg.Reporting.MaxConcurrentFetches
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	results := make([][]domain.AdRecord, len(accounts))
	semaphore := make(chan struct{}, maxWorkers)

	wg := sync.WaitGroup{}
	for i, account := range accounts {
		wg.Add(1)
		go func(index int, account adsapidomain.Account) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[index] = s.fetchAccountRecords(platformValue, account, fields)
		}(i, account)
	}
	wg.Wait()

	records := make([]domain.AdRecord, 0, len(accounts))
	for _, accountRecords := range results {
		records = append(records, accountRecords...)
	}

	return records
}

// SummarizeByAccount gera o resumo da plataforma colapsando os anúncios por
// conta, na ordem em que cada conta apareceu.
func (s *Service) SummarizeByAccount(platformValue string) []domain.SummaryRow {
	records := s.ListInsights(platformValue)

	return foldRecords(records, domain.FieldAccountName, nil)
}

// BuildGeneralSummary gera o resumo geral agregando os anúncios de todas as
// plataformas por plataforma. O CPC é uma razão derivada e não entra na soma.
func (s *Service) BuildGeneralSummary() []domain.SummaryRow {
	all := make([]domain.AdRecord, 0)

	for _, platform := range s.ListPlatforms() {
		records := s.ListInsights(platform.Value)
		for i := range records {
			records[i].PlatformName = platform.Text
		}
		all = append(all, records...)
	}

	return foldRecords(all, domain.FieldPlatformName, map[string]bool{
		domain.FieldCPC:          true,
		domain.FieldCostPerClick: true,
	})
}

// resolveFields monta o parâmetro fields da rota de insights a partir do
// catálogo de campos da plataforma.
func (s *Service) resolveFields(platformValue string) string {
	fields, err := s.client.ListFields(platformValue)
	if err != nil {
		logrus.WithError(err).WithField("platform", platformValue).
			Warn("Busca de campos interrompida; usando os campos já acumulados")
	}

	values := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.Value == "" {
			continue
		}
		values = append(values, field.Value)
	}

	return strings.Join(values, ",")
}

// fetchAccountRecords busca os insights de uma conta e os converte em
// registros canônicos. Qualquer falha degrada para o registro sentinela de
// conta sem anúncios; itens fora do formato campo → valor são pulados com
// aviso, sem abortar a conta.
func (s *Service) fetchAccountRecords(platformValue string, account adsapidomain.Account, fields string) []domain.AdRecord {
	insights, err := s.client.ListAccountInsights(platformValue, account.ID, account.Token, fields)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform":   platformValue,
			"account_id": account.ID,
		}).Warn("Falha ao buscar insights; conta tratada como sem anúncios")
	}

	if len(insights) == 0 {
		return []domain.AdRecord{domain.NoAdsRecord(account.Name)}
	}

	records := make([]domain.AdRecord, 0, len(insights))
	for _, item := range insights {
		ad, ok := item.(map[string]any)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"platform":   platformValue,
				"account_id": account.ID,
			}).Warnf("Item inesperado na lista de insights: %T", item)
			continue
		}

		record := domain.NewAdRecord(account.Name)
		for field, value := range ad {
			record.Set(field, value)
		}

		records = append(records, record)
	}

	return records
}
