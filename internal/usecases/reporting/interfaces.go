package reporting

import (
	adsapidomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

// Reporter é o motor de agregação. Nenhuma operação retorna erro: toda falha
// de busca upstream degrada localmente para coleção vazia ou para o registro
// sentinela de conta sem anúncios.
type Reporter interface {
	// ListPlatforms retorna o diretório de plataformas disponíveis.
	ListPlatforms() []adsapidomain.Platform

	// PlatformName retorna o nome de exibição de uma plataforma, ou o
	// próprio value quando a plataforma não está no diretório.
	PlatformName(value string) string

	// ListInsights retorna um registro canônico por anúncio da plataforma,
	// na ordem de busca das contas.
	ListInsights(platformValue string) []domain.AdRecord

	// SummarizeByAccount colapsa os anúncios da plataforma em uma linha por
	// conta, somando os campos numéricos.
	SummarizeByAccount(platformValue string) []domain.SummaryRow

	// BuildGeneralReport reúne os anúncios de todas as plataformas com os
	// nomes de campo unificados, junto com a lista ordenada de campos.
	BuildGeneralReport() ([]domain.AdRecord, []string)

	// BuildGeneralSummary colapsa o relatório geral em uma linha por
	// plataforma, sem somar o CPC.
	BuildGeneralSummary() []domain.SummaryRow
}
