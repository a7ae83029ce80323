package reporting

import (
	"strings"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// BuildGeneralReport reúne os anúncios de todas as plataformas em um único
// relatório com os nomes de campo unificados. O segundo retorno é a lista
// ordenada de campos para consumo tabular: platform_name e account_name à
// frente, o restante em ordem lexicográfica.
func (s *Service) BuildGeneralReport() ([]domain.AdRecord, []string) {
	report := make([]domain.AdRecord, 0)
	fieldSet := map[string]bool{
		domain.FieldPlatformName: true,
		domain.FieldAccountName:  true,
		domain.FieldCostPerClick: true,
	}

	for _, platform := range s.ListPlatforms() {
		for _, ad := range s.ListInsights(platform.Value) {
			record := normalizeRecord(ad, platform.Text)
			for field := range record.AsMap() {
				fieldSet[field] = true
			}
			report = append(report, record)
		}
	}

	return report, domain.OrderedFields(fieldSet)
}

// normalizeRecord converte um registro de plataforma para o esquema unificado
// do relatório geral: aplica a tabela de normalização de nomes, as regras de
// prioridade de mesclagem e deriva o CPC quando a origem não o fornece. O
// campo id é sempre descartado.
func normalizeRecord(ad domain.AdRecord, platformName string) domain.AdRecord {
	raw := ad.AsMap()

	record := domain.AdRecord{
		PlatformName: platformName,
		AccountName:  ad.AccountName,
	}

	for field, value := range raw {
		if field == domain.FieldID || field == domain.FieldAccountName || field == domain.FieldPlatformName {
			continue
		}

		normalized := domain.NormalizeFieldName(field)
		if utils.IsPlaceholder(value) {
			// A iteração do mapa não tem ordem: um placeholder nunca pode
			// sobrescrever um valor real já gravado na mesma coluna (o
			// ad_name padrão "-" colide com as variantes adName/"ad name").
			if current, ok := record.Field(normalized); ok && !utils.IsPlaceholder(current) {
				continue
			}
			record.Set(normalized, domain.Placeholder)
		} else {
			record.Set(normalized, value)
		}
	}

	// Mesclagem com prioridade: spend vence cost, effective_status vence
	// status e country vence region. Sem nenhum dos dois, fica o placeholder.
	record.Cost = mergeWithPriority(raw, "spend", domain.FieldCost)
	record.Status = mergeWithPriority(raw, "effective_status", domain.FieldStatus)
	record.Region = mergeWithPriority(raw, "country", domain.FieldRegion)

	// O CPC só é calculado quando a plataforma não fornece um valor
	// aproveitável em cost_per_click/cpc.
	if supplied := firstUsable(raw, domain.FieldCostPerClick, domain.FieldCPC); supplied != nil {
		record.CostPerClick = supplied
	} else {
		clicks, _ := lookupField(raw, domain.FieldClicks)
		record.CostPerClick = deriveCostPerClick(record.Cost, clicks)
	}

	return record
}

// mergeWithPriority devolve o primeiro valor aproveitável entre os campos
// informados, ou o placeholder quando nenhum serve.
func mergeWithPriority(raw map[string]any, fields ...string) any {
	if value := firstUsable(raw, fields...); value != nil {
		return value
	}

	return domain.Placeholder
}

// firstUsable devolve o valor do primeiro campo presente e não-placeholder,
// ou nil. A busca por nome ignora maiúsculas, como a tabela de normalização.
func firstUsable(raw map[string]any, fields ...string) any {
	for _, field := range fields {
		value, ok := lookupField(raw, field)
		if ok && !utils.IsPlaceholder(value) {
			return value
		}
	}

	return nil
}

func lookupField(raw map[string]any, name string) (any, bool) {
	if value, ok := raw[name]; ok {
		return value, true
	}

	for field, value := range raw {
		if strings.EqualFold(field, name) {
			return value, true
		}
	}

	return nil, false
}

// deriveCostPerClick calcula cost/clicks com duas casas decimais, protegido
// contra divisão por zero e entradas não numéricas.
func deriveCostPerClick(cost, clicks any) any {
	costValue, ok := utils.ParseNumeric(cost)
	if !ok {
		return domain.Placeholder
	}

	clicksValue, ok := utils.ParseNumeric(clicks)
	if !ok || clicksValue == 0 {
		return domain.Placeholder
	}

	return utils.RoundWithTwoDecimalPlace(costValue / clicksValue)
}
