package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

const (
	// Placeholder marca um campo ausente ou sem valor aproveitável.
	Placeholder = "-"

	// NoAdsName é o ad_name sintético emitido para contas sem anúncios,
	// garantindo ao menos uma linha por conta nos relatórios.
	NoAdsName = "Sem anúncios"
)

// Nomes dos campos canônicos.
const (
	FieldPlatformName = "platform_name"
	FieldAccountName  = "account_name"
	FieldAdName       = "ad_name"
	FieldImpressions  = "impressions"
	FieldCost         = "cost"
	FieldRegion       = "region"
	FieldClicks       = "clicks"
	FieldStatus       = "status"
	FieldCostPerClick = "cost_per_click"
	FieldCPC          = "cpc"
	FieldID           = "id"
)

// AdRecord é a representação normalizada de um insight de anúncio: o núcleo
// canônico tipado mais um mapa lateral com os campos extras da plataforma.
// Os valores continuam heterogêneos (números ou strings, conforme a API os
// devolveu); a coerção numérica acontece apenas nas somas.
type AdRecord struct {
	PlatformName string         // vazio fora do relatório geral
	AccountName  string
	AdName       any
	Impressions  any
	Cost         any
	Region       any
	Clicks       any
	Status       any
	CostPerClick any            // nulo quando a origem não fornece nem derivamos
	Extra        map[string]any // campos de passagem, preservados só na listagem detalhada
}

// NewAdRecord cria um registro para a conta com os cinco campos canônicos
// preenchidos com o placeholder.
func NewAdRecord(accountName string) AdRecord {
	return AdRecord{
		AccountName: accountName,
		AdName:      Placeholder,
		Impressions: Placeholder,
		Cost:        Placeholder,
		Region:      Placeholder,
		Clicks:      Placeholder,
		Status:      Placeholder,
	}
}

// NoAdsRecord cria o registro sentinela de conta sem anúncios.
func NoAdsRecord(accountName string) AdRecord {
	record := NewAdRecord(accountName)
	record.AdName = NoAdsName
	return record
}

// Set grava um campo pelo nome, roteando para o núcleo canônico ou para o
// mapa de extras.
func (r *AdRecord) Set(field string, value any) {
	switch field {
	case FieldPlatformName:
		if s, ok := value.(string); ok {
			r.PlatformName = s
		}
	case FieldAccountName:
		if s, ok := value.(string); ok {
			r.AccountName = s
		}
	case FieldAdName:
		r.AdName = value
	case FieldImpressions:
		r.Impressions = value
	case FieldCost:
		r.Cost = value
	case FieldRegion:
		r.Region = value
	case FieldClicks:
		r.Clicks = value
	case FieldStatus:
		r.Status = value
	case FieldCostPerClick:
		r.CostPerClick = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[field] = value
	}
}

// Field lê um campo pelo nome. O segundo retorno indica se o campo está
// presente no registro.
func (r AdRecord) Field(field string) (any, bool) {
	switch field {
	case FieldPlatformName:
		if r.PlatformName == "" {
			return nil, false
		}
		return r.PlatformName, true
	case FieldAccountName:
		return r.AccountName, true
	case FieldAdName:
		return r.AdName, r.AdName != nil
	case FieldImpressions:
		return r.Impressions, r.Impressions != nil
	case FieldCost:
		return r.Cost, r.Cost != nil
	case FieldRegion:
		return r.Region, r.Region != nil
	case FieldClicks:
		return r.Clicks, r.Clicks != nil
	case FieldStatus:
		return r.Status, r.Status != nil
	case FieldCostPerClick:
		return r.CostPerClick, r.CostPerClick != nil
	default:
		value, ok := r.Extra[field]
		return value, ok
	}
}

// AsMap materializa o registro como mapa campo → valor, incluindo os extras.
// platform_name e cost_per_click só aparecem quando presentes.
func (r AdRecord) AsMap() map[string]any {
	out := make(map[string]any, len(r.Extra)+9)

	if r.PlatformName != "" {
		out[FieldPlatformName] = r.PlatformName
	}
	out[FieldAccountName] = r.AccountName
	if r.AdName != nil {
		out[FieldAdName] = r.AdName
	}
	if r.Impressions != nil {
		out[FieldImpressions] = r.Impressions
	}
	if r.Cost != nil {
		out[FieldCost] = r.Cost
	}
	if r.Region != nil {
		out[FieldRegion] = r.Region
	}
	if r.Clicks != nil {
		out[FieldClicks] = r.Clicks
	}
	if r.Status != nil {
		out[FieldStatus] = r.Status
	}
	if r.CostPerClick != nil {
		out[FieldCostPerClick] = r.CostPerClick
	}

	for field, value := range r.Extra {
		out[field] = value
	}

	return out
}

// MarshalJSON serializa o registro de forma achatada, com os extras no mesmo
// nível dos campos canônicos.
func (r AdRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.AsMap())
}

// SummaryRow é uma linha de resumo (por conta ou por plataforma): campos
// numéricos somados, campos textuais colapsados para "".
type SummaryRow map[string]any

// OrderedFields ordena um conjunto de nomes de campo para saída tabular:
// platform_name e account_name fixados à frente, o restante em ordem
// lexicográfica. A ordem é estável entre execuções para manter as colunas de
// CSV consistentes.
func OrderedFields(fields map[string]bool) []string {
	rest := make([]string, 0, len(fields))
	for field, present := range fields {
		if !present || field == FieldPlatformName || field == FieldAccountName {
			continue
		}
		rest = append(rest, field)
	}
	sort.Strings(rest)

	ordered := make([]string, 0, len(rest)+2)
	if fields[FieldPlatformName] {
		ordered = append(ordered, FieldPlatformName)
	}
	if fields[FieldAccountName] {
		ordered = append(ordered, FieldAccountName)
	}
	return append(ordered, rest...)
}

// NormalizeFieldName aplica a tabela de unificação de nomes de campo entre
// plataformas. A comparação ignora maiúsculas ("adName", "AdName" e "adname"
// colapsam na mesma coluna).
func NormalizeFieldName(field string) string {
	switch strings.ToLower(field) {
	case "adname", "ad name":
		return FieldAdName
	case FieldCPC:
		return FieldCostPerClick
	case "spend":
		return FieldCost
	case "effective_status":
		return FieldStatus
	case "country":
		return FieldRegion
	default:
		return field
	}
}
