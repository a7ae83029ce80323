package reporting

import (
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// fieldFold acumula o estado de um campo durante a agregação: a soma dos
// valores numéricos e se algum valor genuinamente textual apareceu.
type fieldFold struct {
	sum     float64
	numeric bool
	textual bool
}

// foldRecords colapsa os registros agrupando pelo campo keyField, na ordem em
// que cada chave apareceu. Valores numéricos são somados; placeholders
// contribuem com zero; qualquer valor textual marca o campo inteiro como
// texto, que colapsa para "". Campos em excluded ficam fora da linha.
func foldRecords(records []domain.AdRecord, keyField string, excluded map[string]bool) []domain.SummaryRow {
	order := make([]string, 0)
	groups := make(map[string]map[string]*fieldFold)

	for _, record := range records {
		keyValue, _ := record.Field(keyField)
		key, _ := keyValue.(string)

		group, ok := groups[key]
		if !ok {
			group = make(map[string]*fieldFold)
			groups[key] = group
			order = append(order, key)
		}

		for field, value := range record.AsMap() {
			if field == keyField || excluded[field] {
				continue
			}

			fold := group[field]
			if fold == nil {
				fold = &fieldFold{}
				group[field] = fold
			}

			if utils.IsPlaceholder(value) {
				continue
			}

			if number, ok := utils.ParseNumeric(value); ok {
				fold.sum += number
				fold.numeric = true
			} else {
				fold.textual = true
			}
		}
	}

	rows := make([]domain.SummaryRow, 0, len(order))
	for _, key := range order {
		row := domain.SummaryRow{keyField: key}
		for field, fold := range groups[key] {
			if fold.numeric && !fold.textual {
				row[field] = fold.sum
			} else {
				row[field] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}
