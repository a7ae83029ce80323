package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// ErrNoData indica que não havia linhas para exportar. É uma condição de
// negócio ("nada a reportar"), distinta de uma falha de transporte — a camada
// HTTP a traduz em 404.
var ErrNoData = errors.New("no data available")

// Attachment é um CSV pronto para download.
type Attachment struct {
	Filename string
	Content  []byte
}

// FromRecords gera o CSV da listagem detalhada de uma plataforma. O campo id
// é descartado e as colunas seguem a ordem fixada (account_name à frente, o
// restante em ordem lexicográfica).
func FromRecords(records []domain.AdRecord, stem string) (*Attachment, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	rows := make([]map[string]any, 0, len(records))
	fieldSet := make(map[string]bool)

	for _, record := range records {
		row := record.AsMap()
		delete(row, domain.FieldID)
		for field := range row {
			fieldSet[field] = true
		}
		rows = append(rows, row)
	}

	return render(rows, domain.OrderedFields(fieldSet), stem)
}

// FromGeneralReport gera o CSV do relatório geral usando a lista de campos
// já ordenada pelo motor de agregação.
func FromGeneralReport(records []domain.AdRecord, fields []string) (*Attachment, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		row := record.AsMap()
		delete(row, domain.FieldID)
		rows = append(rows, row)
	}

	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == domain.FieldID {
			continue
		}
		columns = append(columns, field)
	}

	return render(rows, columns, "geral")
}

// FromSummary gera o CSV do resumo por conta de uma plataforma.
func FromSummary(summary []domain.SummaryRow, stem string) (*Attachment, error) {
	if len(summary) == 0 {
		return nil, ErrNoData
	}

	rows := make([]map[string]any, 0, len(summary))
	fieldSet := make(map[string]bool)

	for _, summaryRow := range summary {
		row := map[string]any(summaryRow)
		delete(row, domain.FieldID)
		for field := range row {
			fieldSet[field] = true
		}
		rows = append(rows, row)
	}

	return render(rows, domain.OrderedFields(fieldSet), stem+"Resumo")
}

// FromGeneralSummary gera o CSV do resumo geral. As chaves passam pela mesma
// tabela de normalização de nomes do relatório geral, para que plataformas
// com variantes de nome caiam nas mesmas colunas.
func FromGeneralSummary(summary []domain.SummaryRow) (*Attachment, error) {
	if len(summary) == 0 {
		return nil, ErrNoData
	}

	rows := make([]map[string]any, 0, len(summary))
	fieldSet := make(map[string]bool)

	for _, summaryRow := range summary {
		row := make(map[string]any, len(summaryRow))
		for field, value := range summaryRow {
			if field == domain.FieldID {
				continue
			}
			row[domain.NormalizeFieldName(field)] = value
		}
		for field := range row {
			fieldSet[field] = true
		}
		rows = append(rows, row)
	}

	return render(rows, domain.OrderedFields(fieldSet), "GeralResumo")
}

func render(rows []map[string]any, fields []string, stem string) (*Attachment, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(fields); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	line := make([]string, len(fields))
	for _, row := range rows {
		for i, field := range fields {
			line[i] = formatValue(row[field])
		}
		if err := writer.Write(line); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return &Attachment{
		Filename: strings.ReplaceAll(stem, " ", "_") + ".csv",
		Content:  buffer.Bytes(),
	}, nil
}

// formatValue converte um valor heterogêneo para texto de célula. Números
// decodificados do JSON chegam como float64 e são formatados sem zeros à
// direita.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
