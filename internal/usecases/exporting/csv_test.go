package exporting

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()

	rows, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestFromRecords(t *testing.T) {
	t.Run("Sem registros - deve retornar ErrNoData", func(t *testing.T) {
		attachment, err := FromRecords([]domain.AdRecord{}, "meta")

		assert.Nil(t, attachment)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Deve fixar as colunas e descartar o campo id", func(t *testing.T) {
		record := domain.NewAdRecord("Conta 1")
		record.Set(domain.FieldImpressions, "100")
		record.Set(domain.FieldID, "a1")
		record.Set("reach", "900")

		attachment, err := FromRecords([]domain.AdRecord{record}, "meta")
		require.NoError(t, err)

		assert.Equal(t, "meta.csv", attachment.Filename)

		rows := parseCSV(t, attachment.Content)
		require.Len(t, rows, 2)

		assert.Equal(t, []string{"account_name", "ad_name", "clicks", "cost", "impressions", "reach", "region", "status"}, rows[0])
		assert.Equal(t, []string{"Conta 1", "-", "-", "-", "100", "900", "-", "-"}, rows[1])
	})

	t.Run("Espaços no nome do arquivo viram underscores", func(t *testing.T) {
		attachment, err := FromRecords([]domain.AdRecord{domain.NewAdRecord("Conta 1")}, "google ads")
		require.NoError(t, err)

		assert.Equal(t, "google_ads.csv", attachment.Filename)
	})
}

func TestFromGeneralReport(t *testing.T) {
	t.Run("Sem registros - deve retornar ErrNoData", func(t *testing.T) {
		_, err := FromGeneralReport(nil, []string{"account_name"})

		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Deve usar a ordem de colunas do motor e formatar números sem zeros à direita", func(t *testing.T) {
		record := domain.AdRecord{
			PlatformName: "Meta Ads",
			AccountName:  "Conta 1",
			AdName:       "Anúncio 1",
			Cost:         "5",
			Clicks:       float64(10),
			CostPerClick: 0.5,
		}

		fields := []string{"platform_name", "account_name", "ad_name", "clicks", "cost", "cost_per_click"}

		attachment, err := FromGeneralReport([]domain.AdRecord{record}, fields)
		require.NoError(t, err)

		assert.Equal(t, "geral.csv", attachment.Filename)

		rows := parseCSV(t, attachment.Content)
		require.Len(t, rows, 2)

		assert.Equal(t, fields, rows[0])
		assert.Equal(t, []string{"Meta Ads", "Conta 1", "Anúncio 1", "10", "5", "0.5"}, rows[1])
	})
}

func TestFromSummary(t *testing.T) {
	t.Run("Sem linhas - deve retornar ErrNoData", func(t *testing.T) {
		_, err := FromSummary(nil, "meta")

		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Deve sufixar o nome do arquivo com Resumo", func(t *testing.T) {
		summary := []domain.SummaryRow{
			{"account_name": "Conta 1", "impressions": 30.0, "status": ""},
		}

		attachment, err := FromSummary(summary, "meta")
		require.NoError(t, err)

		assert.Equal(t, "metaResumo.csv", attachment.Filename)

		rows := parseCSV(t, attachment.Content)
		require.Len(t, rows, 2)

		assert.Equal(t, []string{"account_name", "impressions", "status"}, rows[0])
		assert.Equal(t, []string{"Conta 1", "30", ""}, rows[1])
	})
}

func TestFromGeneralSummary(t *testing.T) {
	t.Run("Sem linhas - deve retornar ErrNoData", func(t *testing.T) {
		_, err := FromGeneralSummary(nil)

		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Chaves passam pela normalização de nomes antes de virarem colunas", func(t *testing.T) {
		summary := []domain.SummaryRow{
			{"platform_name": "Meta Ads", "spend": 12.5, "impressions": 300.0},
			{"platform_name": "Google Analytics", "cost": 3.0, "impressions": 50.0},
		}

		attachment, err := FromGeneralSummary(summary)
		require.NoError(t, err)

		assert.Equal(t, "GeralResumo.csv", attachment.Filename)

		rows := parseCSV(t, attachment.Content)
		require.Len(t, rows, 3)

		// spend e cost caem na mesma coluna depois da normalização.
		assert.Equal(t, []string{"platform_name", "cost", "impressions"}, rows[0])
		assert.Equal(t, []string{"Meta Ads", "12.5", "300"}, rows[1])
		assert.Equal(t, []string{"Google Analytics", "3", "50"}, rows[2])
	})
}
