package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adsapidomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/adsapi/mocks"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// recordFromRaw monta um registro do jeito que o motor monta a partir de um
// item bruto de insights.
func recordFromRaw(accountName string, raw map[string]any) domain.AdRecord {
	record := domain.NewAdRecord(accountName)
	for field, value := range raw {
		record.Set(field, value)
	}

	return record
}

func TestNormalizeRecord_MergePriority(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected func(t *testing.T, record domain.AdRecord)
	}{
		{
			name: "spend e cost presentes - spend vence",
			raw:  map[string]any{"spend": "5", "cost": "3"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, "5", record.Cost)
			},
		},
		{
			name: "Apenas cost presente - cost é usado",
			raw:  map[string]any{"cost": "3"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, "3", record.Cost)
			},
		},
		{
			name: "Nenhum campo de custo - fica o placeholder",
			raw:  map[string]any{"ad_name": "Anúncio 1"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, domain.Placeholder, record.Cost)
			},
		},
		{
			name: "effective_status vence status",
			raw:  map[string]any{"effective_status": "PAUSED", "status": "ACTIVE"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, "PAUSED", record.Status)
			},
		},
		{
			name: "country vence region",
			raw:  map[string]any{"country": "BR", "region": "Sul"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, "BR", record.Region)
			},
		},
		{
			name: "Nome de campo com maiúsculas colapsa na mesma coluna",
			raw:  map[string]any{"Spend": "7"},
			expected: func(t *testing.T, record domain.AdRecord) {
				assert.Equal(t, "7", record.Cost)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := normalizeRecord(recordFromRaw("Conta 1", tt.raw), "Meta Ads")
			tt.expected(t, record)
		})
	}
}

func TestNormalizeRecord_CostPerClick(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected any
	}{
		{
			name:     "Sem CPC da origem - deve derivar cost/clicks com duas casas",
			raw:      map[string]any{"cost": "10", "clicks": "4"},
			expected: 2.5,
		},
		{
			name:     "Clicks zero - deve usar o placeholder em vez de dividir",
			raw:      map[string]any{"cost": "10", "clicks": "0"},
			expected: domain.Placeholder,
		},
		{
			name:     "Clicks ausente - deve usar o placeholder",
			raw:      map[string]any{"cost": "10"},
			expected: domain.Placeholder,
		},
		{
			name:     "Custo não numérico - deve usar o placeholder",
			raw:      map[string]any{"cost": "dez", "clicks": "4"},
			expected: domain.Placeholder,
		},
		{
			name:     "cost_per_click da origem - passa adiante sem recalcular",
			raw:      map[string]any{"cost_per_click": "1.2", "cpc": "9", "cost": "10", "clicks": "4"},
			expected: "1.2",
		},
		{
			name:     "cpc da origem - passa adiante sem recalcular",
			raw:      map[string]any{"cpc": "0.6", "cost": "10", "clicks": "4"},
			expected: "0.6",
		},
		{
			name:     "Números nativos do JSON - deve derivar normalmente",
			raw:      map[string]any{"cost": float64(9), "clicks": float64(3)},
			expected: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := normalizeRecord(recordFromRaw("Conta 1", tt.raw), "Meta Ads")
			assert.Equal(t, tt.expected, record.CostPerClick)
		})
	}
}

func TestNormalizeRecord_FieldNames(t *testing.T) {
	t.Run("Variantes de ad_name colapsam na coluna canônica", func(t *testing.T) {
		record := normalizeRecord(recordFromRaw("Conta 1", map[string]any{"adName": "Anúncio 1"}), "Meta Ads")

		assert.Equal(t, "Anúncio 1", record.AdName)
		assert.NotContains(t, record.Extra, "adName")
	})

	t.Run("O placeholder padrão nunca sobrescreve o valor real de uma variante", func(t *testing.T) {
		// O registro canônico nasce com ad_name "-" e a variante "ad name"
		// colapsa na mesma coluna; a ordem de iteração do mapa bruto não pode
		// decidir qual dos dois vence. Repetido para cobrir as duas ordens.
		for i := 0; i < 200; i++ {
			record := normalizeRecord(recordFromRaw("Conta 1", map[string]any{"ad name": "Anúncio GA"}), "Meta Ads")
			require.Equal(t, "Anúncio GA", record.AdName)
		}
	})

	t.Run("O campo id é sempre descartado", func(t *testing.T) {
		record := normalizeRecord(recordFromRaw("Conta 1", map[string]any{"id": "a1", "ad_name": "Anúncio 1"}), "Meta Ads")

		_, present := record.AsMap()[domain.FieldID]
		assert.False(t, present)
	})

	t.Run("Plataforma e conta identificam o registro no relatório geral", func(t *testing.T) {
		record := normalizeRecord(recordFromRaw("Conta 1", nil), "Meta Ads")

		assert.Equal(t, "Meta Ads", record.PlatformName)
		assert.Equal(t, "Conta 1", record.AccountName)
	})
}

func TestBuildGeneralReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListPlatforms().Return([]adsapidomain.Platform{
		{Value: "meta", Text: "Meta Ads"},
		{Value: "ga4", Text: "Google Analytics"},
	}, nil)

	client.EXPECT().ListAccounts("meta").Return([]adsapidomain.Account{
		{ID: "1", Name: "Conta Meta", Token: "t1"},
	}, nil)
	client.EXPECT().ListFields("meta").Return([]adsapidomain.Field{
		{Value: "ad_name"}, {Value: "impressions"}, {Value: "spend"}, {Value: "clicks"},
	}, nil)
	client.EXPECT().ListAccountInsights("meta", "1", "t1", "ad_name,impressions,spend,clicks").
		Return([]any{
			map[string]any{
				"id":               "a1",
				"adName":           "Anúncio Meta",
				"impressions":      "100",
				"spend":            "5",
				"clicks":           "10",
				"effective_status": "ACTIVE",
				"country":          "BR",
			},
		}, nil)

	client.EXPECT().ListAccounts("ga4").Return([]adsapidomain.Account{
		{ID: "2", Name: "Conta GA", Token: "t2"},
	}, nil)
	client.EXPECT().ListFields("ga4").Return([]adsapidomain.Field{
		{Value: "ad name"}, {Value: "impressions"}, {Value: "cost"}, {Value: "clicks"},
	}, nil)
	client.EXPECT().ListAccountInsights("ga4", "2", "t2", "ad name,impressions,cost,clicks").
		Return([]any{
			map[string]any{
				"ad name":     "Anúncio GA",
				"impressions": float64(50),
				"cost":        float64(3),
				"clicks":      float64(0),
				"status":      "paused",
				"region":      "Sul",
			},
		}, nil)

	service := newTestService(client)
	report, fields := service.BuildGeneralReport()

	require.Len(t, report, 2)

	meta := report[0]
	assert.Equal(t, "Meta Ads", meta.PlatformName)
	assert.Equal(t, "Conta Meta", meta.AccountName)
	assert.Equal(t, "Anúncio Meta", meta.AdName)
	assert.Equal(t, "5", meta.Cost)
	assert.Equal(t, "ACTIVE", meta.Status)
	assert.Equal(t, "BR", meta.Region)
	assert.Equal(t, 0.5, meta.CostPerClick)

	ga := report[1]
	assert.Equal(t, "Google Analytics", ga.PlatformName)
	assert.Equal(t, "Anúncio GA", ga.AdName)
	assert.Equal(t, float64(3), ga.Cost)
	assert.Equal(t, "paused", ga.Status)
	assert.Equal(t, domain.Placeholder, ga.CostPerClick)

	assert.Equal(t, []string{
		"platform_name",
		"account_name",
		"ad_name",
		"clicks",
		"cost",
		"cost_per_click",
		"impressions",
		"region",
		"status",
	}, fields)
}
