package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdRecord(t *testing.T) {
	record := NewAdRecord("Conta 1")

	assert.Equal(t, "Conta 1", record.AccountName)
	assert.Equal(t, Placeholder, record.AdName)
	assert.Equal(t, Placeholder, record.Impressions)
	assert.Equal(t, Placeholder, record.Cost)
	assert.Equal(t, Placeholder, record.Region)
	assert.Equal(t, Placeholder, record.Clicks)
	assert.Equal(t, Placeholder, record.Status)
	assert.Nil(t, record.CostPerClick)
}

func TestNoAdsRecord(t *testing.T) {
	record := NoAdsRecord("Conta 1")

	assert.Equal(t, NoAdsName, record.AdName)
	assert.Equal(t, Placeholder, record.Impressions)
}

func TestAdRecord_SetAndField(t *testing.T) {
	record := NewAdRecord("Conta 1")

	record.Set(FieldImpressions, "100")
	record.Set("reach", "900")

	impressions, ok := record.Field(FieldImpressions)
	assert.True(t, ok)
	assert.Equal(t, "100", impressions)

	reach, ok := record.Field("reach")
	assert.True(t, ok)
	assert.Equal(t, "900", reach)

	_, ok = record.Field("frequency")
	assert.False(t, ok)

	// platform_name só existe quando o registro pertence ao relatório geral.
	_, ok = record.Field(FieldPlatformName)
	assert.False(t, ok)
}

func TestAdRecord_AsMap(t *testing.T) {
	record := NewAdRecord("Conta 1")
	record.Set(FieldImpressions, "100")
	record.Set("reach", "900")

	out := record.AsMap()

	assert.Equal(t, "Conta 1", out[FieldAccountName])
	assert.Equal(t, "100", out[FieldImpressions])
	assert.Equal(t, "900", out["reach"])

	// Campos do relatório geral não vazam para a listagem por plataforma.
	assert.NotContains(t, out, FieldPlatformName)
	assert.NotContains(t, out, FieldCostPerClick)
}

func TestAdRecord_MarshalJSON(t *testing.T) {
	record := NewAdRecord("Conta 1")
	record.Set(FieldImpressions, "100")
	record.Set("reach", "900")

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Os extras saem achatados, no mesmo nível dos campos canônicos.
	assert.Equal(t, "Conta 1", decoded[FieldAccountName])
	assert.Equal(t, "900", decoded["reach"])
}

func TestOrderedFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]bool
		expected []string
	}{
		{
			name: "Campos fixados à frente e o restante em ordem lexicográfica",
			fields: map[string]bool{
				FieldPlatformName: true,
				FieldAccountName:  true,
				"status":          true,
				"clicks":          true,
				"impressions":     true,
			},
			expected: []string{"platform_name", "account_name", "clicks", "impressions", "status"},
		},
		{
			name: "Sem platform_name - account_name continua à frente",
			fields: map[string]bool{
				FieldAccountName: true,
				"cost":           true,
				"ad_name":        true,
			},
			expected: []string{"account_name", "ad_name", "cost"},
		},
		{
			name:     "Conjunto vazio",
			fields:   map[string]bool{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderedFields(tt.fields))
		})
	}
}

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"adName", FieldAdName},
		{"AdName", FieldAdName},
		{"ad name", FieldAdName},
		{"Ad Name", FieldAdName},
		{"cpc", FieldCostPerClick},
		{"CPC", FieldCostPerClick},
		{"spend", FieldCost},
		{"effective_status", FieldStatus},
		{"country", FieldRegion},
		{"impressions", "impressions"},
		{"reach", "reach"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFieldName(tt.field))
		})
	}
}
