package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_HasNext(t *testing.T) {
	tests := []struct {
		name       string
		pagination *Pagination
		expected   bool
	}{
		{
			name:       "Cursor ausente - página única",
			pagination: nil,
			expected:   false,
		},
		{
			name:       "Primeira de três páginas",
			pagination: &Pagination{Current: 1, Total: 3},
			expected:   true,
		},
		{
			name:       "Última página",
			pagination: &Pagination{Current: 3, Total: 3},
			expected:   false,
		},
		{
			name:       "Cursor além do total",
			pagination: &Pagination{Current: 4, Total: 3},
			expected:   false,
		},
		{
			name:       "Cursor malformado com valores zerados",
			pagination: &Pagination{},
			expected:   false,
		},
		{
			name:       "Cursor malformado com valores negativos",
			pagination: &Pagination{Current: -1, Total: 5},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pagination.HasNext())
		})
	}
}
