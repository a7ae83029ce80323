package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumeric tenta interpretar um valor vindo da API upstream como número.
// As rotas de insights misturam números nativos e números serializados como
// string, então todos os pontos de soma usam esta função em vez de checagens
// ad hoc. Aceita negativos e notação científica.
func ParseNumeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// IsPlaceholder informa se o valor é o marcador de campo ausente ("-", nulo
// ou vazio). Placeholders contribuem com zero nas somas e nunca marcam o
// campo como textual.
func IsPlaceholder(value any) bool {
	if value == nil {
		return true
	}

	s, ok := value.(string)
	if !ok {
		return false
	}

	trimmed := strings.TrimSpace(s)
	return trimmed == "" || trimmed == "-"
}
