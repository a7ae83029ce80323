package domain

// Field é um campo de métrica suportado por uma plataforma. Value é o nome
// usado no parâmetro fields da rota de insights.
type Field struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
