package domain

// Platform é uma rede de anúncios exposta pelo diretório upstream.
// Value identifica a plataforma nas demais rotas; Text é o nome de exibição.
type Platform struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
