package domain

// Pagination é o cursor {current, total} das rotas paginadas. A ausência do
// objeto, ou de qualquer um dos subcampos, significa "página única".
type Pagination struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// HasNext informa se ainda existem páginas a buscar. Um cursor nulo ou
// malformado (valores não positivos) encerra a paginação sem erro.
func (p *Pagination) HasNext() bool {
	if p == nil || p.Current <= 0 || p.Total <= 0 {
		return false
	}
	return p.Current < p.Total
}
