package domain

// Account é uma conta credenciada dentro de uma plataforma. O Token é a
// credencial usada na consulta de insights daquela conta — nunca deve ser
// logado nem persistido.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}
