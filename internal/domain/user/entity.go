package user

// Role representa o papel do usuário no serviço de autenticação
type Role string

const (
	RoleAuthenticated Role = "authenticated" // Usuário logado
	RoleServiceRole   Role = "service_role"  // Chamadas internas com a chave de serviço
)

// User representa o usuário autenticado de uma requisição.
// As credenciais ficam no serviço de autenticação hospedado; aqui só
// chegam os dados do token já validado.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAuthenticated verifica se há um usuário resolvido
func (u *User) IsAuthenticated() bool {
	return u != nil && u.ID != ""
}
