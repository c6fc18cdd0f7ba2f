package domain

import "time"

// Session representa a sessão autenticada de um operador. É criada no login,
// viaja no token e é destruída no logout; substitui qualquer estado global
// de "usuário atual".
type Session struct {
	Scope    OwnerScope `json:"scope"`
	IssuedAt time.Time  `json:"issued_at"`
}

// NewSession cria uma sessão para o escopo informado.
func NewSession(scope OwnerScope) Session {
	return Session{Scope: scope, IssuedAt: time.Now()}
}
