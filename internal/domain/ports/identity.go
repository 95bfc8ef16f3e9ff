package ports

import "context"

// IdentityGate resolve um token de sessão opaco para o ID interno do
// usuário. Consulta pura, sem mutação. Toda operação de escrita resolve
// o chamador antes de prosseguir e rejeita com errors.ErrUnauthenticated
// quando anônimo.
type IdentityGate interface {
	ResolveCaller(ctx context.Context, token string) (string, error)
}

// TokenIssuer emite tokens de sessão para um usuário autenticado
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
