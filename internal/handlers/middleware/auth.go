package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
)

const (
	// CallerIDContextKey é a chave do ID do chamador no contexto do Gin
	CallerIDContextKey = "caller_id"
)

// AuthMiddleware resolve o token de sessão para a identidade interna do
// chamador via IdentityGate
type AuthMiddleware struct {
	gate ports.IdentityGate
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(gate ports.IdentityGate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// RequireCaller exige um chamador autenticado: sem identidade válida a
// requisição é abortada com 401 antes de chegar ao handler
func (m *AuthMiddleware) RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, err := m.gate.ResolveCaller(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		c.Set(CallerIDContextKey, callerID)
		c.Next()
	}
}

// OptionalCaller resolve a identidade quando presente, mas deixa
// visitantes anônimos passarem (usado nas rotas de leitura, para o
// flag "viewer já curtiu")
func (m *AuthMiddleware) OptionalCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerID, err := m.gate.ResolveCaller(c.Request.Context(), bearerToken(c)); err == nil {
			c.Set(CallerIDContextKey, callerID)
		}
		c.Next()
	}
}

// CallerID retorna o ID do chamador resolvido, ou vazio para anônimo
func CallerID(c *gin.Context) string {
	return c.GetString(CallerIDContextKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
