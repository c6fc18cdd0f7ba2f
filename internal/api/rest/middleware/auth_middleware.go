package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/mvcampos/painel-iptv/pkg/res"
)

// sessionKey chave da sessão no contexto do Gin
const sessionKey = "session"

// TokenValidator valida um token de sessão e devolve a sessão do chamador.
type TokenValidator interface {
	ValidateToken(token string) (domain.Session, error)
}

// AuthMiddleware exige um token de sessão válido e injeta a sessão no
// contexto da requisição. O token vem do header Authorization (Bearer) ou,
// para conexões WebSocket, do parâmetro de query "token".
func AuthMiddleware(validator TokenValidator, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			res.JsonResponse(c.Writer, res.ErrorResponse{Error: "Sessão não autenticada"}, http.StatusUnauthorized)
			c.Abort()
			return
		}

		session, err := validator.ValidateToken(token)
		if err != nil {
			log.Warnw("Session token rejected", "error", err)
			res.JsonResponse(c.Writer, res.ErrorResponse{Error: "Sessão inválida ou expirada"}, http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFromContext devolve a sessão injetada pelo AuthMiddleware.
func SessionFromContext(c *gin.Context) (domain.Session, bool) {
	value, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := value.(domain.Session)
	return session, ok
}

// extractToken procura o token no header Authorization ou na query string
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
