package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// respondError traduz um erro de domínio para a resposta HTTP
// correspondente. O fallback é a mensagem genérica mostrada ao usuário
// quando o erro não tem tradução específica.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})

	case errors.Is(err, domain.ErrValidation):
		log.Warn("Validation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos. Verifique os campos obrigatórios."})

	case errors.Is(err, domain.ErrCatalogFloor):
		c.JSON(http.StatusBadRequest, gin.H{"error": "O catálogo precisa manter pelo menos um plano"})

	case errors.Is(err, domain.ErrImport):
		log.Warn("CSV import rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erro ao importar CSV. Verifique o formato do arquivo."})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta!"})

	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Error("Storage unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fallback})

	default:
		log.Error("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
