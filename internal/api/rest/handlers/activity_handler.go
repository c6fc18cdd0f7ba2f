package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/api/rest/middleware"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// ActivityHandler handlers do histórico de ações
type ActivityHandler struct {
	service *service.ActivityService
	log     *logger.Logger
}

// NewActivityHandler cria o handler do histórico de ações
func NewActivityHandler(svc *service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		log:     log,
	}
}

// List devolve o histórico do escopo da sessão, mais recente primeiro.
func (h *ActivityHandler) List(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	activities, err := h.service.List(c.Request.Context(), session.Scope)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar histórico")
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Clear apaga todo o histórico do escopo da sessão.
func (h *ActivityHandler) Clear(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	if err := h.service.Clear(c.Request.Context(), session.Scope); err != nil {
		respondError(c, h.log, err, "Erro ao limpar histórico")
		return
	}

	c.Status(http.StatusNoContent)
}
