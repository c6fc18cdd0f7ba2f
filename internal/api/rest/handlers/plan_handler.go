package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/api/rest/middleware"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// PlanHandler handlers do catálogo de planos
type PlanHandler struct {
	service *service.PlanService
	log     *logger.Logger
}

// NewPlanHandler cria o handler do catálogo de planos
func NewPlanHandler(svc *service.PlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{
		service: svc,
		log:     log,
	}
}

// List devolve o catálogo do escopo da sessão, semeando os planos padrão
// no primeiro acesso.
func (h *PlanHandler) List(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	plans, err := h.service.Catalog(c.Request.Context(), session.Scope)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar planos")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Replace substitui o catálogo do escopo da sessão.
func (h *PlanHandler) Replace(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	var plans []domain.Plan
	if err := c.ShouldBindJSON(&plans); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de requisição inválido"})
		return
	}

	if err := h.service.Save(c.Request.Context(), session.Scope, plans); err != nil {
		respondError(c, h.log, err, "Erro ao salvar planos")
		return
	}

	c.JSON(http.StatusOK, plans)
}
