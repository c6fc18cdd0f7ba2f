package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/api/rest/middleware"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// DashboardHandler handlers das métricas do painel
type DashboardHandler struct {
	service *service.ClientService
	log     *logger.Logger
}

// NewDashboardHandler cria o handler do painel
func NewDashboardHandler(svc *service.ClientService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		log:     log,
	}
}

// Summary devolve as métricas derivadas da lista completa do escopo:
// total de clientes, ativos, receita mensal, créditos e vencendo em até
// 7 dias. As métricas nunca consideram os filtros de tela.
func (h *DashboardHandler) Summary(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), session)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar métricas")
		return
	}

	c.JSON(http.StatusOK, summary)
}
