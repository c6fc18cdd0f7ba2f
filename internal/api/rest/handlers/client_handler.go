package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mvcampos/painel-iptv/internal/api/rest/middleware"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/mvcampos/painel-iptv/pkg/req"
)

// CreditsRequest corpo da requisição de ajuste de créditos
type CreditsRequest struct {
	Delta float64 `json:"delta"`
}

// ClientHandler handlers dos registros de clientes. Toda resposta de
// mutação devolve também a lista completa recarregada: o painel não faz
// atualização incremental, sempre substitui tudo o que tem em tela.
type ClientHandler struct {
	service *service.ClientService
	log     *logger.Logger
}

// NewClientHandler cria o handler de clientes
func NewClientHandler(svc *service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service: svc,
		log:     log,
	}
}

// List devolve os registros do escopo da sessão, aplicando os filtros de
// busca, status e vencimento da query string.
func (h *ClientHandler) List(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	clients, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar clientes")
		return
	}

	filtered := parseFilter(c).Apply(clients, time.Now())
	c.JSON(http.StatusOK, filtered)
}

// Create cria um novo registro no escopo da sessão.
func (h *ClientHandler) Create(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	var request domain.ClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de requisição inválido"})
		return
	}
	if err := req.IsValid(request); err != nil {
		h.log.Warn("Request validation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos. Verifique os campos obrigatórios."})
		return
	}

	client, err := h.service.Create(c.Request.Context(), session, request)
	if err != nil {
		respondError(c, h.log, err, "Erro ao cadastrar cliente")
		return
	}

	h.log.Info("Created client %s in scope %s", client.ID, session.Scope)
	h.respondWithList(c, session, http.StatusCreated, client)
}

// Update substitui os campos mutáveis de um registro.
func (h *ClientHandler) Update(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	var request domain.ClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de requisição inválido"})
		return
	}

	client, err := h.service.Update(c.Request.Context(), session, id, request)
	if err != nil {
		respondError(c, h.log, err, "Erro ao atualizar cliente")
		return
	}

	h.respondWithList(c, session, http.StatusOK, client)
}

// Delete remove um registro do escopo da sessão.
func (h *ClientHandler) Delete(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		respondError(c, h.log, err, "Erro ao excluir cliente")
		return
	}

	clients, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar clientes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// ToggleStatus avança o status do cliente no ciclo fixo de três estados.
func (h *ClientHandler) ToggleStatus(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	client, err := h.service.ToggleStatus(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, h.log, err, "Erro ao alterar status do cliente")
		return
	}

	h.respondWithList(c, session, http.StatusOK, client)
}

// Renew renova a assinatura do cliente por mais um ciclo.
func (h *ClientHandler) Renew(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	client, err := h.service.Renew(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, h.log, err, "Erro ao renovar cliente")
		return
	}

	h.respondWithList(c, session, http.StatusOK, client)
}

// AdjustCredits soma o delta informado aos créditos do cliente.
func (h *ClientHandler) AdjustCredits(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	var request CreditsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de requisição inválido"})
		return
	}

	client, err := h.service.AdjustCredits(c.Request.Context(), session, id, request.Delta)
	if err != nil {
		respondError(c, h.log, err, "Erro ao ajustar créditos")
		return
	}

	h.respondWithList(c, session, http.StatusOK, client)
}

// Import importa os registros do CSV enviado no corpo da requisição.
func (h *ClientHandler) Import(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo CSV vazio"})
		return
	}

	count, err := h.service.BulkImport(c.Request.Context(), session, string(raw))
	if err != nil {
		respondError(c, h.log, err, "Erro ao importar CSV")
		return
	}

	clients, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar clientes")
		return
	}

	h.log.Info("Imported %d clients into scope %s", count, session.Scope)
	c.JSON(http.StatusOK, gin.H{"imported": count, "clients": clients})
}

// Export devolve a lista filtrada no formato CSV de exportação.
func (h *ClientHandler) Export(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	out, err := h.service.ExportCSV(c.Request.Context(), session, parseFilter(c))
	if err != nil {
		respondError(c, h.log, err, "Erro ao exportar clientes")
		return
	}

	filename := fmt.Sprintf("clientes_%s_%s.csv", session.Scope, domain.Today().String())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

// Report devolve o relatório HTML para impressão da lista filtrada.
func (h *ClientHandler) Report(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	report, err := h.service.ExportReport(c.Request.Context(), session, parseFilter(c))
	if err != nil {
		respondError(c, h.log, err, "Erro ao gerar relatório")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(report))
}

// WhatsAppLink devolve o link de cobrança de renovação do cliente.
func (h *ClientHandler) WhatsAppLink(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessão não autenticada"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
		return
	}

	link, err := h.service.WhatsAppLink(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, h.log, err, "Erro ao gerar link de cobrança")
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}

// respondWithList devolve o registro mutado junto com a lista completa
// recarregada do escopo.
func (h *ClientHandler) respondWithList(c *gin.Context, session domain.Session, status int, client domain.ClientRecord) {
	clients, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, h.log, err, "Erro ao carregar clientes")
		return
	}
	c.JSON(status, gin.H{"client": client, "clients": clients})
}

// parseFilter monta o filtro a partir da query string.
func parseFilter(c *gin.Context) domain.Filter {
	return domain.Filter{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
		ExpiringOnly: c.Query("expiring") == "true",
	}
}
