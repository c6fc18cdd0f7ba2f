package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/mvcampos/painel-iptv/pkg/req"
	"github.com/mvcampos/painel-iptv/pkg/res"
)

// LoginRequest corpo da requisição de login
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse resposta do login bem-sucedido
type LoginResponse struct {
	Token string            `json:"token"`
	Scope domain.OwnerScope `json:"scope"`
}

// AuthHandler handler de autenticação do painel
type AuthHandler struct {
	service *service.AuthService
	log     *logger.Logger
}

// NewAuthHandler cria o handler de autenticação
func NewAuthHandler(svc *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		log:     log,
	}
}

// Login autentica uma das duas chaves de acesso e devolve o token de
// sessão do papel correspondente.
func (h *AuthHandler) Login(c *gin.Context) {
	body, err := req.HandleBody[LoginRequest](c.Writer, c.Request, h.log)
	if err != nil {
		return
	}

	token, session, err := h.service.Login(body.Password)
	if err != nil {
		respondError(c, h.log, err, "Erro ao efetuar login")
		return
	}

	res.JsonResponse(c.Writer, LoginResponse{Token: token, Scope: session.Scope}, http.StatusOK)
}
