package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/mvcampos/painel-iptv/internal/api/rest/handlers"
	"github.com/mvcampos/painel-iptv/internal/api/rest/middleware"
	"github.com/mvcampos/painel-iptv/internal/service"
	"github.com/mvcampos/painel-iptv/internal/ws"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services serviços consumidos pelos handlers REST
type Services struct {
	Auth     *service.AuthService
	Clients  *service.ClientService
	Plans    *service.PlanService
	Activity *service.ActivityService
}

// SetupRouter configura o roteador Gin com as rotas e os middlewares
func SetupRouter(svcs Services, hub *ws.Hub, registry *prometheus.Registry, log *logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	// Endpoint de verificação de saúde do serviço
	r.GET("/health", handlers.HealthCheck)

	// Métricas Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Inicialização dos handlers
	authHandler := handlers.NewAuthHandler(svcs.Auth, log)
	clientHandler := handlers.NewClientHandler(svcs.Clients, log)
	planHandler := handlers.NewPlanHandler(svcs.Plans, log)
	activityHandler := handlers.NewActivityHandler(svcs.Activity, log)
	dashboardHandler := handlers.NewDashboardHandler(svcs.Clients, log)
	wsHandler := handlers.NewWSHandler(hub, log)

	authRequired := middleware.AuthMiddleware(svcs.Auth, log)

	v1 := r.Group("/api/v1")
	{
		// Autenticação
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Clientes
		clients := v1.Group("/clients", authRequired)
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
			clients.POST("/:id/toggle-status", clientHandler.ToggleStatus)
			clients.POST("/:id/renew", clientHandler.Renew)
			clients.POST("/:id/credits", clientHandler.AdjustCredits)
			clients.POST("/import", clientHandler.Import)
			clients.GET("/export", clientHandler.Export)
			clients.GET("/report", clientHandler.Report)
			clients.GET("/:id/whatsapp-link", clientHandler.WhatsAppLink)
		}

		// Catálogo de planos
		plans := v1.Group("/plans", authRequired)
		{
			plans.GET("", planHandler.List)
			plans.PUT("", planHandler.Replace)
		}

		// Histórico de ações
		activities := v1.Group("/activities", authRequired)
		{
			activities.GET("", activityHandler.List)
			activities.DELETE("", activityHandler.Clear)
		}

		// Métricas do painel
		dashboard := v1.Group("/dashboard", authRequired)
		{
			dashboard.GET("/summary", dashboardHandler.Summary)
		}
	}

	// Canal de notificações de mudança (token via query string)
	r.GET("/ws", authRequired, wsHandler.Serve)

	return r
}
