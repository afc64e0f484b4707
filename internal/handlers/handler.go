package handlers

import (
	"training_briefing/internal/logger"
	"training_briefing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	validate *validator.Validate
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	h := &Handler{services: services, log: log}
	h.validate = newFormValidator(services.Forms)
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// live countdown over WebSocket, same port
	router.GET("/ws/countdown", h.wsCountdown)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/briefing", h.getBriefing)
		api.GET("/countdown", h.getCountdown)
		api.GET("/lunch/saved", h.getSavedLunch)
		api.GET("/attempts", h.getAttempts)

		api.POST("/sessions", h.openSession)

		session := api.Group("", h.sessionMiddleware)
		{
			session.DELETE("/sessions", h.closeSession)
			h.registerFormRoutes(session)
		}
	}
}

func (h *Handler) registerFormRoutes(api *gin.RouterGroup) {
	form := api.Group("/form")
	{
		form.GET("", h.getForm)
		// Body example: {"name":"홍길동","menu":"김치찌개"}
		form.PATCH("", h.updateForm)
		form.POST("/submit", h.submitForm)
	}
}
