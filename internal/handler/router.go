package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"keyless-sync/internal/handler/api"
	"keyless-sync/internal/handler/middleware"
	"keyless-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, accessCodeHandler *api.AccessCodeHandler, internalAuth *middleware.InternalAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, accessCodeHandler, internalAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, accessCodeHandler *api.AccessCodeHandler, internalAuth *middleware.InternalAuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(internalAuth.RequireInternalToken())
	{
		codes := apiGroup.Group("/access-codes")
		{
			addRoutes(codes, []route{
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: accessCodeHandler.GetReservationCode},
				{Method: http.MethodGet, Path: "/series/:id", Handler: accessCodeHandler.GetSeriesCode},
				{Method: http.MethodPost, Path: "/reservations/:id/rotate", Handler: accessCodeHandler.RotateReservation},
				{Method: http.MethodPost, Path: "/series/:id/rotate", Handler: accessCodeHandler.RotateSeries},
				{Method: http.MethodPost, Path: "/seasonal-bookings/:id/rotate", Handler: accessCodeHandler.RotateSection},
			})
		}

		sync := apiGroup.Group("/sync")
		{
			addRoutes(sync, []route{
				{Method: http.MethodPost, Path: "/reservations/:id", Handler: accessCodeHandler.SyncReservation},
				{Method: http.MethodPost, Path: "/series/:id", Handler: accessCodeHandler.SyncSeries},
				{Method: http.MethodPost, Path: "/seasonal-bookings/:id", Handler: accessCodeHandler.SyncSection},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
