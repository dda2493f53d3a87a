package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"postify/internal/handler/api"
	"postify/internal/handler/middleware"
	"postify/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	subscriberHandler *api.SubscriberHandler,
	holidayHandler *api.HolidayHandler,
	postHandler *api.PostHandler,
	distributionHandler *api.DistributionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, subscriberHandler, holidayHandler, postHandler, distributionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	subscriberHandler *api.SubscriberHandler,
	holidayHandler *api.HolidayHandler,
	postHandler *api.PostHandler,
	distributionHandler *api.DistributionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		requireAuth := authMiddleware.RequireAuth()

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: userHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: userHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: userHandler.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: userHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/distribute", Handler: distributionHandler.DistributeToUsers, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/distribution-status/:job_id", Handler: distributionHandler.Status},
			})
		}

		subscribers := apiGroup.Group("/subscribers")
		{
			addRoutes(subscribers, []route{
				{Method: http.MethodGet, Path: "", Handler: subscriberHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: subscriberHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: subscriberHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: subscriberHandler.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: subscriberHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/distribute", Handler: distributionHandler.DistributeToSubscribers, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/distribution-status/:job_id", Handler: distributionHandler.Status},
			})
		}

		holidays := apiGroup.Group("/holidays")
		{
			addRoutes(holidays, []route{
				{Method: http.MethodGet, Path: "", Handler: holidayHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: holidayHandler.Get},
				{Method: http.MethodGet, Path: "/date/:date", Handler: holidayHandler.GetByDate},
				{Method: http.MethodPost, Path: "", Handler: holidayHandler.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: holidayHandler.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: holidayHandler.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		posts := apiGroup.Group("/posts")
		{
			addRoutes(posts, []route{
				{Method: http.MethodPost, Path: "/generate", Handler: postHandler.Generate, Mw: []gin.HandlerFunc{requireAuth}},
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
