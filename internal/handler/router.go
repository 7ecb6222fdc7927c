package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
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
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.ItemRequestHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, itemHandler, bookingHandler, requestHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.ItemRequestHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	identity := middleware.RequireUserID()

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.CreateUser},
			{Method: http.MethodGet, Path: "", Handler: userHandler.ListUsers},
			{Method: http.MethodGet, Path: "/:id", Handler: userHandler.GetUser},
			{Method: http.MethodPatch, Path: "/:id", Handler: userHandler.UpdateUser},
			{Method: http.MethodDelete, Path: "/:id", Handler: userHandler.DeleteUser},
		})
	}

	items := engine.Group("/items")
	{
		// Deletion stays open; every other item route acts on behalf of a user.
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: itemHandler.CreateItem, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "", Handler: itemHandler.ListOwnerItems, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "/search", Handler: itemHandler.SearchItems, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.GetItem, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodPatch, Path: "/:id", Handler: itemHandler.UpdateItem, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodDelete, Path: "/:id", Handler: itemHandler.DeleteItem},
			{Method: http.MethodPost, Path: "/:id/comment", Handler: itemHandler.AddComment, Mw: []gin.HandlerFunc{identity}},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(identity)
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookerBookings},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListOwnerBookings},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.ResolveBooking},
		})
	}

	requests := engine.Group("/requests")
	{
		// Single-request reads stay open to support deep links from listings.
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.GetUserRequests, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "/all", Handler: requestHandler.GetAllRequests, Mw: []gin.HandlerFunc{identity}},
			{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
		})
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
