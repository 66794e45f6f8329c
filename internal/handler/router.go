package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/api"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Parking     *api.ParkingHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Promotion   *api.PromotionHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter middleware.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter middleware.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{middleware.RateLimitByIP(loginLimiter)}},
				{Method: http.MethodGet, Path: "/:provider/login", Handler: h.Auth.ProviderLogin},
				{Method: http.MethodGet, Path: "/:provider/callback", Handler: h.Auth.ProviderCallback},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/", Handler: h.User.Create},
				{Method: http.MethodGet, Path: "/", Handler: h.User.List, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		parkings := apiGroup.Group("/parkings")
		{
			addRoutes(parkings, []route{
				{Method: http.MethodGet, Path: "/", Handler: h.Parking.List},
				{Method: http.MethodGet, Path: "/search", Handler: h.Parking.Search},
				{Method: http.MethodGet, Path: "/owner/:owner_id", Handler: h.Parking.ListByOwner, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/", Handler: h.Parking.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Parking.Get, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Parking.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Parking.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/adjust-available", Handler: h.Parking.AdjustAvailable, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/", Handler: h.Reservation.List},
				{Method: http.MethodPost, Path: "/", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/estimate", Handler: h.Reservation.Estimate},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/", Handler: h.Payment.List},
				{Method: http.MethodPost, Path: "/", Handler: h.Payment.Create},
				{Method: http.MethodPost, Path: "/pay-reservation/:id", Handler: h.Payment.PayReservation},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Payment.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Payment.Delete},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/by-parking/:id", Handler: h.Promotion.ListByParking},
				{Method: http.MethodGet, Path: "/", Handler: h.Promotion.List, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/", Handler: h.Promotion.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleOwner))
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Report.Summary},
				{Method: http.MethodGet, Path: "/revenue-by-parking", Handler: h.Report.RevenueByParking},
				{Method: http.MethodGet, Path: "/reservations-by-day", Handler: h.Report.ReservationsByDay},
				{Method: http.MethodGet, Path: "/stats-by-district", Handler: h.Report.StatsByDistrict},
				{Method: http.MethodGet, Path: "/best-parkings", Handler: h.Report.BestParkings},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:  "ok",
		Message: "Service is healthy",
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
