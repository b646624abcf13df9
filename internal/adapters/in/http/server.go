// Package http is the inbound HTTP adapter. It exposes the application's
// commands and queries as a JSON API on echo and owns request decoding,
// response encoding, and error translation.
package http

import (
	"net/http"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	db *gorm.DB

	// Command handlers
	signUpHandler              commands.SignUpCommandHandler
	loginHandler               commands.LoginCommandHandler
	deactivateUserHandler      commands.DeactivateUserCommandHandler
	createWarehouseHandler     commands.CreateWarehouseCommandHandler
	deactivateWarehouseHandler commands.DeactivateWarehouseCommandHandler
	createAgentHandler         commands.CreateAgentCommandHandler
	checkInAgentHandler        commands.CheckInAgentCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	allocateOrdersHandler      *commands.AllocateOrdersCommandHandler

	// Query handlers
	getWarehousesHandler      queries.GetWarehousesQueryHandler
	getCheckedInAgentsHandler queries.GetCheckedInAgentsQueryHandler
	getAssignmentsHandler     queries.GetAssignmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The allocation handler is shared so its run lock spans the API
// and the scheduler.
func NewServer(
	db *gorm.DB,
	signUpHandler commands.SignUpCommandHandler,
	loginHandler commands.LoginCommandHandler,
	deactivateUserHandler commands.DeactivateUserCommandHandler,
	createWarehouseHandler commands.CreateWarehouseCommandHandler,
	deactivateWarehouseHandler commands.DeactivateWarehouseCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	checkInAgentHandler commands.CheckInAgentCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	allocateOrdersHandler *commands.AllocateOrdersCommandHandler,
	getWarehousesHandler queries.GetWarehousesQueryHandler,
	getCheckedInAgentsHandler queries.GetCheckedInAgentsQueryHandler,
	getAssignmentsHandler queries.GetAssignmentsQueryHandler,
) *Server {
	return &Server{
		db:                         db,
		signUpHandler:              signUpHandler,
		loginHandler:               loginHandler,
		deactivateUserHandler:      deactivateUserHandler,
		createWarehouseHandler:     createWarehouseHandler,
		deactivateWarehouseHandler: deactivateWarehouseHandler,
		createAgentHandler:         createAgentHandler,
		checkInAgentHandler:        checkInAgentHandler,
		createOrderHandler:         createOrderHandler,
		allocateOrdersHandler:      allocateOrdersHandler,
		getWarehousesHandler:       getWarehousesHandler,
		getCheckedInAgentsHandler:  getCheckedInAgentsHandler,
		getAssignmentsHandler:      getAssignmentsHandler,
	}
}

// NewRouter builds the echo instance with the standard middleware chain.
// Rate limiting is per client IP with the configured requests-per-minute
// budget.
func NewRouter(allowedOrigins []string, ratePerMinute int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(ratePerMinute) / 60.0),
			Burst: ratePerMinute,
		}),
	}))

	return e
}

// RegisterRoutes mounts all API routes. Sign-up, login, and the health probe
// are public; everything else requires a valid access token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/signup", s.SignUp)
	v1.POST("/auth/login", s.Login)

	protected := v1.Group("", auth.Require)
	protected.DELETE("/users/:id", s.DeactivateUser)

	protected.POST("/warehouses", s.CreateWarehouse)
	protected.GET("/warehouses", s.GetWarehouses)
	protected.DELETE("/warehouses/:id", s.DeactivateWarehouse)

	protected.POST("/agents", s.CreateAgent)
	protected.POST("/agents/:id/check-in", s.CheckInAgent)
	protected.GET("/agents/checked-in", s.GetCheckedInAgents)

	protected.POST("/orders", s.CreateOrder)
	protected.POST("/orders/allocate", s.AllocateOrders)

	protected.GET("/assignments", s.GetAssignments)
}

// Health handles GET /health for load balancer probes. The probe fails when
// the database connection is gone, so a wedged instance gets rotated out.
func (s *Server) Health(ctx echo.Context) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request().Context())
	}
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
