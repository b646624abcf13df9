package http

import (
	"net/http"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/queries"
	"github.com/Vaibhav-crux/delivery-management-system/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// dateLayout is the wire format for run dates, both in bodies and query
// parameters.
const dateLayout = "2006-01-02"

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type CreateWarehouseRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type WarehouseResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateAgentRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	WarehouseID string `json:"warehouseId"`
}

type CheckedInAgentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	WarehouseName string    `json:"warehouseName"`
	LastCheckIn   time.Time `json:"lastCheckIn"`
}

type CreateOrderRequest struct {
	WarehouseID  string  `json:"warehouseId"`
	CustomerName string  `json:"customerName"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type AllocateOrdersRequest struct {
	Date *openapi_types.Date `json:"date,omitempty"`
}

type AssignmentSummaryResponse struct {
	AssignmentID        string  `json:"assignmentId"`
	OrderID             string  `json:"orderId"`
	AgentID             string  `json:"agentId"`
	AgentName           string  `json:"agentName"`
	WarehouseName       string  `json:"warehouseName"`
	CustomerName        string  `json:"customerName"`
	TravelDistanceKm    float64 `json:"travelDistanceKm"`
	DeliveryTimeMinutes float64 `json:"deliveryTimeMinutes"`
}

type AllocationReportResponse struct {
	Message            string                      `json:"message"`
	AssignmentsCreated int                         `json:"assignmentsCreated"`
	DeferredCount      int                         `json:"deferredCount"`
	RequeuedCount      int                         `json:"requeuedCount"`
	TotalCost          float64                     `json:"totalCost"`
	Assignments        []AssignmentSummaryResponse `json:"assignments"`
}

type AssignmentResponse struct {
	ID                  string             `json:"id"`
	Date                openapi_types.Date `json:"date"`
	AgentName           string             `json:"agentName"`
	CustomerName        string             `json:"customerName"`
	WarehouseName       string             `json:"warehouseName"`
	TravelDistanceKm    float64            `json:"travelDistanceKm"`
	DeliveryTimeMinutes float64            `json:"deliveryTimeMinutes"`
	Status              string             `json:"status"`
}

// SignUp handles POST /api/v1/auth/signup.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSignUpCommand(req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.signUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// DeactivateUser handles DELETE /api/v1/users/:id.
func (s *Server) DeactivateUser(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewDeactivateUserCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deactivateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req CreateWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(req.Name, req.Latitude, req.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// GetWarehouses handles GET /api/v1/warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	query := queries.NewGetWarehousesQuery()

	warehouses, err := s.getWarehousesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WarehouseResponse, len(warehouses))
	for i, w := range warehouses {
		response[i] = WarehouseResponse{
			ID:        w.ID.String(),
			Name:      w.Name,
			Latitude:  w.Latitude,
			Longitude: w.Longitude,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeactivateWarehouse handles DELETE /api/v1/warehouses/:id.
func (s *Server) DeactivateWarehouse(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid warehouse id")
	}

	cmd, err := commands.NewDeactivateWarehouseCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deactivateWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAgent handles POST /api/v1/agents.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return respondBadRequest(ctx, "invalid warehouse id")
	}

	cmd, err := commands.NewCreateAgentCommand(req.Name, req.Phone, warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// CheckInAgent handles POST /api/v1/agents/:id/check-in. The check-in time
// is the server's clock, not client supplied.
func (s *Server) CheckInAgent(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid agent id")
	}

	cmd, err := commands.NewCheckInAgentCommand(id, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.checkInAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCheckedInAgents handles GET /api/v1/agents/checked-in.
func (s *Server) GetCheckedInAgents(ctx echo.Context) error {
	query := queries.NewGetCheckedInAgentsQuery()

	agents, err := s.getCheckedInAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CheckedInAgentResponse, len(agents))
	for i, a := range agents {
		response[i] = CheckedInAgentResponse{
			ID:            a.ID.String(),
			Name:          a.Name,
			Phone:         a.Phone,
			WarehouseName: a.WarehouseName,
			LastCheckIn:   a.LastCheckIn,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return respondBadRequest(ctx, "invalid warehouse id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		warehouseID,
		req.CustomerName,
		req.Address,
		req.Latitude,
		req.Longitude,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// AllocateOrders handles POST /api/v1/orders/allocate. The run date defaults
// to today when the body omits it.
func (s *Server) AllocateOrders(ctx echo.Context) error {
	var req AllocateOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	runDate := time.Now().UTC()
	if req.Date != nil {
		runDate = req.Date.Time
	}

	cmd, err := commands.NewAllocateOrdersCommand(runDate)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.allocateOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAllocationReportResponse(report))
}

// GetAssignments handles GET /api/v1/assignments with an optional
// date=YYYY-MM-DD filter.
func (s *Server) GetAssignments(ctx echo.Context) error {
	var date *time.Time
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return respondBadRequest(ctx, "date must be formatted as YYYY-MM-DD")
		}
		date = &parsed
	}

	query := queries.NewGetAssignmentsQuery(date)

	assignments, err := s.getAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		response[i] = AssignmentResponse{
			ID:                  a.ID.String(),
			Date:                openapi_types.Date{Time: a.Date},
			AgentName:           a.AgentName,
			CustomerName:        a.CustomerName,
			WarehouseName:       a.WarehouseName,
			TravelDistanceKm:    a.TravelDistanceKm,
			DeliveryTimeMinutes: a.DeliveryTimeMinutes,
			Status:              a.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toAllocationReportResponse(report *commands.AllocationReport) AllocationReportResponse {
	assignments := make([]AssignmentSummaryResponse, len(report.Assignments))
	for i, a := range report.Assignments {
		assignments[i] = AssignmentSummaryResponse{
			AssignmentID:        a.AssignmentID.String(),
			OrderID:             a.OrderID.String(),
			AgentID:             a.AgentID.String(),
			AgentName:           a.AgentName,
			WarehouseName:       a.WarehouseName,
			CustomerName:        a.CustomerName,
			TravelDistanceKm:    a.TravelDistanceKm,
			DeliveryTimeMinutes: a.DeliveryTimeMinutes,
		}
	}

	return AllocationReportResponse{
		Message:            report.Message,
		AssignmentsCreated: report.AssignmentsCreated,
		DeferredCount:      report.DeferredCount,
		RequeuedCount:      report.RequeuedCount,
		TotalCost:          report.TotalCost,
		Assignments:        assignments,
	}
}
