package http

import (
	"errors"
	"net/http"

	"boxoffice/internal/core/application/usecases/commands"
	"boxoffice/internal/core/application/usecases/queries"
	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the box office over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startSessionHandler  commands.StartSessionCommandHandler
	selectSeatHandler    commands.SelectSeatCommandHandler
	deselectSeatHandler  commands.DeselectSeatCommandHandler
	undoHandler          commands.UndoSelectionCommandHandler
	redoHandler          commands.RedoSelectionCommandHandler
	submitOrderHandler   commands.SubmitOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	requestRefundHandler commands.RequestRefundCommandHandler
	finishCycleHandler   commands.FinishOrderCycleCommandHandler

	// Query handlers
	getSeatMapHandler      queries.GetSeatMapQueryHandler
	getSelectionHandler    queries.GetSelectionQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startSessionHandler commands.StartSessionCommandHandler,
	selectSeatHandler commands.SelectSeatCommandHandler,
	deselectSeatHandler commands.DeselectSeatCommandHandler,
	undoHandler commands.UndoSelectionCommandHandler,
	redoHandler commands.RedoSelectionCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestRefundHandler commands.RequestRefundCommandHandler,
	finishCycleHandler commands.FinishOrderCycleCommandHandler,
	getSeatMapHandler queries.GetSeatMapQueryHandler,
	getSelectionHandler queries.GetSelectionQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
) *Server {
	return &Server{
		startSessionHandler:    startSessionHandler,
		selectSeatHandler:      selectSeatHandler,
		deselectSeatHandler:    deselectSeatHandler,
		undoHandler:            undoHandler,
		redoHandler:            redoHandler,
		submitOrderHandler:     submitOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		requestRefundHandler:   requestRefundHandler,
		finishCycleHandler:     finishCycleHandler,
		getSeatMapHandler:      getSeatMapHandler,
		getSelectionHandler:    getSelectionHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
	}
}

// RegisterRoutes attaches all box office routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/sessions", s.StartSession)
	v1.GET("/seats", s.GetSeatMap)

	v1.GET("/sessions/:sessionId/selection", s.GetSelection)
	v1.POST("/sessions/:sessionId/seats/:seatId", s.SelectSeat)
	v1.DELETE("/sessions/:sessionId/seats/:seatId", s.DeselectSeat)
	v1.POST("/sessions/:sessionId/selection/undo", s.UndoSelection)
	v1.POST("/sessions/:sessionId/selection/redo", s.RedoSelection)

	v1.GET("/sessions/:sessionId/orders", s.GetOrderHistory)
	v1.POST("/sessions/:sessionId/orders", s.SubmitOrder)
	v1.POST("/sessions/:sessionId/orders/cancel", s.CancelOrder)
	v1.POST("/sessions/:sessionId/refunds", s.RequestRefund)
	v1.POST("/sessions/:sessionId/finish", s.FinishOrderCycle)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// StartSession handles POST /api/v1/sessions - opens a new buyer session.
func (s *Server) StartSession(ctx echo.Context) error {
	sessionID := kernel.NewUUID()

	cmd, err := commands.NewStartSessionCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StartSessionResponse{SessionID: sessionID.String()})
}

// GetSeatMap handles GET /api/v1/seats - the full hall with seat statuses.
func (s *Server) GetSeatMap(ctx echo.Context) error {
	query := queries.NewGetSeatMapQuery()

	seats, err := s.getSeatMapHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Seat, len(seats))
	for i, seat := range seats {
		response[i] = Seat{
			SeatID: seat.SeatID,
			Row:    seat.Row,
			Number: seat.Number,
			Status: seat.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSelection handles GET /api/v1/sessions/:sessionId/selection.
func (s *Server) GetSelection(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetSelectionQuery(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	selection, err := s.getSelectionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSelectionResponse(selection))
}

// SelectSeat handles POST /api/v1/sessions/:sessionId/seats/:seatId.
func (s *Server) SelectSeat(ctx echo.Context) error {
	sessionID, seatID, err := pathSeat(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewSelectSeatCommand(sessionID, seatID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.selectSeatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeselectSeat handles DELETE /api/v1/sessions/:sessionId/seats/:seatId.
func (s *Server) DeselectSeat(ctx echo.Context) error {
	sessionID, seatID, err := pathSeat(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeselectSeatCommand(sessionID, seatID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.deselectSeatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UndoSelection handles POST /api/v1/sessions/:sessionId/selection/undo.
func (s *Server) UndoSelection(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewUndoSelectionCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.undoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.respondWithSelection(ctx, sessionID)
}

// RedoSelection handles POST /api/v1/sessions/:sessionId/selection/redo.
func (s *Server) RedoSelection(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewRedoSelectionCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.redoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.respondWithSelection(ctx, sessionID)
}

// SubmitOrder handles POST /api/v1/sessions/:sessionId/orders - builds an
// order from the current selection and runs it through the purchase pipeline.
// The response carries the resulting order, including failures: a declined
// payment is a processed request whose order ended up Failed, not a transport
// error.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body SubmitOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	concessions := make([]order.ConcessionItem, 0, len(body.Concessions))
	for _, item := range body.Concessions {
		concession, err := order.NewConcessionItem(item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, err)
		}
		concessions = append(concessions, concession)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID, body.PaymentMethod, body.Coupon, concessions)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.respondWithSelection(ctx, sessionID)
}

// CancelOrder handles POST /api/v1/sessions/:sessionId/orders/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCancelOrderCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRefund handles POST /api/v1/sessions/:sessionId/refunds. Without a
// body the refund targets the session's current order; with an order_id it
// targets an archived order from the session history.
func (s *Server) RequestRefund(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body RequestRefundRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	var cmd commands.RequestRefundCommand
	if body.OrderID == "" {
		cmd, err = commands.NewRequestRefundCommand(sessionID)
	} else {
		var orderID kernel.UUID
		orderID, err = kernel.UUIDFromString(body.OrderID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, err)
		}
		cmd, err = commands.NewRequestRefundCommandForOrder(sessionID, orderID)
	}
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.requestRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishOrderCycle handles POST /api/v1/sessions/:sessionId/finish - archives
// a completed order and resets the session workspace for the next buyer.
func (s *Server) FinishOrderCycle(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewFinishOrderCycleCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.finishCycleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/sessions/:sessionId/orders.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, summary := range orders {
		response[i] = toOrderResponse(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathSeat(ctx echo.Context) (kernel.UUID, kernel.SeatID, error) {
	sessionID, err := pathUUID(ctx, "sessionId")
	if err != nil {
		return kernel.UUID{}, kernel.SeatID{}, err
	}

	seatID, err := kernel.SeatIDFromString(ctx.Param("seatId"))
	if err != nil {
		return kernel.UUID{}, kernel.SeatID{}, err
	}

	return sessionID, seatID, nil
}

func (s *Server) respondWithSelection(ctx echo.Context, sessionID kernel.UUID) error {
	query, err := queries.NewGetSelectionQuery(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	selection, err := s.getSelectionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSelectionResponse(selection))
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// domainError translates application errors into HTTP responses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrSeatUnknown):
		return errorJSON(ctx, http.StatusNotFound, err)
	case errors.Is(err, commands.ErrSeatAlreadySold),
		errors.Is(err, ports.ErrSeatAlreadyHeld),
		errors.Is(err, session.ErrNoCurrentOrder):
		return errorJSON(ctx, http.StatusConflict, err)
	case errors.Is(err, session.ErrTooManySeats),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, order.ErrOnlyCompletedOrdersRefundable),
		errors.Is(err, order.ErrCashRefundRequiresManualProcess):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err)
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err)
	}
}

func errorJSON(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
