// Package http exposes the route lifecycle engine over a REST API.
// It coordinates between HTTP handlers and application use cases and maps
// the domain error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"careplan/internal/core/application/usecases/commands"
	"careplan/internal/core/application/usecases/queries"
	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the identity every mutating call is attributed to.
// Authorization itself is an upstream concern; the engine only records who.
const actorHeader = "X-Actor-Id"

// Server implements the HTTP handlers for the route lifecycle API.
type Server struct {
	// Command handlers
	createRouteHandler   commands.CreateRouteCommandHandler
	updateRouteHandler   commands.UpdateRouteCommandHandler
	activateRouteHandler commands.ActivateRouteCommandHandler
	completeRouteHandler commands.CompleteRouteCommandHandler
	pauseRouteHandler    commands.PauseRouteCommandHandler
	resumeRouteHandler   commands.ResumeRouteCommandHandler
	archiveRouteHandler  commands.ArchiveRouteCommandHandler
	addGoalHandler       commands.AddRouteGoalCommandHandler
	addPhaseHandler      commands.AddRoutePhaseCommandHandler

	// Query handlers
	getHistoryHandler       queries.GetRouteHistoryQueryHandler
	getRoutesByChildHandler queries.GetRoutesByChildQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRouteHandler commands.CreateRouteCommandHandler,
	updateRouteHandler commands.UpdateRouteCommandHandler,
	activateRouteHandler commands.ActivateRouteCommandHandler,
	completeRouteHandler commands.CompleteRouteCommandHandler,
	pauseRouteHandler commands.PauseRouteCommandHandler,
	resumeRouteHandler commands.ResumeRouteCommandHandler,
	archiveRouteHandler commands.ArchiveRouteCommandHandler,
	addGoalHandler commands.AddRouteGoalCommandHandler,
	addPhaseHandler commands.AddRoutePhaseCommandHandler,
	getHistoryHandler queries.GetRouteHistoryQueryHandler,
	getRoutesByChildHandler queries.GetRoutesByChildQueryHandler,
) *Server {
	return &Server{
		createRouteHandler:      createRouteHandler,
		updateRouteHandler:      updateRouteHandler,
		activateRouteHandler:    activateRouteHandler,
		completeRouteHandler:    completeRouteHandler,
		pauseRouteHandler:       pauseRouteHandler,
		resumeRouteHandler:      resumeRouteHandler,
		archiveRouteHandler:     archiveRouteHandler,
		addGoalHandler:          addGoalHandler,
		addPhaseHandler:         addPhaseHandler,
		getHistoryHandler:       getHistoryHandler,
		getRoutesByChildHandler: getRoutesByChildHandler,
	}
}

// RegisterRoutes wires the server's handlers into an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.GetRoutesByChild)
	api.PATCH("/routes/:routeId", s.UpdateRoute)
	api.POST("/routes/:routeId/activate", s.ActivateRoute)
	api.POST("/routes/:routeId/complete", s.CompleteRoute)
	api.POST("/routes/:routeId/pause", s.PauseRoute)
	api.POST("/routes/:routeId/resume", s.ResumeRoute)
	api.POST("/routes/:routeId/archive", s.ArchiveRoute)
	api.POST("/routes/:routeId/goals", s.AddRouteGoal)
	api.POST("/routes/:routeId/phases", s.AddRoutePhase)
	api.GET("/routes/:routeId/history", s.GetRouteHistory)
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateRouteRequest is the body of POST /api/v1/routes.
type CreateRouteRequest struct {
	ChildID          string  `json:"childId"`
	LeadSpecialistID string  `json:"leadSpecialistId"`
	TemplateID       *string `json:"templateId,omitempty"`
	Title            string  `json:"title"`
	Summary          string  `json:"summary,omitempty"`
	PlanHorizonWeeks int     `json:"planHorizonWeeks,omitempty"`
}

// CreateRouteResponse returns the identifier of the new draft route.
type CreateRouteResponse struct {
	ID string `json:"id"`
}

// UpdateRouteRequest is the body of PATCH /api/v1/routes/:routeId.
// Absent fields are left untouched.
type UpdateRouteRequest struct {
	Title            *string `json:"title,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	PlanHorizonWeeks *int    `json:"planHorizonWeeks,omitempty"`
	LeadSpecialistID *string `json:"leadSpecialistId,omitempty"`
}

// TransitionRequest is the optional body of the lifecycle transition endpoints.
type TransitionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AddItemRequest is the body of the goal and phase addition endpoints.
type AddItemRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// RouteResponse represents a route in API replies.
type RouteResponse struct {
	ID               string     `json:"id"`
	ChildID          string     `json:"childId"`
	LeadSpecialistID string     `json:"leadSpecialistId"`
	TemplateID       *string    `json:"templateId,omitempty"`
	Title            string     `json:"title"`
	Summary          string     `json:"summary,omitempty"`
	Status           string     `json:"status"`
	PlanHorizonWeeks int        `json:"planHorizonWeeks,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	GoalCount        int        `json:"goalCount"`
	PhaseCount       int        `json:"phaseCount"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// RevisionResponse represents one history entry in API replies.
type RevisionResponse struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	Kind      string    `json:"kind"`
	Changes   any       `json:"changes,omitempty"`
	Snapshot  any       `json:"snapshot,omitempty"`
	ActorID   string    `json:"actorId"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRoute handles POST /api/v1/routes - creates a new draft route.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var request CreateRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	childID, err := kernel.UUIDFromString(request.ChildID)
	if err != nil {
		return badRequest(ctx, "childId must be a valid UUID")
	}
	leadSpecialistID, err := kernel.UUIDFromString(request.LeadSpecialistID)
	if err != nil {
		return badRequest(ctx, "leadSpecialistId must be a valid UUID")
	}

	var templateID *kernel.UUID
	if request.TemplateID != nil {
		tID, templateErr := kernel.UUIDFromString(*request.TemplateID)
		if templateErr != nil {
			return badRequest(ctx, "templateId must be a valid UUID")
		}
		templateID = &tID
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(
		routeID, childID, leadSpecialistID, actorID, templateID,
		request.Title, request.Summary, request.PlanHorizonWeeks,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{ID: routeID.String()})
}

// UpdateRoute handles PATCH /api/v1/routes/:routeId - partial field update.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	routeID, actorID, err := routeAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request UpdateRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch, err := request.toPatch()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateRouteCommand(routeID, actorID, patch)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	snapshot := updated.Snapshot()
	return ctx.JSON(http.StatusOK, RouteResponse{
		ID:               snapshot.ID,
		ChildID:          snapshot.ChildID,
		LeadSpecialistID: snapshot.LeadSpecialistID,
		TemplateID:       snapshot.TemplateID,
		Title:            snapshot.Title,
		Summary:          snapshot.Summary,
		Status:           snapshot.Status,
		PlanHorizonWeeks: snapshot.PlanHorizonWeeks,
		StartDate:        snapshot.StartDate,
		EndDate:          snapshot.EndDate,
		GoalCount:        snapshot.GoalCount,
		PhaseCount:       snapshot.PhaseCount,
		CreatedAt:        updated.CreatedAt(),
	})
}

func (r UpdateRouteRequest) toPatch() (route.UpdatePatch, error) {
	patch := route.UpdatePatch{
		Title:            r.Title,
		Summary:          r.Summary,
		PlanHorizonWeeks: r.PlanHorizonWeeks,
	}

	if r.LeadSpecialistID != nil {
		id, err := kernel.UUIDFromString(*r.LeadSpecialistID)
		if err != nil {
			return route.UpdatePatch{}, errors.New("leadSpecialistId must be a valid UUID")
		}
		patch.LeadSpecialistID = &id
	}

	return patch, nil
}

// ActivateRoute handles POST /api/v1/routes/:routeId/activate.
func (s *Server) ActivateRoute(ctx echo.Context) error {
	return s.transition(ctx, func(routeID, actorID kernel.UUID, reason string) error {
		cmd, err := commands.NewActivateRouteCommand(routeID, actorID, reason)
		if err != nil {
			return err
		}
		return s.activateRouteHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteRoute handles POST /api/v1/routes/:routeId/complete.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	return s.transition(ctx, func(routeID, actorID kernel.UUID, reason string) error {
		cmd, err := commands.NewCompleteRouteCommand(routeID, actorID, reason)
		if err != nil {
			return err
		}
		return s.completeRouteHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// PauseRoute handles POST /api/v1/routes/:routeId/pause.
func (s *Server) PauseRoute(ctx echo.Context) error {
	return s.transition(ctx, func(routeID, actorID kernel.UUID, reason string) error {
		cmd, err := commands.NewPauseRouteCommand(routeID, actorID, reason)
		if err != nil {
			return err
		}
		return s.pauseRouteHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ResumeRoute handles POST /api/v1/routes/:routeId/resume.
func (s *Server) ResumeRoute(ctx echo.Context) error {
	return s.transition(ctx, func(routeID, actorID kernel.UUID, reason string) error {
		cmd, err := commands.NewResumeRouteCommand(routeID, actorID, reason)
		if err != nil {
			return err
		}
		return s.resumeRouteHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ArchiveRoute handles POST /api/v1/routes/:routeId/archive.
func (s *Server) ArchiveRoute(ctx echo.Context) error {
	return s.transition(ctx, func(routeID, actorID kernel.UUID, reason string) error {
		cmd, err := commands.NewArchiveRouteCommand(routeID, actorID, reason)
		if err != nil {
			return err
		}
		return s.archiveRouteHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) transition(ctx echo.Context, run func(routeID, actorID kernel.UUID, reason string) error) error {
	routeID, actorID, err := routeAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request TransitionRequest
	if ctx.Request().ContentLength > 0 {
		if err = ctx.Bind(&request); err != nil {
			return badRequest(ctx, "invalid request body")
		}
	}

	if err = run(routeID, actorID, request.Reason); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddRouteGoal handles POST /api/v1/routes/:routeId/goals.
func (s *Server) AddRouteGoal(ctx echo.Context) error {
	routeID, actorID, err := routeAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	goalID := kernel.NewUUID()
	cmd, err := commands.NewAddRouteGoalCommand(routeID, goalID, actorID, request.Title, request.Position)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.addGoalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{ID: goalID.String()})
}

// AddRoutePhase handles POST /api/v1/routes/:routeId/phases.
func (s *Server) AddRoutePhase(ctx echo.Context) error {
	routeID, actorID, err := routeAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	phaseID := kernel.NewUUID()
	cmd, err := commands.NewAddRoutePhaseCommand(routeID, phaseID, actorID, request.Title, request.Position)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.addPhaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{ID: phaseID.String()})
}

// GetRouteHistory handles GET /api/v1/routes/:routeId/history.
func (s *Server) GetRouteHistory(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, "routeId must be a valid UUID")
	}

	query, err := queries.NewGetRouteHistoryQuery(routeID)
	if err != nil {
		return domainError(ctx, err)
	}

	history, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RevisionResponse, 0, len(history))
	for _, rev := range history {
		item := RevisionResponse{
			ID:        rev.ID.String(),
			Version:   rev.Version,
			Kind:      string(rev.Payload.Kind),
			ActorID:   rev.ActorID.String(),
			Reason:    rev.Reason,
			CreatedAt: rev.CreatedAt,
		}
		if len(rev.Payload.Changes) > 0 {
			item.Changes = rev.Payload.Changes
		}
		if rev.Payload.Snapshot != nil {
			item.Snapshot = rev.Payload.Snapshot
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoutesByChild handles GET /api/v1/routes?childId=... - lists a child's routes.
func (s *Server) GetRoutesByChild(ctx echo.Context) error {
	childID, err := kernel.UUIDFromString(ctx.QueryParam("childId"))
	if err != nil {
		return badRequest(ctx, "childId must be a valid UUID")
	}

	query, err := queries.NewGetRoutesByChildQuery(childID)
	if err != nil {
		return domainError(ctx, err)
	}

	routes, err := s.getRoutesByChildHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		response = append(response, RouteResponse{
			ID:               r.ID.String(),
			ChildID:          childID.String(),
			LeadSpecialistID: r.LeadSpecialistID.String(),
			Title:            r.Title,
			Status:           r.Status,
			PlanHorizonWeeks: r.PlanHorizonWeeks,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
			GoalCount:        r.GoalCount,
			PhaseCount:       r.PhaseCount,
			CreatedAt:        r.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func routeAndActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("routeId must be a valid UUID")
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return routeID, actorID, nil
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorHeader))
	if err != nil {
		return kernel.UUID{}, errors.New(actorHeader + " header must carry the caller's UUID")
	}

	return actorID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the domain error taxonomy onto HTTP status codes.
// Validation failures are 400, missing aggregates 404, invariant conflicts
// 409, illegal transitions 422, anything else 500.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
