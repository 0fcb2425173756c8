package maintenance

import (
	"net/http"

	"casa/infras/otel"
	"casa/internal/domains/maintenance/model/dto"
	"casa/internal/domains/maintenance/service"
	"casa/shared/constant"
	"casa/shared/validator"
	"casa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamPropertyID = "property_id"

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Patch("/{id}", handler.UpdateTask)
	})
}

// CreateTask handles the creation of a new maintenance task.
// @Summary Create a new maintenance task
// @Description Create a maintenance task for an existing property.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} dto.TaskResponse "Task created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [post]
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance task")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance task created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTasks retrieves all maintenance tasks, optionally filtered by property.
// @Summary Get all maintenance tasks
// @Description Retrieve all maintenance tasks, optionally filtered by property.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param property_id query string false "Filter by property"
// @Success 200 {object} dto.GetTasksResponse "List of maintenance tasks"
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [get]
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	var (
		res dto.GetTasksResponse
		err error
	)

	if propertyID := r.URL.Query().Get(queryParamPropertyID); propertyID != constant.Empty {
		res, err = handler.service.GetAllByProperty(ctx, propertyID)
	} else {
		res, err = handler.service.GetAll(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetTaskByID retrieves a maintenance task by its ID.
// @Summary Get a maintenance task by ID
// @Description Retrieve a maintenance task by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse "Task details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [get]
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance task by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance task retrieved successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask updates an existing maintenance task by its ID.
// @Summary Update a maintenance task by ID
// @Description Partially update a maintenance task. Omitted fields keep their value.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} dto.TaskResponse "Task updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [patch]
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaskRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance task updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
