package expense

import (
	"net/http"
	"time"

	"casa/infras/otel"
	"casa/internal/domains/expense/model/dto"
	"casa/internal/domains/expense/service"
	"casa/shared/constant"
	"casa/shared/failure"
	"casa/shared/timezone"
	"casa/shared/validator"
	"casa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamStart      = "start"
	queryParamEnd        = "end"
	queryParamPropertyID = "property_id"
)

type Handler struct {
	service service.Expense
	otel    otel.Otel
}

func New(service service.Expense, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/expenses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExpense)
		routerGroup.Get("/", handler.GetExpenses)
		routerGroup.Get("/{id}", handler.GetExpenseByID)
	})
}

// CreateExpense handles the creation of a new expense.
// @Summary Create a new expense
// @Description Record an expense against an existing property.
// @Tags Expense
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Create Expense Request"
// @Success 201 {object} dto.ExpenseResponse "Expense created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [post]
func (handler *Handler) CreateExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	req := dto.CreateExpenseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create expense")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Expense created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetExpenses retrieves all expenses, optionally filtered.
// @Summary Get all expenses
// @Description Retrieve all expenses, optionally filtered by property or by an inclusive date range.
// @Tags Expense
// @Accept json
// @Produce json
// @Param property_id query string false "Filter by property"
// @Param start query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.GetExpensesResponse "List of expenses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [get]
func (handler *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenses")
	defer scope.End()

	query := r.URL.Query()

	var (
		res dto.GetExpensesResponse
		err error
	)

	switch {
	case query.Get(queryParamStart) != constant.Empty || query.Get(queryParamEnd) != constant.Empty:
		var rangeQuery dto.DateRangeQuery

		rangeQuery, err = parseDateRange(query.Get(queryParamStart), query.Get(queryParamEnd))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse expense date range")

			response.WithError(w, err)

			return
		}

		res, err = handler.service.GetAllByDateRange(ctx, rangeQuery)
	case query.Get(queryParamPropertyID) != constant.Empty:
		res, err = handler.service.GetAllByProperty(ctx, query.Get(queryParamPropertyID))
	default:
		res, err = handler.service.GetAll(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expenses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expenses retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetExpenseByID retrieves an expense by its ID.
// @Summary Get an expense by ID
// @Description Retrieve an expense by its unique identifier.
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse "Expense details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [get]
func (handler *Handler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenseByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	expense, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expense by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expense retrieved successfully")

	response.WithJSON(w, http.StatusOK, expense)
}

func parseDateRange(start, end string) (dto.DateRangeQuery, error) {
	if start == constant.Empty || end == constant.Empty {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("start and end are both required for a date range query")
	}

	startTime, err := parseRangeValue(start)
	if err != nil {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("invalid start date: " + start)
	}

	endTime, err := parseRangeValue(end)
	if err != nil {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("invalid end date: " + end)
	}

	return dto.DateRangeQuery{Start: startTime, End: endTime}, nil
}

func parseRangeValue(value string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.DateFormat, value)
	if err == nil {
		return parsed, nil
	}

	return timezone.Parse(constant.DateOnlyFormat, value)
}
