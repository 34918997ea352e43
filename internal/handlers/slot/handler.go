package slot

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/slot/model/dto"
	"atrium/internal/domains/slot/service"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Slot
	otel    otel.Otel
}

func New(service service.Slot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSlots)
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// CreateSlots generates bookable slots for a room.
// @Summary Create slots
// @Description Carve a time window into fixed-duration bookable slots for a room.
// @Tags Slot
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotsRequest true "Create Slots Request"
// @Success 201 {object} response.Data[dto.GetSlotsResponse] "Slots created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots [post]
// @Security BearerAuth
func (handler *Handler) CreateSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlots")
	defer scope.End()

	req := dto.CreateSlotsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create slots")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Slots created successfully")

	response.WithJSON(writer, http.StatusCreated, slots)
}

// GetAvailability lists free slots for a room on a date.
// @Summary Get slot availability
// @Description Retrieve the free slots of a room, optionally narrowed to one date.
// @Tags Slot
// @Accept json
// @Produce json
// @Param roomId query string true "Room ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSlotsResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	roomID := r.URL.Query().Get(constant.RequestParamRoomID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	if roomID == constant.Empty {
		err := failure.BadRequestFromString("roomId query parameter is required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	slots, err := handler.service.GetAvailability(ctx, roomID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
