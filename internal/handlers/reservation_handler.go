package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-booker/internal/dto"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/httpresp"
	"github.com/BruksfildServices01/slot-booker/internal/timezone"
	ucReservation "github.com/BruksfildServices01/slot-booker/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC       *ucReservation.CreateReservation
	cancelUC       *ucReservation.CancelReservation
	getUC          *ucReservation.GetReservation
	listByClientUC *ucReservation.ListClientReservations
	availabilityUC *ucReservation.GetAvailability
	tz             string
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	getUC *ucReservation.GetReservation,
	listByClientUC *ucReservation.ListClientReservations,
	availabilityUC *ucReservation.GetAvailability,
	tz string,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		getUC:          getUC,
		listByClientUC: listByClientUC,
		availabilityUC: availabilityUC,
		tz:             tz,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) ListAvailableSlots(c *gin.Context) {
	start, end, err := windowFromQuery(c, h.tz)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromSlots(slots))
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "invalid client_id.")
		return
	}

	start, err := timezone.ParseInstant(req.Slot.Start)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	end, err := timezone.ParseInstant(req.Slot.End)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Actor:    actor(c),
		ClientID: clientID,
		Start:    start,
		End:      end,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromReservation(r))
}

// ======================================================
// GET
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	r, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromReservation(r))
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), actor(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LIST BY CLIENT
// ======================================================

func (h *ReservationHandler) ListByClient(c *gin.Context) {
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listByClientUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromReservations(list))
}
