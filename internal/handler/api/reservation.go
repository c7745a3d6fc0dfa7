package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Book reservation
// @Description Persist a reservation for a confirmed-available slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookReservationRequest true "Booking request"
// @Success 200 {object} resdto.BookReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Message: "Invalid request body"})
		return
	}

	req, err := reqdto.DecodeBookReservation(body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Message: "Invalid request format"})
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing required fields"), httperr.Response{
			Message: "Missing required fields",
			Fields:  missing,
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{
			Message: "Invalid reservation request",
			Error:   err.Error(),
		})
		return
	}

	view, err := h.reservationCommands.Book(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{
				Message: "Invalid reservation request",
				Error:   err.Error(),
			})
		case errors.Is(err, commands.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.Response{Message: "Time slot is no longer available"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Response{
				Message: "Failed to book reservation",
				Error:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookReservationResponse{
		Message:     "Reservation booked successfully",
		Reservation: resdto.FromReservationView(view),
	})
}

// @Summary List reservations
// @Description All reservations, newest first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Response{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: "Invalid reservation ID format"})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.Response{Error: "Reservation not found"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Response{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Delete a reservation and notify feed subscribers
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: "Invalid reservation ID format"})
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.Response{Error: "Reservation not found"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Response{Error: "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
