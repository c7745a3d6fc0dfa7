package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"tablebook/internal/domain/schedule"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
	hours               schedule.OperatingHours
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries, cfg config.RestaurantConfig) (*AvailabilityHandler, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	hours, err := schedule.NewOperatingHours(cfg.OpenHour, cfg.CloseHour, location)
	if err != nil {
		return nil, err
	}
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
		hours:               hours,
	}, nil
}

// @Summary Check availability
// @Description Check whether a time window is bookable; proposes alternatives when it is not
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Requested window"
// @Success 200 {object} resdto.CheckAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /availability/check [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: "Invalid request body"})
		return
	}

	req, err := reqdto.DecodeCheckAvailability(body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: "Invalid request format"})
		return
	}

	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: err.Error()})
		return
	}

	start, end, err := req.Times()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: err.Error()})
		return
	}

	verdict, err := h.availabilityQueries.Check(c.Request.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.Response{Error: "start_date_time must be before end_date_time"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.Response{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerdict(verdict, h.hours, start))
}
