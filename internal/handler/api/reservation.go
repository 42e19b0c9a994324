package api

import (
	"context"
	"net/http"
	"strings"

	"reservation-book/internal/domain/reservation"
	reqdto "reservation-book/internal/handler/dto/request"
	resdto "reservation-book/internal/handler/dto/response"
	"reservation-book/internal/handler/httperr"
	"reservation-book/internal/pkg/config"
	"reservation-book/internal/pkg/errs"
	"reservation-book/internal/usecase/commands"
	"reservation-book/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands  commands.BookingCommands
	queries   queries.ReservationQueries
	presenter resdto.Presenter
	region    string
}

func NewReservationHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries, cfg config.Config) (*ReservationHandler, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return &ReservationHandler{
		commands: bookingCommands,
		queries:  reservationQueries,
		presenter: resdto.Presenter{
			Location: loc,
			Region:   cfg.Booking.PhoneRegion,
		},
		region: cfg.Booking.PhoneRegion,
	}, nil
}

// @Summary Book a table
// @Description Books the smallest open table that seats the party at exactly the requested time
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Booking form"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "No table available"
// @Failure 422 {object} httperr.Response "Form has errors"
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	form := req.ToForm(h.presenter.Location, h.region)

	outcome, err := h.commands.MakeReservation(c.Request.Context(), form)
	if err != nil {
		if errs.Is(err, context.DeadlineExceeded) || errs.Is(err, commands.ErrSlotContended) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "The booking could not be completed, please try again", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	reservation.Match(outcome, reservation.Handlers[struct{}]{
		SuccessfulBooking: func(o reservation.SuccessfulBooking) struct{} {
			c.JSON(http.StatusCreated, resdto.BookingResponse{
				Message:     reservation.ConfirmationMessage(o.Reservation, h.presenter.Location),
				Reservation: h.presenter.FromReservation(o.Reservation),
			})
			return struct{}{}
		},
		NoAvailability: func(o reservation.NoAvailability) struct{} {
			h.reject(c, http.StatusConflict, reservation.NoAvailabilityMessage(o.Form, h.presenter.Location), o.Form, nil)
			return struct{}{}
		},
		FailedValidation: func(o reservation.FailedValidation) struct{} {
			h.reject(c, http.StatusUnprocessableEntity, strings.Join(o.Problems.FullMessages(), "; "), o.Form, o.Problems)
			return struct{}{}
		},
	})
}

func (h *ReservationHandler) reject(c *gin.Context, status int, msg string, form reservation.Form, problems reservation.Problems) {
	echo, err := h.presenter.EchoForm(form)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	detail := resdto.RejectionDetail{Form: echo}
	if !problems.Empty() {
		detail.Errors = problems
		detail.Messages = problems.FullMessages()
	}
	httperr.Reject(c, status, msg, detail)
}

// @Summary Upcoming reservations
// @Description Lists reservations that start after now, earliest first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.queries.Upcoming(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservations", nil)
		return
	}

	resp, err := h.presenter.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
