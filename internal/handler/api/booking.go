package api

import (
	"errors"
	"net/http"

	reqdto "econlearn/internal/handler/dto/request"
	resdto "econlearn/internal/handler/dto/response"
	"econlearn/internal/handler/httperr"
	"econlearn/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// rejectedMessage is the single user-facing rejection text. The engine does
// not distinguish rejection reasons, so neither does the API.
const rejectedMessage = "Unable to schedule session. Check concept alignment, availability, and requested time."

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Book a session with an expert for a concept
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	confirmation, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, commands.ErrBookingRejected) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, rejectedMessage, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmationView(confirmation))
}
