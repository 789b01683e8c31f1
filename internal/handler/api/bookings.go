package api

import (
	"errors"
	"net/http"

	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Evaluate wizard step
// @Description Derive the wizard step from the current selections
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WizardRequest true "Partial selections"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/wizard [post]
func (h *BookingHandler) EvaluateWizard(c *gin.Context) {
	var req reqdto.WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view := h.bookingUseCase.EvaluateWizard(req.ToDraft())
	c.JSON(http.StatusOK, resdto.FromWizardView(view))
}

// @Summary Create booking
// @Description Submit the completed wizard; snapshots pet/plan/branch names and arms the reminder
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking submission"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingUseCase.SubmitBooking(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIncompleteBooking):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Por favor, completa todos los campos para la reserva.",
			})
		case errors.Is(err, usecase.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		case errors.Is(err, usecase.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Plan not found",
			})
		case errors.Is(err, usecase.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Branch not found",
			})
		case errors.Is(err, usecase.ErrUnknownTimeSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown time slot",
			})
		case errors.Is(err, usecase.ErrMalformedTime):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Malformed appointment time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Bookings of the authenticated user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingUseCase.ListBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Confirmation payload; a missing booking means the flow was not completed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingUseCase.GetBooking(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Remove a booking and disarm its reminder
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
