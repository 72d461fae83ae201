package booking

import (
	"net/http"
	"strconv"

	"rentwheels/internal/domain"
	"rentwheels/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/bookings/my", h.MyBookings)
	rg.GET("/owner/bookings", h.OwnerBookings)
}

// RegisterPublicRoutes mounts the endpoints that need no authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles/:id/calendar", h.VehicleCalendar)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	b, err := h.service.Reserve(c.Request.Context(), req, userID)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
		case ErrVehicleNotFound:
			response.Error(c, http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found")
		case ErrNotAvailable, ErrOverbooking:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Vehicle is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, vehicle, err := h.service.UpdateStatus(
		c.Request.Context(),
		bookingID,
		c.GetInt64("user_id"),
		c.GetString("role"),
		domain.BookingStatus(req.Status),
	)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the vehicle owner may change booking status")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Requested status is not reachable from the current status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, StatusChangeResponse{
		BookingID: b.ID,
		Status:    string(b.Status),
		Vehicle:   VehicleState{ID: vehicle.ID, IsAvailable: vehicle.IsAvailable},
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, offset := pagination(c)
	items, err := h.service.MyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": toBookingResponses(items)})
}

func (h *Handler) OwnerBookings(c *gin.Context) {
	limit, offset := pagination(c)
	items, err := h.service.OwnerBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": toBookingResponses(items)})
}

func (h *Handler) VehicleCalendar(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	busy, err := h.service.BusyRanges(c.Request.Context(), vehicleID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load calendar")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"busy": busy})
}

func toBookingResponses(items []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, toBookingResponse(&items[i]))
	}
	return out
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
