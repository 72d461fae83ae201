package catalog

import (
	"net/http"
	"strconv"
	"time"

	"rentwheels/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles/search", h.Search)
	rg.GET("/vehicles/:id", h.GetVehicle)
}

// RegisterProtectedRoutes mounts the owner-side listing endpoints.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles", h.CreateVehicle)
	rg.GET("/vehicles/my", h.MyVehicles)
	rg.PUT("/vehicles/:id", h.UpdateVehicle)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.CreateVehicle(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown vehicle type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create vehicle")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	v, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vehicle")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) MyVehicles(c *gin.Context) {
	items, err := h.service.MyVehicles(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vehicles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": items})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this vehicle")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vehicle fields")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update vehicle")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) Search(c *gin.Context) {
	location := c.Query("location")
	pickup, err1 := time.Parse(dateLayout, c.Query("pickup_date"))
	ret, err2 := time.Parse(dateLayout, c.Query("return_date"))
	if location == "" || err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "location, pickup_date and return_date are required (YYYY-MM-DD)")
		return
	}

	items, err := h.service.SearchAvailable(c.Request.Context(), location, pickup, ret)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "pickup_date must be before return_date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": items})
}
