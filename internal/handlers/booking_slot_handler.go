package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/cache"
	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type BookingSlotHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
}

func NewBookingSlotHandler(db *gorm.DB, c *cache.AvailabilityCache) *BookingSlotHandler {
	return &BookingSlotHandler{db: db, cache: c}
}

// --------- Requests ---------

type CreateBookingSlotRequest struct {
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	ServiceName string `json:"service_name"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	MaxCapacity int    `json:"max_capacity"`
	Active      *bool  `json:"active"`
}

type UpdateBookingSlotRequest struct {
	Weekday     *int    `json:"weekday,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	MaxCapacity *int    `json:"max_capacity,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// validateWindow rejects malformed or inverted time windows at the CRUD
// boundary, so the slot generator never sees them.
func validateWindow(start, end string) error {
	startIdx, err := availability.TimeToSlotIndex(start)
	if err != nil {
		return err
	}
	endIdx, err := availability.TimeToSlotIndex(end)
	if err != nil {
		return err
	}
	if startIdx >= endIdx {
		return availability.ErrMalformedDefinition
	}
	return nil
}

// --------- Handlers ---------

func (h *BookingSlotHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var slots []models.BookingSlot
	if err := h.db.
		Where("establishment_id = ?", establishmentID).
		Order("display_order ASC, id ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_slots", "Erreur lors de la lecture des créneaux.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *BookingSlotHandler) Create(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var req CreateBookingSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		httperr.BadRequest(c, "invalid_time_window", "Plage horaire invalide.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	slot := models.BookingSlot{
		EstablishmentID: establishmentID,
		Weekday:         req.Weekday,
		ServiceName:     req.ServiceName,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxCapacity:     req.MaxCapacity,
		Active:          active,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_create_slot", "Erreur lors de la création du créneau.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), establishmentID)

	c.JSON(http.StatusCreated, slot)
}

func (h *BookingSlotHandler) Update(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	var slot models.BookingSlot
	if err := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		First(&slot).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "slot_not_found", "Créneau introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_slot", "Erreur lors de la lecture du créneau.")
		return
	}

	var req UpdateBookingSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Weekday != nil {
		if *req.Weekday < 0 || *req.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Jour de semaine invalide.")
			return
		}
		slot.Weekday = *req.Weekday
	}
	if req.ServiceName != nil {
		slot.ServiceName = *req.ServiceName
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.MaxCapacity != nil {
		slot.MaxCapacity = *req.MaxCapacity
	}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := validateWindow(slot.StartTime, slot.EndTime); err != nil {
		httperr.BadRequest(c, "invalid_time_window", "Plage horaire invalide.")
		return
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_slot", "Erreur lors de l'enregistrement du créneau.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), establishmentID)

	c.JSON(http.StatusOK, slot)
}

// Delete soft-deletes the slot; past bookings keep pointing at the row.
func (h *BookingSlotHandler) Delete(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		Delete(&models.BookingSlot{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_slot", "Erreur lors de la suppression du créneau.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "slot_not_found", "Créneau introuvable.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), establishmentID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
