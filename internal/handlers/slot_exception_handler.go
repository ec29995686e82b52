package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/cache"
	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type SlotExceptionHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
}

func NewSlotExceptionHandler(db *gorm.DB, c *cache.AvailabilityCache) *SlotExceptionHandler {
	return &SlotExceptionHandler{db: db, cache: c}
}

// --------- Requests ---------

type CreateSlotExceptionRequest struct {
	ExceptionType string `json:"exception_type" binding:"required"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Date      string `json:"date"`

	BookingSlotID uint  `json:"booking_slot_id"`
	ClosedSlots   []int `json:"closed_slots"`
}

// validate checks that the request carries exactly the fields its
// exception type needs, with well-formed dates and grid indices.
func (req *CreateSlotExceptionRequest) validate() (code string, ok bool) {
	switch req.ExceptionType {

	case models.ExceptionTypePeriod:
		start, err := availability.ParseDate(req.StartDate)
		if err != nil {
			return "invalid_start_date", false
		}
		end, err := availability.ParseDate(req.EndDate)
		if err != nil {
			return "invalid_end_date", false
		}
		if end.Before(start) {
			return "inverted_period", false
		}

	case models.ExceptionTypeSingleDay:
		if _, err := availability.ParseDate(req.Date); err != nil {
			return "invalid_date", false
		}

	case models.ExceptionTypeService:
		if _, err := availability.ParseDate(req.Date); err != nil {
			return "invalid_date", false
		}
		if req.BookingSlotID == 0 {
			return "missing_booking_slot", false
		}

	case models.ExceptionTypeTimeSlots:
		if req.BookingSlotID == 0 {
			return "missing_booking_slot", false
		}
		if len(req.ClosedSlots) == 0 {
			return "missing_closed_slots", false
		}
		for _, idx := range req.ClosedSlots {
			if idx < 0 || idx >= availability.SlotsPerDay {
				return "invalid_closed_slot", false
			}
		}

	default:
		return "unknown_exception_type", false
	}

	return "", true
}

// --------- Handlers ---------

func (h *SlotExceptionHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var rules []models.SlotException
	if err := h.db.
		Where("establishment_id = ?", establishmentID).
		Order("id ASC").
		Find(&rules).Error; err != nil {

		httperr.Internal(c, "failed_to_list_exceptions", "Erreur lors de la lecture des fermetures.")
		return
	}

	c.JSON(http.StatusOK, rules)
}

func (h *SlotExceptionHandler) Create(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var req CreateSlotExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if code, ok := req.validate(); !ok {
		httperr.BadRequest(c, code, "Règle de fermeture invalide.")
		return
	}

	// a slot-scoped rule must reference a live slot of this establishment
	if req.BookingSlotID != 0 {
		var count int64
		h.db.Model(&models.BookingSlot{}).
			Where("id = ? AND establishment_id = ?", req.BookingSlotID, establishmentID).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "slot_not_found", "Créneau introuvable.")
			return
		}
	}

	var closedJSON string
	if len(req.ClosedSlots) > 0 {
		if b, err := json.Marshal(req.ClosedSlots); err == nil {
			closedJSON = string(b)
		}
	}

	rule := models.SlotException{
		EstablishmentID: establishmentID,
		ExceptionType:   req.ExceptionType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Date:            req.Date,
		BookingSlotID:   req.BookingSlotID,
		ClosedSlots:     closedJSON,
	}

	if err := h.db.Create(&rule).Error; err != nil {
		httperr.Internal(c, "failed_to_create_exception", "Erreur lors de la création de la fermeture.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), establishmentID)

	c.JSON(http.StatusCreated, rule)
}

func (h *SlotExceptionHandler) Delete(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		Delete(&models.SlotException{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Erreur lors de la suppression de la fermeture.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "exception_not_found", "Fermeture introuvable.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), establishmentID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
