package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	"github.com/RestoSuiteApp/resto-scheduler/internal/timezone"
)

type EstablishmentHandler struct {
	db *gorm.DB
}

func NewEstablishmentHandler(db *gorm.DB) *EstablishmentHandler {
	return &EstablishmentHandler{db: db}
}

type UpdateEstablishmentRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *EstablishmentHandler) GetMe(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var est models.Establishment
	if err := h.db.First(&est, establishmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "establishment_not_found", "Établissement introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_establishment", "Erreur lors de la lecture de l'établissement.")
		return
	}

	c.JSON(http.StatusOK, est)
}

func (h *EstablishmentHandler) UpdateMe(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var est models.Establishment
	if err := h.db.First(&est, establishmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "establishment_not_found", "Établissement introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_establishment", "Erreur lors de la lecture de l'établissement.")
		return
	}

	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name != nil {
		est.Name = *req.Name
	}
	if req.Phone != nil {
		est.Phone = *req.Phone
	}
	if req.Address != nil {
		est.Address = *req.Address
	}
	if req.Timezone != nil {
		// reject unknown zone names instead of silently falling back
		if _, err := timezone.Parse(*req.Timezone); err != nil {
			httperr.BadRequest(c, "invalid_timezone", "Fuseau horaire inconnu.")
			return
		}
		est.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Le délai minimum doit être positif ou nul (en minutes).")
			return
		}
		est.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&est).Error; err != nil {
		httperr.Internal(c, "failed_to_update_establishment", "Erreur lors de l'enregistrement.")
		return
	}

	c.JSON(http.StatusOK, est)
}
