package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	ucBooking "github.com/RestoSuiteApp/resto-scheduler/internal/usecase/booking"
)

// PublicHandler serves the unauthenticated booking surface. Every route
// is scoped by the establishment slug.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

func (h *PublicHandler) establishmentBySlug(c *gin.Context) (*models.Establishment, bool) {
	slug := c.Param("slug")

	var est models.Establishment
	if err := h.db.Where("slug = ?", slug).First(&est).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "establishment_not_found", "Établissement introuvable.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_establishment", "Erreur lors de la lecture de l'établissement.")
		return nil, false
	}

	return &est, true
}

// ======================================================
// ESTABLISHMENT PAGE
// ======================================================

func (h *PublicHandler) GetEstablishment(c *gin.Context) {
	est, ok := h.establishmentBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      est.ID,
		"name":    est.Name,
		"slug":    est.Slug,
		"phone":   est.Phone,
		"address": est.Address,
	})
}

func (h *PublicHandler) ListMenu(c *gin.Context) {
	est, ok := h.establishmentBySlug(c)
	if !ok {
		return
	}

	var products []models.MenuProduct
	if err := h.db.
		Where("establishment_id = ? AND active = ?", est.ID, true).
		Order("category ASC, id ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Erreur lors de la lecture de la carte.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	est, ok := h.establishmentBySlug(c)
	if !ok {
		return
	}

	var images []models.GalleryImage
	if err := h.db.
		Where("establishment_id = ?", est.ID).
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {

		httperr.Internal(c, "failed_to_list_images", "Erreur lors de la lecture de la galerie.")
		return
	}

	c.JSON(http.StatusOK, images)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	est, ok := h.establishmentBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	groups, err := h.availabilityUC.Execute(c.Request.Context(), est.ID, dateStr)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDateFormat) {
			httperr.BadRequest(c, "invalid_date", "Date invalide, format attendu AAAA-MM-JJ.")
			return
		}
		httperr.Internal(c, "failed_to_compute_availability", "Erreur lors du calcul des disponibilités.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"services": groups,
	})
}

// ======================================================
// BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	est, ok := h.establishmentBySlug(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			EstablishmentID: est.ID,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ClientEmail:     req.ClientEmail,
			BookingSlotID:   req.BookingSlotID,
			Date:            req.Date,
			Time:            req.Time,
			PartySize:       req.PartySize,
			Notes:           req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         b.ID,
		"date":       b.Date,
		"time":       b.Time,
		"party_size": b.PartySize,
		"service":    b.ServiceName,
		"status":     b.Status,
	})
}
