package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RestoSuiteApp/resto-scheduler/internal/domain/availability"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	ucBooking "github.com/RestoSuiteApp/resto-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	listDayUC  *ucBooking.ListBookingsByDate
	listMonUC  *ucBooking.ListBookingsByMonth
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listDayUC *ucBooking.ListBookingsByDate,
	listMonUC *ucBooking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listDayUC:  listDayUC,
		listMonUC:  listMonUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientPhone   string `json:"client_phone" binding:"required"`
	ClientEmail   string `json:"client_email"`
	BookingSlotID uint   `json:"booking_slot_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	PartySize     int    `json:"party_size" binding:"required,min=1"`
	Notes         string `json:"notes"`
}

// mapCreateErrors translates business codes to HTTP responses.
func mapCreateErrors(c *gin.Context, err error) {
	for _, code := range []string{
		"invalid_date", "invalid_time", "too_soon",
		"slot_not_found", "invalid_party_size", "party_too_large",
		"slot_closed", "slot_unavailable",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "Réservation impossible.")
			return
		}
	}

	if errors.Is(err, availability.ErrInvalidDateFormat) ||
		errors.Is(err, availability.ErrInvalidTimeFormat) {
		httperr.BadRequest(c, "invalid_date_or_time", "Date ou heure invalide.")
		return
	}

	httperr.Internal(c, "failed_to_create_booking", "Erreur lors de la création de la réservation.")
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			EstablishmentID: establishmentID,
			UserID:          &userID,
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

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	out, err := h.listDayUC.Execute(c.Request.Context(), establishmentID, dateStr)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDateFormat) {
			httperr.BadRequest(c, "invalid_date", "Date invalide.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Erreur lors de la lecture des réservations.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Année invalide.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mois invalide.")
		return
	}

	out, err := h.listMonUC.Execute(c.Request.Context(), establishmentID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erreur lors de la lecture des réservations.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": out,
	})
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), establishmentID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Réservation introuvable.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La réservation ne peut plus être annulée.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Erreur lors de l'annulation.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), establishmentID, userID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Réservation introuvable.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La réservation ne peut plus être honorée.")
			return
		}
		httperr.Internal(c, "failed_to_complete_booking", "Erreur lors de la clôture.")
		return
	}

	c.JSON(http.StatusOK, b)
}
