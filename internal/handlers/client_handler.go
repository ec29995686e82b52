package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httpresp"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List returns the establishment's guest records, optionally filtered by
// a name or phone fragment.
func (h *ClientHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("establishment_id = ?", establishmentID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC, id ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erreur lors de la lecture des clients.")
		return
	}

	httpresp.List(c, clients)
}
