package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

const (
	auditDefaultPageSize = 50
	auditMaxPageSize     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns a page of audit entries, newest first. Filters: action,
// entity, page, page_size.
func (h *AuditLogsHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(auditDefaultPageSize)))
	if pageSize < 1 {
		pageSize = auditDefaultPageSize
	}
	if pageSize > auditMaxPageSize {
		pageSize = auditMaxPageSize
	}

	q := h.db.Model(&models.AuditLog{}).
		Where("establishment_id = ?", establishmentID)

	if action := strings.TrimSpace(c.Query("action")); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := strings.TrimSpace(c.Query("entity")); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_audit_logs", "Erreur lors de la lecture du journal.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Erreur lors de la lecture du journal.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":      page,
		"page_size": pageSize,
		"total":     total,
		"logs":      logs,
	})
}
