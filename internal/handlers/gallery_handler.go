package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/httpresp"
	"github.com/RestoSuiteApp/resto-scheduler/internal/middleware"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
	"github.com/RestoSuiteApp/resto-scheduler/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type GalleryHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewGalleryHandler(db *gorm.DB, uploader *storage.Uploader) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader}
}

func (h *GalleryHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var images []models.GalleryImage
	if err := h.db.
		Where("establishment_id = ?", establishmentID).
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {

		httperr.Internal(c, "failed_to_list_images", "Erreur lors de la lecture de la galerie.")
		return
	}

	httpresp.List(c, images)
}

// Upload accepts a multipart "image" field, converts it to WebP and
// stores it in object storage.
func (h *GalleryHandler) Upload(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_not_configured", "Le stockage d'images n'est pas configuré.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Fichier image manquant.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image trop volumineuse.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erreur lors de la lecture du fichier.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erreur lors de la lecture du fichier.")
		return
	}

	key, url, err := h.uploader.UploadImage(c.Request.Context(), establishmentID, data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Image invalide ou format non supporté.")
		return
	}

	var maxPos int
	h.db.Model(&models.GalleryImage{}).
		Where("establishment_id = ?", establishmentID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos)

	img := models.GalleryImage{
		EstablishmentID: establishmentID,
		ObjectKey:       key,
		URL:             url,
		Position:        maxPos + 1,
	}

	if err := h.db.Create(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Erreur lors de l'enregistrement de l'image.")
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	var img models.GalleryImage
	if err := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		First(&img).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "image_not_found", "Image introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_image", "Erreur lors de la lecture de l'image.")
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Erreur lors de la suppression de l'image.")
		return
	}

	// object storage cleanup is best effort; the DB row is the source of truth
	if h.uploader != nil {
		_ = h.uploader.Delete(c.Request.Context(), img.ObjectKey)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
