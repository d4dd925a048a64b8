package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/audit"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/imaging"
	"github.com/BellaEstudioDev/salon-agenda/internal/infra/storage"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

const maxImageUploadBytes = 10 << 20 // 10 MB

type GalleryHandler struct {
	db      *gorm.DB
	storage *storage.ImageStorage
	audit   *audit.Dispatcher
}

func NewGalleryHandler(
	db *gorm.DB,
	store *storage.ImageStorage,
	dispatcher *audit.Dispatcher,
) *GalleryHandler {
	return &GalleryHandler{
		db:      db,
		storage: store,
		audit:   dispatcher,
	}
}

// --------- Handlers ---------

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Order("created_at DESC").
		Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Error al listar la galería.")
		return
	}

	c.JSON(http.StatusOK, images)
}

// Upload recibe multipart ("image" + "description"), convierte la foto a
// WebP y la sube al bucket antes de registrar la entrada.
func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Falta la imagen.")
		return
	}

	if fileHeader.Size > maxImageUploadBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen supera el tamaño máximo (10 MB).")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}
	defer file.Close()

	converted, err := imaging.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "Formato de imagen no soportado (JPEG o PNG).")
		return
	}

	key := h.storage.NewKey(".webp")

	url, err := h.storage.Upload(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Error al subir la imagen.")
		return
	}

	image := models.GalleryImage{
		URL:         url,
		ObjectKey:   key,
		Description: c.PostForm("description"),
	}

	if err := h.db.Create(&image).Error; err != nil {
		// el registro falló: no dejamos el objeto huérfano en el bucket
		if delErr := h.storage.Delete(c.Request.Context(), key); delErr != nil {
			log.Println("gallery: orphan object", key, delErr)
		}

		httperr.Internal(c, "failed_to_save_image", "Error al guardar la imagen.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminActor(c),
		Action:   "gallery_image_uploaded",
		Entity:   "gallery_image",
		EntityID: &image.ID,
	})

	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var image models.GalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "gallery_image_not_found", "Imagen no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_image", "Error al buscar la imagen.")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), image.ObjectKey); err != nil {
		// no bloquea la baja del registro
		log.Println("gallery: failed to delete object", image.ObjectKey, err)
	}

	if err := h.db.Delete(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Error al eliminar la imagen.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminActor(c),
		Action:   "gallery_image_deleted",
		Entity:   "gallery_image",
		EntityID: &image.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Imagen eliminada."})
}
