package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/internal/middleware"
	"github.com/uncode/videojuegos/internal/storage"
)

type UploadController struct {
	storage storage.CoverUploader
}

func NewUploadController(storage storage.CoverUploader) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type PresignCoverRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// PresignCover returns a presigned PUT URL for a game cover image.
// The returned file_url is what the game form takes as rutaimg.
// POST /uploads/portadas
func (ctrl *UploadController) PresignCover(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presign request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.CodeValidation, "Datos de la solicitud no válidos")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType); err != nil {
		log.Warn("Invalid content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Solo se permiten imágenes (JPEG, PNG, GIF, WEBP)")
		return
	}

	upload, err := ctrl.storage.PresignCoverUpload(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
		})
		apperrors.InternalError(c, apperrors.UploadFailed, apperrors.MsgOperationFailed)
		return
	}

	log.Info("Presigned URL generated successfully", map[string]interface{}{
		"filename": req.Filename,
		"key":      upload.Key,
	})
	c.JSON(http.StatusOK, upload)
}
