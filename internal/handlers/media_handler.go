package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/media"
)

// maxUploadBytes caps gallery uploads at 10 MB.
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	uploader *media.Uploader
}

func NewMediaHandler(uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload takes a multipart "file" field, converts it to WebP and
// stores it. Responds with the public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "media_not_configured", "Caricamento immagini non configurato.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Nessun file ricevuto.")
		return
	}
	if fh.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Immagine troppo grande (max 10 MB).")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Errore nel leggere il file.")
		return
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Request.Context(), f)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidationFailed) {
			httperr.BadRequest(c, "invalid_image", "Il file non è un'immagine valida.")
			return
		}
		httperr.Internal(c, "upload_failed", "Errore nel caricare l'immagine.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

type DeleteMediaRequest struct {
	URL string `json:"url" binding:"required"`
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "media_not_configured", "Caricamento immagini non configurato.")
		return
	}

	var req DeleteMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if err := h.uploader.Delete(c.Request.Context(), req.URL); err != nil {
		httperr.Internal(c, "delete_failed", "Errore nell'eliminare l'immagine.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
