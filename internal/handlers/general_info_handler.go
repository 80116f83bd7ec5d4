package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/models"
)

type GeneralInfoHandler struct {
	db *gorm.DB
}

func NewGeneralInfoHandler(db *gorm.DB) *GeneralInfoHandler {
	return &GeneralInfoHandler{db: db}
}

type UpdateGeneralInfoRequest struct {
	SiteName *string `json:"site_name,omitempty"`
	Slogan   *string `json:"slogan,omitempty"`
	About    *string `json:"about,omitempty"`

	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`

	InstagramURL *string `json:"instagram_url,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

func (h *GeneralInfoHandler) Get(c *gin.Context) {
	var info models.GeneralInfo
	if err := h.db.First(&info).Error; err != nil {
		httperr.NotFound(c, "general_info_not_found", "Informazioni non disponibili.")
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *GeneralInfoHandler) Update(c *gin.Context) {
	var info models.GeneralInfo
	if err := h.db.First(&info).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			httperr.Internal(c, "failed_to_get_general_info", "Errore nel caricare le informazioni.")
			return
		}
	}

	var req UpdateGeneralInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.SiteName != nil {
		info.SiteName = *req.SiteName
	}
	if req.Slogan != nil {
		info.Slogan = *req.Slogan
	}
	if req.About != nil {
		info.About = *req.About
	}
	if req.Phone != nil {
		info.Phone = *req.Phone
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.Address != nil {
		info.Address = *req.Address
	}
	if req.InstagramURL != nil {
		info.InstagramURL = *req.InstagramURL
	}
	if req.FacebookURL != nil {
		info.FacebookURL = *req.FacebookURL
	}
	if req.LogoURL != nil {
		info.LogoURL = *req.LogoURL
	}

	if err := h.db.Save(&info).Error; err != nil {
		httperr.Internal(c, "failed_to_update_general_info", "Errore nel salvare le informazioni.")
		return
	}

	c.JSON(http.StatusOK, info)
}
