package models

import "time"

// GeneralInfo is the singleton row of shop-level display strings.
type GeneralInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName string `gorm:"size:100" json:"site_name"`
	Slogan   string `gorm:"size:255" json:"slogan"`
	About    string `gorm:"type:text" json:"about"`

	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
