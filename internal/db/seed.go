package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/config"
	"github.com/sellbarbers/booking-api/internal/domain/schedule"
	"github.com/sellbarbers/booking-api/internal/models"
)

// Seed fills an empty database with the shop's starting content:
// the two barbers and their weekly hours, the price list, the shop
// info singleton and the admin account. Existing rows are left alone.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedBarbers(db); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedGeneralInfo(db); err != nil {
		return err
	}
	return seedAdmin(db, cfg)
}

type seedWindow struct {
	start, end string
	offDays    []schedule.DayOfWeek
	satStart   string
	satEnd     string
}

func seedBarbers(db *gorm.DB) error {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return nil
	}

	barbers := []struct {
		name, description string
		window            seedWindow
	}{
		{
			name:        "Selim",
			description: "Master of contemporary cuts and urban styling. Specialista in fade tecnici e design innovativi.",
			window: seedWindow{
				start: "09:00", end: "18:00",
				satStart: "09:00", satEnd: "16:00",
				offDays: []schedule.DayOfWeek{schedule.Sunday},
			},
		},
		{
			name:        "Daniel",
			description: "Veterano dello street style con 15+ anni di esperienza. Precision cuts e urban transformations.",
			window: seedWindow{
				start: "10:00", end: "19:00",
				satStart: "09:00", satEnd: "17:00",
				offDays: []schedule.DayOfWeek{schedule.Sunday},
			},
		},
	}

	for _, b := range barbers {
		barber := models.Barber{
			Name:        b.name,
			Description: b.description,
			Active:      true,
		}
		if err := db.Create(&barber).Error; err != nil {
			return err
		}

		for _, day := range schedule.Week() {
			wh := models.WorkingHours{
				BarberID:  barber.ID,
				Day:       day.String(),
				Available: true,
				StartTime: b.window.start,
				EndTime:   b.window.end,
			}
			if day == schedule.Saturday {
				wh.StartTime = b.window.satStart
				wh.EndTime = b.window.satEnd
			}
			for _, off := range b.window.offDays {
				if day == off {
					wh.Available = false
				}
			}
			if err := db.Create(&wh).Error; err != nil {
				return err
			}
		}
	}

	log.Println("seeded default barbers and working hours")
	return nil
}

func seedServices(db *gorm.DB) error {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return nil
	}

	services := []models.Service{
		{Category: "Tagli", Name: "Taglio uomo", Price: "25€"},
		{Category: "Tagli", Name: "Taglio bambino (fino a 12 anni)", Price: "20€"},
		{Category: "Tagli", Name: "Taglio + barba", Price: "35€"},
		{Category: "Tagli", Name: "Taglio + shampoo", Price: "30€"},
		{Category: "Tagli", Name: "Taglio completo (taglio + barba + shampoo)", Price: "40€"},
		{Category: "Barba", Name: "Regolazione barba", Price: "15€"},
		{Category: "Barba", Name: "Rasatura tradizionale", Price: "18€"},
		{Category: "Barba", Name: "Barba + trattamento", Price: "22€"},
		{Category: "Trattamenti", Name: "Trattamento cute", Price: "20€"},
		{Category: "Trattamenti", Name: "Trattamento rinforzante", Price: "25€"},
		{Category: "Colorazione", Name: "Colorazione capelli", Price: "30€"},
		{Category: "Colorazione", Name: "Colpi di sole", Price: "35€"},
	}

	return db.Create(&services).Error
}

func seedGeneralInfo(db *gorm.DB) error {
	var count int64
	db.Model(&models.GeneralInfo{}).Count(&count)
	if count > 0 {
		return nil
	}

	info := models.GeneralInfo{
		SiteName: "SELLBARBERS",
		Slogan:   "Il tuo barbiere di fiducia",
	}
	return db.Create(&info).Error
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "owner",
	}
	return db.Create(&admin).Error
}
