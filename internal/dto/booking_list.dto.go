package dto

import "time"

type BookingListDTO struct {
	ID         uint      `json:"id"`
	Reference  string    `json:"reference"`
	BarberID   uint      `json:"barber_id"`
	BarberName string    `json:"barber_name"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Service    string    `json:"service"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ClientDTO struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email,omitempty"`
	TotalBookings int      `json:"total_bookings"`
	LastBooking   string   `json:"last_booking"`
	Services      []string `json:"services"`
}
