package bookingflow

import (
	"context"
	"strings"

	"github.com/sellbarbers/booking-api/internal/httperr"
	"github.com/sellbarbers/booking-api/internal/validators"
)

// ===============================
// Steps
// ===============================

type Step int

const (
	StepSelectBarber Step = iota + 1
	StepSelectDate
	StepSelectTime
	StepEnterContact
)

// ===============================
// Requests and inputs
// ===============================

// Contact is what the customer types at the last step.
type Contact struct {
	Name    string
	Surname string
	Phone   string
}

// Draft is the booking the machine hands to its Submitter.
type Draft struct {
	BarberID uint
	Date     string
	Time     string
	Name     string
	Surname  string
	Phone    string
}

// Submitter persists a finished draft. The machine resets only when
// it reports success.
type Submitter interface {
	CreateBooking(ctx context.Context, d Draft) error
}

// DatesRequest tags an availability read with the selection it was
// issued for. A result whose tag no longer matches the machine's
// current selection is stale and gets discarded on arrival.
type DatesRequest struct {
	BarberID uint
	gen      uint64
}

type SlotsRequest struct {
	BarberID uint
	Date     string
	gen      uint64
}

// ===============================
// Machine
// ===============================

// Machine is the four-step booking wizard: barber, date, time,
// contact. One machine per customer session, driven synchronously by
// user input; availability reads happen outside and come back through
// the Apply methods.
//
// Structural invariants: a barber is set from step 2 on, a date from
// step 3 on, a time from step 4 on.
type Machine struct {
	step     Step
	barberID uint
	date     string
	timeSlot string

	availableDates []string
	availableTimes []string

	// gen bumps on every selection change so a slow fetch for a
	// superseded selection can never overwrite current lists.
	gen uint64
}

func New() *Machine {
	return &Machine{step: StepSelectBarber}
}

// -------- queries --------

func (m *Machine) Step() Step               { return m.step }
func (m *Machine) BarberID() uint           { return m.barberID }
func (m *Machine) Date() string             { return m.date }
func (m *Machine) Time() string             { return m.timeSlot }
func (m *Machine) AvailableDates() []string { return m.availableDates }
func (m *Machine) AvailableTimes() []string { return m.availableTimes }

// -------- commands --------

// ChooseBarber selects (or switches) the barber. Valid from any step:
// switching always clears the date and time and returns to the date
// step. The returned request tags the date-availability read the
// caller should now issue.
func (m *Machine) ChooseBarber(barberID uint) (DatesRequest, bool) {
	if barberID == 0 {
		return DatesRequest{}, false
	}

	m.barberID = barberID
	m.date = ""
	m.timeSlot = ""
	m.availableDates = nil
	m.availableTimes = nil
	m.step = StepSelectDate
	m.gen++

	return DatesRequest{BarberID: barberID, gen: m.gen}, true
}

// ApplyDates installs a date-availability result. Stale results — a
// different barber, or any selection change since the request was
// issued — are discarded.
func (m *Machine) ApplyDates(req DatesRequest, dates []string) bool {
	if req.gen != m.gen || req.BarberID != m.barberID {
		return false
	}
	m.availableDates = dates
	return true
}

// ChooseDate picks a date at the date step. A date the shop does not
// offer is rejected silently: no transition, the picker simply does
// not react.
func (m *Machine) ChooseDate(date string) (SlotsRequest, bool) {
	if m.step != StepSelectDate || !contains(m.availableDates, date) {
		return SlotsRequest{}, false
	}

	m.date = date
	m.timeSlot = ""
	m.availableTimes = nil
	m.step = StepSelectTime
	m.gen++

	return SlotsRequest{BarberID: m.barberID, Date: date, gen: m.gen}, true
}

func (m *Machine) ApplySlots(req SlotsRequest, slots []string) bool {
	if req.gen != m.gen || req.BarberID != m.barberID || req.Date != m.date {
		return false
	}
	m.availableTimes = slots
	return true
}

func (m *Machine) ChooseTime(timeSlot string) bool {
	if m.step != StepSelectTime || !contains(m.availableTimes, timeSlot) {
		return false
	}

	m.timeSlot = timeSlot
	m.step = StepEnterContact
	m.gen++
	return true
}

// Back returns to an earlier step, clearing every selection that
// belongs to a later one: back to the barber step clears everything,
// back to the date step keeps the barber, back to the time step keeps
// barber and date.
func (m *Machine) Back(to Step) bool {
	if to < StepSelectBarber || to >= m.step {
		return false
	}

	m.timeSlot = ""
	if to <= StepSelectDate {
		m.date = ""
		m.availableTimes = nil
	}
	if to <= StepSelectBarber {
		m.barberID = 0
		m.availableDates = nil
	}

	m.step = to
	m.gen++
	return true
}

// Submit validates the contact and persists the booking. Validation
// or persistence failure leaves the machine at the contact step with
// every selection intact, so the customer can retry; success resets
// to a fresh wizard.
func (m *Machine) Submit(ctx context.Context, c Contact, s Submitter) error {
	if m.step != StepEnterContact {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	name := strings.TrimSpace(c.Name)
	surname := strings.TrimSpace(c.Surname)
	phone := strings.TrimSpace(c.Phone)

	if name == "" || surname == "" || !validators.IsPhoneValid(phone) {
		return httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	err := s.CreateBooking(ctx, Draft{
		BarberID: m.barberID,
		Date:     m.date,
		Time:     m.timeSlot,
		Name:     name,
		Surname:  surname,
		Phone:    phone,
	})
	if err != nil {
		return err
	}

	*m = Machine{step: StepSelectBarber, gen: m.gen + 1}
	return nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
