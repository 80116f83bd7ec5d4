package bookingflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellbarbers/booking-api/internal/httperr"
)

// ======================================================
// FAKE SUBMITTER
// ======================================================

type fakeSubmitter struct {
	drafts []Draft
	err    error
}

func (f *fakeSubmitter) CreateBooking(_ context.Context, d Draft) error {
	if f.err != nil {
		return f.err
	}
	f.drafts = append(f.drafts, d)
	return nil
}

// ======================================================
// HELPERS
// ======================================================

var validContact = Contact{Name: "Marco", Surname: "Rossi", Phone: "+39 333 123 4567"}

// driveToContact walks a fresh machine to the contact step.
func driveToContact(t *testing.T) *Machine {
	t.Helper()

	m := New()

	req, ok := m.ChooseBarber(1)
	require.True(t, ok)
	require.True(t, m.ApplyDates(req, []string{"2026-09-01", "2026-09-02"}))

	slotsReq, ok := m.ChooseDate("2026-09-01")
	require.True(t, ok)
	require.True(t, m.ApplySlots(slotsReq, []string{"09:00", "09:30", "10:00"}))

	require.True(t, m.ChooseTime("10:00"))
	require.Equal(t, StepEnterContact, m.Step())
	return m
}

// ======================================================
// FORWARD FLOW
// ======================================================

func TestMachineStartsAtBarberStep(t *testing.T) {
	m := New()
	assert.Equal(t, StepSelectBarber, m.Step())
	assert.Zero(t, m.BarberID())
}

func TestFullFlowAndSubmit(t *testing.T) {
	m := driveToContact(t)
	sub := &fakeSubmitter{}

	require.NoError(t, m.Submit(context.Background(), validContact, sub))

	require.Len(t, sub.drafts, 1)
	d := sub.drafts[0]
	assert.Equal(t, uint(1), d.BarberID)
	assert.Equal(t, "2026-09-01", d.Date)
	assert.Equal(t, "10:00", d.Time)
	assert.Equal(t, "Marco", d.Name)
	assert.Equal(t, "Rossi", d.Surname)

	// Success resets to a fresh wizard.
	assert.Equal(t, StepSelectBarber, m.Step())
	assert.Zero(t, m.BarberID())
	assert.Empty(t, m.Date())
	assert.Empty(t, m.Time())
}

func TestChooseDateRequiresOfferedDate(t *testing.T) {
	m := New()

	req, _ := m.ChooseBarber(1)
	m.ApplyDates(req, []string{"2026-09-01"})

	_, ok := m.ChooseDate("2026-09-03")
	assert.False(t, ok)
	assert.Equal(t, StepSelectDate, m.Step())
	assert.Empty(t, m.Date())
}

func TestChooseTimeRequiresOfferedSlot(t *testing.T) {
	m := New()

	req, _ := m.ChooseBarber(1)
	m.ApplyDates(req, []string{"2026-09-01"})
	slotsReq, _ := m.ChooseDate("2026-09-01")
	m.ApplySlots(slotsReq, []string{"09:00"})

	assert.False(t, m.ChooseTime("10:00"))
	assert.Equal(t, StepSelectTime, m.Step())
}

func TestChooseBarberRejectsZeroID(t *testing.T) {
	m := New()
	_, ok := m.ChooseBarber(0)
	assert.False(t, ok)
	assert.Equal(t, StepSelectBarber, m.Step())
}

func TestCommandsOutOfOrderAreIgnored(t *testing.T) {
	m := New()

	_, ok := m.ChooseDate("2026-09-01")
	assert.False(t, ok)
	assert.False(t, m.ChooseTime("10:00"))
	assert.False(t, m.Back(StepSelectBarber))
}

// ======================================================
// SWITCHING AND BACK NAVIGATION
// ======================================================

func TestSwitchingBarberClearsLaterSelections(t *testing.T) {
	m := driveToContact(t)

	req, ok := m.ChooseBarber(2)
	require.True(t, ok)

	assert.Equal(t, StepSelectDate, m.Step())
	assert.Equal(t, uint(2), m.BarberID())
	assert.Empty(t, m.Date())
	assert.Empty(t, m.Time())
	assert.Empty(t, m.AvailableDates())

	assert.True(t, m.ApplyDates(req, []string{"2026-09-03"}))
}

func TestBackToDateStepKeepsBarber(t *testing.T) {
	m := driveToContact(t)

	require.True(t, m.Back(StepSelectDate))

	assert.Equal(t, StepSelectDate, m.Step())
	assert.Equal(t, uint(1), m.BarberID())
	assert.Empty(t, m.Date())
	assert.Empty(t, m.Time())
	assert.NotEmpty(t, m.AvailableDates())
}

func TestBackToTimeStepKeepsDate(t *testing.T) {
	m := driveToContact(t)

	require.True(t, m.Back(StepSelectTime))

	assert.Equal(t, StepSelectTime, m.Step())
	assert.Equal(t, "2026-09-01", m.Date())
	assert.Empty(t, m.Time())
	assert.NotEmpty(t, m.AvailableTimes())
}

func TestBackToStartClearsEverything(t *testing.T) {
	m := driveToContact(t)

	require.True(t, m.Back(StepSelectBarber))

	assert.Equal(t, StepSelectBarber, m.Step())
	assert.Zero(t, m.BarberID())
	assert.Empty(t, m.Date())
	assert.Empty(t, m.AvailableDates())
}

func TestBackwardOnlyToEarlierSteps(t *testing.T) {
	m := New()
	req, _ := m.ChooseBarber(1)
	m.ApplyDates(req, []string{"2026-09-01"})

	assert.False(t, m.Back(StepSelectDate))   // current step
	assert.False(t, m.Back(StepSelectTime))   // forward
	assert.False(t, m.Back(Step(0)))          // out of range
	assert.True(t, m.Back(StepSelectBarber))
}

// ======================================================
// STALE RESULTS
// ======================================================

func TestStaleDatesAreDiscarded(t *testing.T) {
	m := New()

	oldReq, _ := m.ChooseBarber(1)
	newReq, _ := m.ChooseBarber(2)

	assert.False(t, m.ApplyDates(oldReq, []string{"2026-09-01"}))
	assert.Empty(t, m.AvailableDates())

	assert.True(t, m.ApplyDates(newReq, []string{"2026-09-02"}))
	assert.Equal(t, []string{"2026-09-02"}, m.AvailableDates())
}

func TestStaleSlotsAreDiscarded(t *testing.T) {
	m := New()

	req, _ := m.ChooseBarber(1)
	m.ApplyDates(req, []string{"2026-09-01", "2026-09-02"})

	oldSlots, _ := m.ChooseDate("2026-09-01")

	require.True(t, m.Back(StepSelectDate))
	newSlots, ok := m.ChooseDate("2026-09-02")
	require.True(t, ok)

	assert.False(t, m.ApplySlots(oldSlots, []string{"09:00"}))
	assert.Empty(t, m.AvailableTimes())

	assert.True(t, m.ApplySlots(newSlots, []string{"10:00"}))
	assert.Equal(t, []string{"10:00"}, m.AvailableTimes())
}

func TestReselectingSameDateInvalidatesOldFetch(t *testing.T) {
	m := New()

	req, _ := m.ChooseBarber(1)
	m.ApplyDates(req, []string{"2026-09-01"})

	first, _ := m.ChooseDate("2026-09-01")
	m.Back(StepSelectDate)
	second, _ := m.ChooseDate("2026-09-01")

	assert.False(t, m.ApplySlots(first, []string{"09:00"}))
	assert.True(t, m.ApplySlots(second, []string{"09:30"}))
}

// ======================================================
// SUBMIT
// ======================================================

func TestSubmitRequiresContactStep(t *testing.T) {
	m := New()

	err := m.Submit(context.Background(), validContact, &fakeSubmitter{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestSubmitValidatesContact(t *testing.T) {
	cases := []Contact{
		{Name: "", Surname: "Rossi", Phone: "+39 333 123 4567"},
		{Name: "Marco", Surname: " ", Phone: "+39 333 123 4567"},
		{Name: "Marco", Surname: "Rossi", Phone: "abc"},
		{Name: "Marco", Surname: "Rossi", Phone: ""},
	}

	for _, c := range cases {
		m := driveToContact(t)
		sub := &fakeSubmitter{}

		err := m.Submit(context.Background(), c, sub)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
		assert.Empty(t, sub.drafts)

		// Selections survive for a retry.
		assert.Equal(t, StepEnterContact, m.Step())
		assert.Equal(t, "10:00", m.Time())
	}
}

func TestSubmitFailureKeepsSelections(t *testing.T) {
	m := driveToContact(t)
	sub := &fakeSubmitter{err: httperr.ErrBusiness(httperr.CodeSlotTaken)}

	err := m.Submit(context.Background(), validContact, sub)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	assert.Equal(t, StepEnterContact, m.Step())
	assert.Equal(t, uint(1), m.BarberID())
	assert.Equal(t, "2026-09-01", m.Date())
	assert.Equal(t, "10:00", m.Time())

	// Retry succeeds after the submitter recovers.
	sub.err = nil
	require.NoError(t, m.Submit(context.Background(), validContact, sub))
	assert.Equal(t, StepSelectBarber, m.Step())
}

func TestSubmitPropagatesUnknownErrors(t *testing.T) {
	m := driveToContact(t)
	boom := errors.New("db down")
	sub := &fakeSubmitter{err: boom}

	err := m.Submit(context.Background(), validContact, sub)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StepEnterContact, m.Step())
}
