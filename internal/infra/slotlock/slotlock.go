package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sellbarbers/booking-api/internal/httperr"
)

const lockTTL = 5 * time.Second

// Locker serializes the availability-check + insert window for one
// slot across API instances. The database's unique index remains the
// hard guarantee; this only narrows the race so the second customer
// gets a clean slot_taken instead of a constraint error.
type Locker struct {
	rdb *redis.Client
}

// New returns a Locker over the given client. A nil client disables
// locking: Acquire always succeeds.
func New(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

func key(barberID uint, date, timeSlot string) string {
	return fmt.Sprintf("slotlock:%d:%s:%s", barberID, date, timeSlot)
}

// Acquire takes the slot lock and returns a release func. A held lock
// yields slot_taken.
func (l *Locker) Acquire(
	ctx context.Context,
	barberID uint,
	date string,
	timeSlot string,
) (func(), error) {

	if l.rdb == nil {
		return func() {}, nil
	}

	k := key(barberID, date, timeSlot)

	ok, err := l.rdb.SetNX(ctx, k, 1, lockTTL).Result()
	if err != nil {
		// Redis being down must not block bookings; the unique index
		// still protects the slot.
		return func() {}, nil
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	return func() {
		l.rdb.Del(context.Background(), k)
	}, nil
}
