// Package lock provides the per-barber mutex held across the reservation's
// conflict check and insert, closing the check-then-act race between two
// concurrent bookings for the same barber.
package lock

import "context"

// Locker acquires a named mutex. The returned function releases it.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
