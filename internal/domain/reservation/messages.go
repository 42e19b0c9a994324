package reservation

import (
	"fmt"
	"time"
)

func ConfirmationMessage(r *Reservation, loc *time.Location) string {
	return fmt.Sprintf("Your reservation for a party of %d on %s has been confirmed.",
		r.PartySize(), r.Slot().Format(loc))
}

func NoAvailabilityMessage(f Form, loc *time.Location) string {
	return fmt.Sprintf("No tables that can seat a party of %d are available on %s.",
		f.PartySize, f.Slot().Format(loc))
}
