package reservation

// Outcome is the business result of a booking attempt. It is implemented only by
// SuccessfulBooking, NoAvailability and FailedValidation.
type Outcome interface {
	Kind() Kind
	isOutcome()
}

type SuccessfulBooking struct {
	Reservation *Reservation
}

type NoAvailability struct {
	Form Form
}

type FailedValidation struct {
	Form     Form
	Problems Problems
}

func (SuccessfulBooking) Kind() Kind { return KindSuccessfulBooking }
func (NoAvailability) Kind() Kind    { return KindNoAvailability }
func (FailedValidation) Kind() Kind  { return KindFailedValidation }

func (SuccessfulBooking) isOutcome() {}
func (NoAvailability) isOutcome()    {}
func (FailedValidation) isOutcome()  {}

// Handlers must supply a callback for every outcome.
type Handlers[T any] struct {
	SuccessfulBooking func(SuccessfulBooking) T
	NoAvailability    func(NoAvailability) T
	FailedValidation  func(FailedValidation) T
}

// Match dispatches o to exactly one handler. It panics when a handler is missing or the
// outcome is nil, so an unhandled case fails loudly.
func Match[T any](o Outcome, h Handlers[T]) T {
	if h.SuccessfulBooking == nil || h.NoAvailability == nil || h.FailedValidation == nil {
		panic("reservation.Match: every outcome needs a handler")
	}
	switch v := o.(type) {
	case SuccessfulBooking:
		return h.SuccessfulBooking(v)
	case NoAvailability:
		return h.NoAvailability(v)
	case FailedValidation:
		return h.FailedValidation(v)
	default:
		panic("reservation.Match: unknown outcome")
	}
}
