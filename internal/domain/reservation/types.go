package reservation

// Kind names an outcome for logs, metrics and response bodies.
type Kind string

const (
	KindSuccessfulBooking Kind = "successful_booking"
	KindNoAvailability    Kind = "no_availability"
	KindFailedValidation  Kind = "failed_validation"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindSuccessfulBooking, KindNoAvailability, KindFailedValidation:
		return true
	default:
		return false
	}
}
