package phone

import (
	"strings"

	"reservation-book/internal/pkg/errs"

	"github.com/nyaruka/phonenumbers"
)

var ErrImplausible = errs.New("phone number is not plausible")

// Normalize parses raw input as dialled from region and returns its E.164 form.
func Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrImplausible
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", errs.Mark(err, ErrImplausible)
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrImplausible
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Plausible reports whether an already normalised number still parses as a possible number.
func Plausible(e164 string) bool {
	if !strings.HasPrefix(e164, "+") {
		return false
	}
	num, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}

// Display formats a number for the front desk: national style for home-region numbers,
// international style otherwise. Unparseable input is returned unchanged.
func Display(e164, region string) string {
	num, err := phonenumbers.Parse(e164, region)
	if err != nil {
		return e164
	}
	if phonenumbers.GetRegionCodeForNumber(num) == strings.ToUpper(region) {
		return phonenumbers.Format(num, phonenumbers.NATIONAL)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
