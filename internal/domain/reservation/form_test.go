//go:build unit

package reservation_test

import (
	"math"
	"testing"
	"time"

	"reservation-book/internal/domain/reservation"
	"reservation-book/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type formCase struct {
	name     string
	mutate   func(*builder.ReservationBuilder)
	problems reservation.Problems
}

func TestFormValidate(t *testing.T) {
	now := builder.FixedNow

	t.Run("valid form has no problems", func(t *testing.T) {
		form := builder.NewReservationBuilder().BuildForm()
		assert.True(t, form.Validate(now).Empty())
	})

	runFormCases(t, now, []formCase{
		{
			name:     "missing datetime",
			mutate:   func(b *builder.ReservationBuilder) { b.DateTime = time.Time{} },
			problems: reservation.Problems{reservation.FieldDateTime: {reservation.MsgBlank}},
		},
		{
			name:     "datetime equal to now",
			mutate:   func(b *builder.ReservationBuilder) { b.DateTime = now },
			problems: reservation.Problems{reservation.FieldDateTime: {reservation.MsgNotInFuture}},
		},
		{
			name:     "datetime in the past",
			mutate:   func(b *builder.ReservationBuilder) { b.DateTime = now.Add(-time.Hour) },
			problems: reservation.Problems{reservation.FieldDateTime: {reservation.MsgNotInFuture}},
		},
		{
			name:     "party of zero",
			mutate:   func(b *builder.ReservationBuilder) { b.PartySize = 0 },
			problems: reservation.Problems{reservation.FieldPartySize: {reservation.MsgPartyTooSmall}},
		},
		{
			name:     "negative party",
			mutate:   func(b *builder.ReservationBuilder) { b.PartySize = -3 },
			problems: reservation.Problems{reservation.FieldPartySize: {reservation.MsgPartyTooSmall}},
		},
		{
			name:     "party at the seat limit",
			mutate:   func(b *builder.ReservationBuilder) { b.PartySize = math.MaxInt32 },
			problems: reservation.Problems{},
		},
		{
			name:     "party that would wrap to 2 as int32",
			mutate:   func(b *builder.ReservationBuilder) { b.PartySize = 4294967298 },
			problems: reservation.Problems{reservation.FieldPartySize: {reservation.MsgPartyTooLarge}},
		},
		{
			name:     "party that would wrap negative as int32",
			mutate:   func(b *builder.ReservationBuilder) { b.PartySize = 3_000_000_000 },
			problems: reservation.Problems{reservation.FieldPartySize: {reservation.MsgPartyTooLarge}},
		},
		{
			name:     "whitespace first name",
			mutate:   func(b *builder.ReservationBuilder) { b.FirstName = "   " },
			problems: reservation.Problems{reservation.FieldFirstName: {reservation.MsgBlank}},
		},
		{
			name:     "missing last name",
			mutate:   func(b *builder.ReservationBuilder) { b.LastName = "" },
			problems: reservation.Problems{reservation.FieldLastName: {reservation.MsgBlank}},
		},
		{
			name:     "missing phone",
			mutate:   func(b *builder.ReservationBuilder) { b.Phone = "" },
			problems: reservation.Problems{reservation.FieldPhone: {reservation.MsgBlank}},
		},
		{
			name:     "implausible phone",
			mutate:   func(b *builder.ReservationBuilder) { b.Phone = "555" },
			problems: reservation.Problems{reservation.FieldPhone: {reservation.MsgInvalidPhone}},
		},
		{
			name:     "missing email",
			mutate:   func(b *builder.ReservationBuilder) { b.Email = " " },
			problems: reservation.Problems{reservation.FieldEmail: {reservation.MsgBlank}},
		},
		{
			name:     "malformed email",
			mutate:   func(b *builder.ReservationBuilder) { b.Email = "ada.example.com" },
			problems: reservation.Problems{reservation.FieldEmail: {reservation.MsgInvalidEmail}},
		},
	})

	t.Run("every field empty", func(t *testing.T) {
		problems := reservation.Form{}.Validate(now)

		assert.Equal(t, []string{
			reservation.FieldDateTime,
			reservation.FieldPartySize,
			reservation.FieldFirstName,
			reservation.FieldLastName,
			reservation.FieldPhone,
			reservation.FieldEmail,
		}, problems.Fields())
		assert.Equal(t, "Datetime can't be blank", problems.FullMessages()[0])
		assert.Equal(t, "Party size must be at least 1", problems.FullMessages()[1])
	})
}

func runFormCases(t *testing.T, now time.Time, cases []formCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)

			got := b.BuildForm().Validate(now)
			if diff := cmp.Diff(tc.problems, got); diff != "" {
				t.Errorf("Problems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormContact(t *testing.T) {
	form := reservation.Form{
		FirstName: " Mary  Ann ",
		LastName:  "Lovelace ",
		Phone:     " +13125551212",
		Email:     "ada@example.com  ",
	}

	contact := form.Contact()
	assert.Equal(t, "Mary Ann", contact.FirstName)
	assert.Equal(t, "Lovelace", contact.LastName)
	assert.Equal(t, "+13125551212", contact.Phone)
	assert.Equal(t, "ada@example.com", contact.Email)
}

func TestProblemsFieldsKeepsUnknownFieldsLast(t *testing.T) {
	p := reservation.Problems{}
	p.Add("zeta", "is odd")
	p.Add(reservation.FieldEmail, reservation.MsgInvalidEmail)
	p.Add("alpha", "is odd")

	assert.Equal(t, []string{reservation.FieldEmail, "alpha", "zeta"}, p.Fields())
	assert.Equal(t, []string{"Email is invalid", "alpha is odd", "zeta is odd"}, p.FullMessages())
}
