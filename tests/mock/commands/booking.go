// Package commandsmock contains gomock mocks for interfaces in internal/usecase/commands.
package commandsmock

import (
	"context"
	"reflect"
	"time"

	"reservation-book/internal/domain/reservation"

	"go.uber.org/mock/gomock"
)

// MockBookingCommands is a mock of BookingCommands interface.
type MockBookingCommands struct {
	ctrl     *gomock.Controller
	recorder *MockBookingCommandsMockRecorder
	isgomock struct{}
}

// MockBookingCommandsMockRecorder is the mock recorder for MockBookingCommands.
type MockBookingCommandsMockRecorder struct {
	mock *MockBookingCommands
}

// NewMockBookingCommands creates a new mock instance.
func NewMockBookingCommands(ctrl *gomock.Controller) *MockBookingCommands {
	mock := &MockBookingCommands{ctrl: ctrl}
	mock.recorder = &MockBookingCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingCommands) EXPECT() *MockBookingCommandsMockRecorder {
	return m.recorder
}

// MakeReservation mocks base method.
func (m *MockBookingCommands) MakeReservation(ctx context.Context, form reservation.Form) (reservation.Outcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MakeReservation", ctx, form)
	ret0, _ := ret[0].(reservation.Outcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MakeReservation indicates an expected call of MakeReservation.
func (mr *MockBookingCommandsMockRecorder) MakeReservation(ctx, form any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MakeReservation", reflect.TypeOf((*MockBookingCommands)(nil).MakeReservation), ctx, form)
}

// MockOutcomeRecorder is a mock of OutcomeRecorder interface.
type MockOutcomeRecorder struct {
	ctrl     *gomock.Controller
	recorder *MockOutcomeRecorderMockRecorder
	isgomock struct{}
}

// MockOutcomeRecorderMockRecorder is the mock recorder for MockOutcomeRecorder.
type MockOutcomeRecorderMockRecorder struct {
	mock *MockOutcomeRecorder
}

// NewMockOutcomeRecorder creates a new mock instance.
func NewMockOutcomeRecorder(ctrl *gomock.Controller) *MockOutcomeRecorder {
	mock := &MockOutcomeRecorder{ctrl: ctrl}
	mock.recorder = &MockOutcomeRecorderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOutcomeRecorder) EXPECT() *MockOutcomeRecorderMockRecorder {
	return m.recorder
}

// ObserveOutcome mocks base method.
func (m *MockOutcomeRecorder) ObserveOutcome(kind reservation.Kind, elapsed time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveOutcome", kind, elapsed)
}

// ObserveOutcome indicates an expected call of ObserveOutcome.
func (mr *MockOutcomeRecorderMockRecorder) ObserveOutcome(kind, elapsed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveOutcome", reflect.TypeOf((*MockOutcomeRecorder)(nil).ObserveOutcome), kind, elapsed)
}

// ObserveFailure mocks base method.
func (m *MockOutcomeRecorder) ObserveFailure(elapsed time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveFailure", elapsed)
}

// ObserveFailure indicates an expected call of ObserveFailure.
func (mr *MockOutcomeRecorderMockRecorder) ObserveFailure(elapsed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveFailure", reflect.TypeOf((*MockOutcomeRecorder)(nil).ObserveFailure), elapsed)
}

// ConflictRetried mocks base method.
func (m *MockOutcomeRecorder) ConflictRetried() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ConflictRetried")
}

// ConflictRetried indicates an expected call of ConflictRetried.
func (mr *MockOutcomeRecorderMockRecorder) ConflictRetried() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConflictRetried", reflect.TypeOf((*MockOutcomeRecorder)(nil).ConflictRetried))
}

// MockListingInvalidator is a mock of ListingInvalidator interface.
type MockListingInvalidator struct {
	ctrl     *gomock.Controller
	recorder *MockListingInvalidatorMockRecorder
	isgomock struct{}
}

// MockListingInvalidatorMockRecorder is the mock recorder for MockListingInvalidator.
type MockListingInvalidatorMockRecorder struct {
	mock *MockListingInvalidator
}

// NewMockListingInvalidator creates a new mock instance.
func NewMockListingInvalidator(ctrl *gomock.Controller) *MockListingInvalidator {
	mock := &MockListingInvalidator{ctrl: ctrl}
	mock.recorder = &MockListingInvalidatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockListingInvalidator) EXPECT() *MockListingInvalidatorMockRecorder {
	return m.recorder
}

// Invalidate mocks base method.
func (m *MockListingInvalidator) Invalidate(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invalidate", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Invalidate indicates an expected call of Invalidate.
func (mr *MockListingInvalidatorMockRecorder) Invalidate(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invalidate", reflect.TypeOf((*MockListingInvalidator)(nil).Invalidate), ctx)
}
