// Package queriesmock contains gomock mocks for interfaces in internal/usecase/queries.
package queriesmock

import (
	"context"
	"reflect"
	"time"

	"reservation-book/internal/usecase/queries"

	"go.uber.org/mock/gomock"
)

// MockReservationQueries is a mock of ReservationQueries interface.
type MockReservationQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationQueriesMockRecorder
	isgomock struct{}
}

// MockReservationQueriesMockRecorder is the mock recorder for MockReservationQueries.
type MockReservationQueriesMockRecorder struct {
	mock *MockReservationQueries
}

// NewMockReservationQueries creates a new mock instance.
func NewMockReservationQueries(ctrl *gomock.Controller) *MockReservationQueries {
	mock := &MockReservationQueries{ctrl: ctrl}
	mock.recorder = &MockReservationQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationQueries) EXPECT() *MockReservationQueriesMockRecorder {
	return m.recorder
}

// Upcoming mocks base method.
func (m *MockReservationQueries) Upcoming(ctx context.Context) ([]*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upcoming", ctx)
	ret0, _ := ret[0].([]*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upcoming indicates an expected call of Upcoming.
func (mr *MockReservationQueriesMockRecorder) Upcoming(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upcoming", reflect.TypeOf((*MockReservationQueries)(nil).Upcoming), ctx)
}

// MockReservationReadStore is a mock of ReservationReadStore interface.
type MockReservationReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReservationReadStoreMockRecorder
	isgomock struct{}
}

// MockReservationReadStoreMockRecorder is the mock recorder for MockReservationReadStore.
type MockReservationReadStoreMockRecorder struct {
	mock *MockReservationReadStore
}

// NewMockReservationReadStore creates a new mock instance.
func NewMockReservationReadStore(ctrl *gomock.Controller) *MockReservationReadStore {
	mock := &MockReservationReadStore{ctrl: ctrl}
	mock.recorder = &MockReservationReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationReadStore) EXPECT() *MockReservationReadStoreMockRecorder {
	return m.recorder
}

// FindUpcoming mocks base method.
func (m *MockReservationReadStore) FindUpcoming(ctx context.Context, now time.Time) ([]*queries.ReservationView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindUpcoming", ctx, now)
	ret0, _ := ret[0].([]*queries.ReservationView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindUpcoming indicates an expected call of FindUpcoming.
func (mr *MockReservationReadStoreMockRecorder) FindUpcoming(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindUpcoming", reflect.TypeOf((*MockReservationReadStore)(nil).FindUpcoming), ctx, now)
}

// MockTableQueries is a mock of TableQueries interface.
type MockTableQueries struct {
	ctrl     *gomock.Controller
	recorder *MockTableQueriesMockRecorder
	isgomock struct{}
}

// MockTableQueriesMockRecorder is the mock recorder for MockTableQueries.
type MockTableQueriesMockRecorder struct {
	mock *MockTableQueries
}

// NewMockTableQueries creates a new mock instance.
func NewMockTableQueries(ctrl *gomock.Controller) *MockTableQueries {
	mock := &MockTableQueries{ctrl: ctrl}
	mock.recorder = &MockTableQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTableQueries) EXPECT() *MockTableQueriesMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockTableQueries) List(ctx context.Context) ([]*queries.TableView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*queries.TableView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockTableQueriesMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTableQueries)(nil).List), ctx)
}

// MaxTableSize mocks base method.
func (m *MockTableQueries) MaxTableSize(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaxTableSize", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MaxTableSize indicates an expected call of MaxTableSize.
func (mr *MockTableQueriesMockRecorder) MaxTableSize(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaxTableSize", reflect.TypeOf((*MockTableQueries)(nil).MaxTableSize), ctx)
}

// PartySizeChoices mocks base method.
func (m *MockTableQueries) PartySizeChoices(ctx context.Context) ([]queries.PartySizeChoice, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PartySizeChoices", ctx)
	ret0, _ := ret[0].([]queries.PartySizeChoice)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PartySizeChoices indicates an expected call of PartySizeChoices.
func (mr *MockTableQueriesMockRecorder) PartySizeChoices(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PartySizeChoices", reflect.TypeOf((*MockTableQueries)(nil).PartySizeChoices), ctx)
}

// MockTableReadStore is a mock of TableReadStore interface.
type MockTableReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockTableReadStoreMockRecorder
	isgomock struct{}
}

// MockTableReadStoreMockRecorder is the mock recorder for MockTableReadStore.
type MockTableReadStoreMockRecorder struct {
	mock *MockTableReadStore
}

// NewMockTableReadStore creates a new mock instance.
func NewMockTableReadStore(ctrl *gomock.Controller) *MockTableReadStore {
	mock := &MockTableReadStore{ctrl: ctrl}
	mock.recorder = &MockTableReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTableReadStore) EXPECT() *MockTableReadStoreMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockTableReadStore) List(ctx context.Context) ([]*queries.TableView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*queries.TableView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockTableReadStoreMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTableReadStore)(nil).List), ctx)
}

// MaxSeats mocks base method.
func (m *MockTableReadStore) MaxSeats(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MaxSeats", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MaxSeats indicates an expected call of MaxSeats.
func (mr *MockTableReadStoreMockRecorder) MaxSeats(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MaxSeats", reflect.TypeOf((*MockTableReadStore)(nil).MaxSeats), ctx)
}
