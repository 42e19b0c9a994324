// Package repositorymock contains gomock mocks for interfaces in internal/infra/repository.
package repositorymock

import (
	"context"
	"reflect"

	"reservation-book/internal/infra/dbq"

	"go.uber.org/mock/gomock"
)

// MockCustomerWriteQueries is a mock of CustomerWriteQueries interface.
type MockCustomerWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerWriteQueriesMockRecorder
	isgomock struct{}
}

// MockCustomerWriteQueriesMockRecorder is the mock recorder for MockCustomerWriteQueries.
type MockCustomerWriteQueriesMockRecorder struct {
	mock *MockCustomerWriteQueries
}

// NewMockCustomerWriteQueries creates a new mock instance.
func NewMockCustomerWriteQueries(ctrl *gomock.Controller) *MockCustomerWriteQueries {
	mock := &MockCustomerWriteQueries{ctrl: ctrl}
	mock.recorder = &MockCustomerWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustomerWriteQueries) EXPECT() *MockCustomerWriteQueriesMockRecorder {
	return m.recorder
}

// InsertCustomerIfAbsent mocks base method.
func (m *MockCustomerWriteQueries) InsertCustomerIfAbsent(ctx context.Context, db dbq.DBTX, arg dbq.CustomerContactParams) (dbq.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertCustomerIfAbsent", ctx, db, arg)
	ret0, _ := ret[0].(dbq.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertCustomerIfAbsent indicates an expected call of InsertCustomerIfAbsent.
func (mr *MockCustomerWriteQueriesMockRecorder) InsertCustomerIfAbsent(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertCustomerIfAbsent", reflect.TypeOf((*MockCustomerWriteQueries)(nil).InsertCustomerIfAbsent), ctx, db, arg)
}

// GetCustomerByContact mocks base method.
func (m *MockCustomerWriteQueries) GetCustomerByContact(ctx context.Context, db dbq.DBTX, arg dbq.CustomerContactParams) (dbq.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCustomerByContact", ctx, db, arg)
	ret0, _ := ret[0].(dbq.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCustomerByContact indicates an expected call of GetCustomerByContact.
func (mr *MockCustomerWriteQueriesMockRecorder) GetCustomerByContact(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCustomerByContact", reflect.TypeOf((*MockCustomerWriteQueries)(nil).GetCustomerByContact), ctx, db, arg)
}

// MockReservationWriteQueries is a mock of ReservationWriteQueries interface.
type MockReservationWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReservationWriteQueriesMockRecorder
	isgomock struct{}
}

// MockReservationWriteQueriesMockRecorder is the mock recorder for MockReservationWriteQueries.
type MockReservationWriteQueriesMockRecorder struct {
	mock *MockReservationWriteQueries
}

// NewMockReservationWriteQueries creates a new mock instance.
func NewMockReservationWriteQueries(ctrl *gomock.Controller) *MockReservationWriteQueries {
	mock := &MockReservationWriteQueries{ctrl: ctrl}
	mock.recorder = &MockReservationWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationWriteQueries) EXPECT() *MockReservationWriteQueriesMockRecorder {
	return m.recorder
}

// CreateReservation mocks base method.
func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db dbq.DBTX, arg dbq.CreateReservationParams) (dbq.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReservation", ctx, db, arg)
	ret0, _ := ret[0].(dbq.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReservation indicates an expected call of CreateReservation.
func (mr *MockReservationWriteQueriesMockRecorder) CreateReservation(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReservation", reflect.TypeOf((*MockReservationWriteQueries)(nil).CreateReservation), ctx, db, arg)
}

// MockNotificationWriteQueries is a mock of NotificationWriteQueries interface.
type MockNotificationWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationWriteQueriesMockRecorder
	isgomock struct{}
}

// MockNotificationWriteQueriesMockRecorder is the mock recorder for MockNotificationWriteQueries.
type MockNotificationWriteQueriesMockRecorder struct {
	mock *MockNotificationWriteQueries
}

// NewMockNotificationWriteQueries creates a new mock instance.
func NewMockNotificationWriteQueries(ctrl *gomock.Controller) *MockNotificationWriteQueries {
	mock := &MockNotificationWriteQueries{ctrl: ctrl}
	mock.recorder = &MockNotificationWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationWriteQueries) EXPECT() *MockNotificationWriteQueriesMockRecorder {
	return m.recorder
}

// CreateNotificationJob mocks base method.
func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db dbq.DBTX, arg dbq.CreateNotificationJobParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateNotificationJob", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateNotificationJob indicates an expected call of CreateNotificationJob.
func (mr *MockNotificationWriteQueriesMockRecorder) CreateNotificationJob(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateNotificationJob", reflect.TypeOf((*MockNotificationWriteQueries)(nil).CreateNotificationJob), ctx, db, arg)
}

// ClaimNotificationJobs mocks base method.
func (m *MockNotificationWriteQueries) ClaimNotificationJobs(ctx context.Context, db dbq.DBTX, arg dbq.ClaimNotificationJobsParams) ([]dbq.NotificationJob, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimNotificationJobs", ctx, db, arg)
	ret0, _ := ret[0].([]dbq.NotificationJob)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimNotificationJobs indicates an expected call of ClaimNotificationJobs.
func (mr *MockNotificationWriteQueriesMockRecorder) ClaimNotificationJobs(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimNotificationJobs", reflect.TypeOf((*MockNotificationWriteQueries)(nil).ClaimNotificationJobs), ctx, db, arg)
}

// UpdateNotificationJobStatus mocks base method.
func (m *MockNotificationWriteQueries) UpdateNotificationJobStatus(ctx context.Context, db dbq.DBTX, arg dbq.UpdateNotificationJobStatusParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateNotificationJobStatus", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateNotificationJobStatus indicates an expected call of UpdateNotificationJobStatus.
func (mr *MockNotificationWriteQueriesMockRecorder) UpdateNotificationJobStatus(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateNotificationJobStatus", reflect.TypeOf((*MockNotificationWriteQueries)(nil).UpdateNotificationJobStatus), ctx, db, arg)
}
