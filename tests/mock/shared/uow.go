// Package sharedmock contains gomock mocks for interfaces in internal/usecase/shared/uow.go.
package sharedmock

import (
	"context"
	"reflect"
	"time"

	"reservation-book/internal/domain/customer"
	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// WithDB mocks base method.
func (m *MockUnitOfWork) WithDB(ctx context.Context, fn func(context.Context, dbq.DBTX) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithDB", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithDB indicates an expected call of WithDB.
func (mr *MockUnitOfWorkMockRecorder) WithDB(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithDB", reflect.TypeOf((*MockUnitOfWork)(nil).WithDB), ctx, fn)
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// LockSlot mocks base method.
func (m *MockTx) LockSlot(ctx context.Context, slot reservation.Slot) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockSlot", ctx, slot)
	ret0, _ := ret[0].(error)
	return ret0
}

// LockSlot indicates an expected call of LockSlot.
func (mr *MockTxMockRecorder) LockSlot(ctx, slot any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockSlot", reflect.TypeOf((*MockTx)(nil).LockSlot), ctx, slot)
}

// Reads mocks base method.
func (m *MockTx) Reads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// Reads indicates an expected call of Reads.
func (mr *MockTxMockRecorder) Reads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reads", reflect.TypeOf((*MockTx)(nil).Reads))
}

// Customers mocks base method.
func (m *MockTx) Customers() shared.CustomerRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Customers")
	ret0, _ := ret[0].(shared.CustomerRepository)
	return ret0
}

// Customers indicates an expected call of Customers.
func (mr *MockTxMockRecorder) Customers() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Customers", reflect.TypeOf((*MockTx)(nil).Customers))
}

// Reservations mocks base method.
func (m *MockTx) Reservations() shared.ReservationRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reservations")
	ret0, _ := ret[0].(shared.ReservationRepository)
	return ret0
}

// Reservations indicates an expected call of Reservations.
func (mr *MockTxMockRecorder) Reservations() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reservations", reflect.TypeOf((*MockTx)(nil).Reservations))
}

// Notifications mocks base method.
func (m *MockTx) Notifications() shared.NotificationRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notifications")
	ret0, _ := ret[0].(shared.NotificationRepository)
	return ret0
}

// Notifications indicates an expected call of Notifications.
func (mr *MockTxMockRecorder) Notifications() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notifications", reflect.TypeOf((*MockTx)(nil).Notifications))
}

// DB mocks base method.
func (m *MockTx) DB() dbq.DBTX {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(dbq.DBTX)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTxMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTx)(nil).DB))
}

// MockCommandReads is a mock of CommandReads interface.
type MockCommandReads struct {
	ctrl     *gomock.Controller
	recorder *MockCommandReadsMockRecorder
	isgomock struct{}
}

// MockCommandReadsMockRecorder is the mock recorder for MockCommandReads.
type MockCommandReadsMockRecorder struct {
	mock *MockCommandReads
}

// NewMockCommandReads creates a new mock instance.
func NewMockCommandReads(ctrl *gomock.Controller) *MockCommandReads {
	mock := &MockCommandReads{ctrl: ctrl}
	mock.recorder = &MockCommandReadsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandReads) EXPECT() *MockCommandReadsMockRecorder {
	return m.recorder
}

// OpenTables mocks base method.
func (m *MockCommandReads) OpenTables(ctx context.Context, partySize int, slot reservation.Slot) ([]*table.Table, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenTables", ctx, partySize, slot)
	ret0, _ := ret[0].([]*table.Table)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OpenTables indicates an expected call of OpenTables.
func (mr *MockCommandReadsMockRecorder) OpenTables(ctx, partySize, slot any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenTables", reflect.TypeOf((*MockCommandReads)(nil).OpenTables), ctx, partySize, slot)
}

// MockCustomerRepository is a mock of CustomerRepository interface.
type MockCustomerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerRepositoryMockRecorder
	isgomock struct{}
}

// MockCustomerRepositoryMockRecorder is the mock recorder for MockCustomerRepository.
type MockCustomerRepositoryMockRecorder struct {
	mock *MockCustomerRepository
}

// NewMockCustomerRepository creates a new mock instance.
func NewMockCustomerRepository(ctrl *gomock.Controller) *MockCustomerRepository {
	mock := &MockCustomerRepository{ctrl: ctrl}
	mock.recorder = &MockCustomerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustomerRepository) EXPECT() *MockCustomerRepositoryMockRecorder {
	return m.recorder
}

// FindOrCreate mocks base method.
func (m *MockCustomerRepository) FindOrCreate(ctx context.Context, tx dbq.DBTX, contact customer.Contact) (*customer.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindOrCreate", ctx, tx, contact)
	ret0, _ := ret[0].(*customer.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindOrCreate indicates an expected call of FindOrCreate.
func (mr *MockCustomerRepositoryMockRecorder) FindOrCreate(ctx, tx, contact any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindOrCreate", reflect.TypeOf((*MockCustomerRepository)(nil).FindOrCreate), ctx, tx, contact)
}

// MockReservationRepository is a mock of ReservationRepository interface.
type MockReservationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReservationRepositoryMockRecorder
	isgomock struct{}
}

// MockReservationRepositoryMockRecorder is the mock recorder for MockReservationRepository.
type MockReservationRepositoryMockRecorder struct {
	mock *MockReservationRepository
}

// NewMockReservationRepository creates a new mock instance.
func NewMockReservationRepository(ctrl *gomock.Controller) *MockReservationRepository {
	mock := &MockReservationRepository{ctrl: ctrl}
	mock.recorder = &MockReservationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReservationRepository) EXPECT() *MockReservationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockReservationRepository) Create(ctx context.Context, tx dbq.DBTX, res *reservation.Reservation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, res)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockReservationRepositoryMockRecorder) Create(ctx, tx, res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReservationRepository)(nil).Create), ctx, tx, res)
}

// MockNotificationRepository is a mock of NotificationRepository interface.
type MockNotificationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationRepositoryMockRecorder
	isgomock struct{}
}

// MockNotificationRepositoryMockRecorder is the mock recorder for MockNotificationRepository.
type MockNotificationRepositoryMockRecorder struct {
	mock *MockNotificationRepository
}

// NewMockNotificationRepository creates a new mock instance.
func NewMockNotificationRepository(ctrl *gomock.Controller) *MockNotificationRepository {
	mock := &MockNotificationRepository{ctrl: ctrl}
	mock.recorder = &MockNotificationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryMockRecorder {
	return m.recorder
}

// CreateJob mocks base method.
func (m *MockNotificationRepository) CreateJob(ctx context.Context, tx dbq.DBTX, kind string, topic string, payload []byte, runAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJob", ctx, tx, kind, topic, payload, runAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJob indicates an expected call of CreateJob.
func (mr *MockNotificationRepositoryMockRecorder) CreateJob(ctx, tx, kind, topic, payload, runAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJob", reflect.TypeOf((*MockNotificationRepository)(nil).CreateJob), ctx, tx, kind, topic, payload, runAt)
}

// ClaimPending mocks base method.
func (m *MockNotificationRepository) ClaimPending(ctx context.Context, tx dbq.DBTX, now time.Time, limit int32) ([]*shared.NotificationJob, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimPending", ctx, tx, now, limit)
	ret0, _ := ret[0].([]*shared.NotificationJob)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimPending indicates an expected call of ClaimPending.
func (mr *MockNotificationRepositoryMockRecorder) ClaimPending(ctx, tx, now, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimPending", reflect.TypeOf((*MockNotificationRepository)(nil).ClaimPending), ctx, tx, now, limit)
}

// MarkSent mocks base method.
func (m *MockNotificationRepository) MarkSent(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSent", ctx, tx, jobID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkSent indicates an expected call of MarkSent.
func (mr *MockNotificationRepositoryMockRecorder) MarkSent(ctx, tx, jobID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSent", reflect.TypeOf((*MockNotificationRepository)(nil).MarkSent), ctx, tx, jobID)
}

// MarkFailed mocks base method.
func (m *MockNotificationRepository) MarkFailed(ctx context.Context, tx dbq.DBTX, jobID uuid.UUID, lastError string, retryAt *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkFailed", ctx, tx, jobID, lastError, retryAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkFailed indicates an expected call of MarkFailed.
func (mr *MockNotificationRepositoryMockRecorder) MarkFailed(ctx, tx, jobID, lastError, retryAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkFailed", reflect.TypeOf((*MockNotificationRepository)(nil).MarkFailed), ctx, tx, jobID, lastError, retryAt)
}
