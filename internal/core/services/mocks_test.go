package services_test

import (
	"context"
	"io"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- MockEntryRepository ---

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.FinancialEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockBudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetStatus(ctx context.Context, id int64, status domain.BudgetStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBudgetRepository) PurgeBudgets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockContractRepository ---

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, id int64) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListContractClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) (int64, error) {
	args := m.Called(ctx, contract)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) DeleteContract(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractRepository) PurgeContracts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockTaskRepository ---

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) (int64, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) UpdateTaskDone(ctx context.Context, id int64, done bool) error {
	args := m.Called(ctx, id, done)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockFileStore ---

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) CheckName(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockFileStore) ReadUpload(r io.Reader) ([]byte, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileStore) Store(data []byte, name string) (*filestore.StoredFile, error) {
	args := m.Called(data, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filestore.StoredFile), args.Error(1)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}
