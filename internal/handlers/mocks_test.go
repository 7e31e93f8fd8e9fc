package handlers_test

import (
	"context"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.String(1), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) SummarizeEntries(ctx context.Context, filter domain.EntryFilter) (domain.FinancialSummary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.FinancialSummary), args.Error(1)
}
func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.FinancialEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}
func (m *MockBudgetService) GetBudget(ctx context.Context, id int64) (*domain.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) ListBudgetClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockBudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) UpdateBudgetStatus(ctx context.Context, id int64, status string) (*domain.Budget, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBudgetService) PurgeBudgets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) ListContractClients(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockContractService) GetContractFile(ctx context.Context, id int64) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) CreateContract(ctx context.Context, req dto.CreateContractRequest, upload portssvc.ContractUpload) (*domain.Contract, error) {
	args := m.Called(ctx, req, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) DeleteContract(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockContractService) PurgeContracts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)

// --- Mock TaskService ---
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskService) TaskCalendar(ctx context.Context, year, month int) (domain.TaskCalendar, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(domain.TaskCalendar), args.Error(1)
}
func (m *MockTaskService) TaskStatistics(ctx context.Context, filter domain.TaskFilter) (domain.TaskStats, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}
func (m *MockTaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) CompleteTask(ctx context.Context, id int64, done bool) (*domain.Task, error) {
	args := m.Called(ctx, id, done)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.TaskSvcFacade = (*MockTaskService)(nil)
