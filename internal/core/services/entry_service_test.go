package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewEntryService(suite.mockRepo, services.WithClock(fixedClock))
}

func (suite *EntryServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		Tipo:      "entrada",
		Valor:     decimal.NewFromInt(100),
		Data:      "2025-01-01",
		Categoria: "X",
		Descricao: "venda",
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.FinancialEntry) bool {
		return e.ID == 0 &&
			e.Kind == domain.Inflow &&
			e.Amount.Equal(decimal.NewFromInt(100)) &&
			e.Date.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			e.Category == "X" &&
			e.CreatedAt.Equal(fixedNow)
	})).Return(int64(42), nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), entry.ID)
	suite.Equal("venda", entry.Note)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_InvalidDate() {
	req := dto.CreateEntryRequest{Tipo: "saida", Valor: decimal.NewFromInt(5), Data: "01/01/2025", Categoria: "X"}

	entry, err := suite.service.CreateEntry(context.Background(), req)

	suite.Nil(entry)
	requireAppError(&suite.Suite, err, 400, "Formato de data inválido")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{Tipo: "saida", Valor: decimal.NewFromInt(5), Data: "2025-01-01", Categoria: "X"}
	suite.mockRepo.On("SaveEntry", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Nil(entry)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteEntry", ctx, int64(9)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, 9)

	requireAppError(&suite.Suite, err, 404, "Lançamento não encontrado")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteEntry", ctx, int64(9)).Return(assert.AnError).Once()

	err := suite.service.DeleteEntry(ctx, 9)

	suite.ErrorIs(err, assert.AnError)
	var appErr *apperrors.AppError
	suite.False(errors.As(err, &appErr))
}

func (suite *EntryServiceTestSuite) TestListEntries_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, domain.EntryFilter{}).Return(nil, nil).Once()

	entries, err := suite.service.ListEntries(ctx, domain.EntryFilter{})

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *EntryServiceTestSuite) TestSummarizeEntries() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.EntryFilter{DateFrom: &from}
	suite.mockRepo.On("ListEntries", ctx, filter).Return([]domain.FinancialEntry{
		{Kind: domain.Inflow, Amount: decimal.NewFromInt(100), Category: "X"},
		{Kind: domain.Outflow, Amount: decimal.RequireFromString("30.50"), Category: "X"},
		{Kind: domain.Outflow, Amount: decimal.NewFromInt(20), Category: "Y"},
	}, nil).Once()

	summary, err := suite.service.SummarizeEntries(ctx, filter)

	suite.Require().NoError(err)
	suite.True(summary.TotalInflow.Equal(decimal.NewFromInt(100)))
	suite.True(summary.TotalOutflow.Equal(decimal.RequireFromString("50.50")))
	suite.True(summary.NetCash.Equal(decimal.RequireFromString("49.50")))
	suite.True(summary.ByCategory["X"].Outflow.Equal(decimal.RequireFromString("30.50")))
	suite.True(summary.ByCategory["Y"].Inflow.IsZero())
}

func TestEntryService(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
