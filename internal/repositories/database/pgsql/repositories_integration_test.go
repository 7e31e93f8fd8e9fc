//go:build integration

package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/repositories/database/pgsql"
	"github.com/jvbartk0/orbisx-sistema-final-v2/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Run with: ORBISX_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repositories/database/pgsql/
// The database is truncated before every test.
const databaseURLEnv = "ORBISX_TEST_DATABASE_URL"

type PgxRepositorySuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func (s *PgxRepositorySuite) SetupSuite() {
	url := os.Getenv(databaseURLEnv)
	if url == "" {
		s.T().Skipf("%s not set", databaseURLEnv)
	}
	s.ctx = context.Background()

	_, err := database.MigratePostgres(url)
	s.Require().NoError(err)

	s.pool, err = database.NewPgxPool(s.ctx, url)
	s.Require().NoError(err)
	s.repos = pgsql.NewRepositoryProvider(s.pool)
}

func (s *PgxRepositorySuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

func (s *PgxRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE lancamentos, servicos_orcamento, orcamentos, contratos, tarefas RESTART IDENTITY;`)
	s.Require().NoError(err)
}

func TestPgxRepositorySuite(t *testing.T) {
	suite.Run(t, new(PgxRepositorySuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func (s *PgxRepositorySuite) count(table string) int {
	var n int
	s.Require().NoError(s.pool.QueryRow(s.ctx, `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func newBudget(title, client string, items ...domain.BudgetLineItem) domain.Budget {
	return domain.Budget{
		Title:     title,
		Client:    client,
		Status:    domain.BudgetPending,
		CreatedAt: time.Now().UTC(),
		Items:     items,
	}
}

func item(name string, qty int64, price string) domain.BudgetLineItem {
	return domain.BudgetLineItem{Name: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func (s *PgxRepositorySuite) TestEntry_ListInclusiveBounds() {
	for _, d := range []time.Time{date(2025, 1, 1), date(2025, 1, 31), date(2025, 2, 1)} {
		_, err := s.repos.EntryRepo.SaveEntry(s.ctx, domain.FinancialEntry{
			Kind:      domain.Inflow,
			Amount:    decimal.RequireFromString("10.50"),
			Date:      d,
			Category:  "Vendas",
			CreatedAt: time.Now().UTC(),
		})
		s.Require().NoError(err)
	}

	got, err := s.repos.EntryRepo.ListEntries(s.ctx, domain.EntryFilter{
		DateFrom: ptr(date(2025, 1, 1)),
		DateTo:   ptr(date(2025, 1, 31)),
	})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(date(2025, 1, 31), got[0].Date)
	s.True(decimal.RequireFromString("10.50").Equal(got[0].Amount))

	s.ErrorIs(s.repos.EntryRepo.DeleteEntry(s.ctx, 999), apperrors.ErrNotFound)
}

func (s *PgxRepositorySuite) TestBudget_BatchInsertAndLoad() {
	saved, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("Site", "Acme", item("Design", 2, "500"), item("Hosting", 1, "99.90")))
	s.Require().NoError(err)
	for _, it := range saved.Items {
		s.NotZero(it.ID)
		s.Equal(saved.ID, it.BudgetID)
	}

	got, err := s.repos.BudgetRepo.FindBudgetByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 2)
	s.Equal("Design", got.Items[0].Name)
	s.True(decimal.RequireFromString("1099.90").Equal(got.Total()))
}

func (s *PgxRepositorySuite) TestBudget_FailedItemRollsBack() {
	_, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("Broken", "Acme", item("Ok", 1, "10"), item("Bad", 0, "10")))
	s.Require().Error(err)

	s.Zero(s.count("orcamentos"))
	s.Zero(s.count("servicos_orcamento"))
}

func (s *PgxRepositorySuite) TestBudget_ListLoadsItemsPerBudget() {
	first, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("Logo", "Beta Ltda", item("Arte", 1, "100")))
	s.Require().NoError(err)
	second, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("Video", "acme", item("Edicao", 1, "100"), item("Trilha", 2, "50")))
	s.Require().NoError(err)
	s.Require().NoError(s.repos.BudgetRepo.UpdateBudgetStatus(s.ctx, second.ID, domain.BudgetAccepted))

	all, err := s.repos.BudgetRepo.ListBudgets(s.ctx, domain.BudgetFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	byID := map[int64]domain.Budget{all[0].ID: all[0], all[1].ID: all[1]}
	s.Len(byID[first.ID].Items, 1)
	s.Len(byID[second.ID].Items, 2)

	accepted, err := s.repos.BudgetRepo.ListBudgets(s.ctx, domain.BudgetFilter{Status: "aceito", Text: "VIDEO"})
	s.Require().NoError(err)
	s.Require().Len(accepted, 1)
	s.Equal(second.ID, accepted[0].ID)

	clients, err := s.repos.BudgetRepo.ListBudgetClients(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Beta Ltda", "acme"}, clients)
}

func (s *PgxRepositorySuite) TestBudget_DeleteAndCascade() {
	kept, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("A", "Acme", item("I", 1, "10")))
	s.Require().NoError(err)
	dropped, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("B", "Acme", item("I", 1, "10")))
	s.Require().NoError(err)

	s.Require().NoError(s.repos.BudgetRepo.DeleteBudget(s.ctx, dropped.ID))
	s.ErrorIs(s.repos.BudgetRepo.DeleteBudget(s.ctx, dropped.ID), apperrors.ErrNotFound)
	s.Equal(1, s.count("servicos_orcamento"))

	_, err = s.pool.Exec(s.ctx, `DELETE FROM orcamentos WHERE id = $1`, kept.ID)
	s.Require().NoError(err)
	s.Zero(s.count("servicos_orcamento"))
}

func (s *PgxRepositorySuite) TestBudget_Purge() {
	for range 3 {
		_, err := s.repos.BudgetRepo.SaveBudget(s.ctx, newBudget("B", "C", item("I", 1, "1")))
		s.Require().NoError(err)
	}
	n, err := s.repos.BudgetRepo.PurgeBudgets(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(3, n)
	s.Zero(s.count("servicos_orcamento"))
}

func (s *PgxRepositorySuite) TestContract_FiltersAndOrder() {
	save := func(client string, start, end, uploaded time.Time) int64 {
		id, err := s.repos.ContractRepo.SaveContract(s.ctx, domain.Contract{
			Title:            "Contrato",
			Client:           client,
			Amount:           decimal.RequireFromString("3000"),
			StartDate:        start,
			EndDate:          end,
			OriginalFilename: "contrato.pdf",
			StoredFilePath:   "/tmp/contrato.pdf",
			UploadedAt:       uploaded,
		})
		s.Require().NoError(err)
		return id
	}
	older := save("Acme", date(2025, 1, 1), date(2025, 12, 31), time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	newer := save("Beta", date(2025, 3, 1), date(2025, 3, 31), time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))

	all, err := s.repos.ContractRepo.ListContracts(s.ctx, domain.ContractFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(newer, all[0].ID)

	bounded, err := s.repos.ContractRepo.ListContracts(s.ctx, domain.ContractFilter{
		Client:        "bet",
		StartDateFrom: ptr(date(2025, 3, 1)),
		EndDateTo:     ptr(date(2025, 3, 31)),
	})
	s.Require().NoError(err)
	s.Require().Len(bounded, 1)
	s.Equal(newer, bounded[0].ID)

	s.Require().NoError(s.repos.ContractRepo.DeleteContract(s.ctx, older))
	s.ErrorIs(s.repos.ContractRepo.DeleteContract(s.ctx, older), apperrors.ErrNotFound)
}

func (s *PgxRepositorySuite) TestTask_AgendaOrderAndFilters() {
	save := func(title string, day time.Time, clock *domain.ClockTime, kind domain.TaskKind) int64 {
		id, err := s.repos.TaskRepo.SaveTask(s.ctx, domain.Task{Title: title, Kind: kind, Date: day, Time: clock, CreatedAt: time.Now().UTC()})
		s.Require().NoError(err)
		return id
	}
	save("no time", date(2025, 5, 10), nil, domain.TaskMeeting)
	save("afternoon", date(2025, 5, 10), &domain.ClockTime{Hour: 14}, domain.TaskMeeting)
	morning := save("morning", date(2025, 5, 10), &domain.ClockTime{Hour: 9, Minute: 30}, domain.TaskCapture)

	got, err := s.repos.TaskRepo.ListTasks(s.ctx, domain.TaskFilter{})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("morning", got[0].Title)
	s.Equal("afternoon", got[1].Title)
	s.Nil(got[2].Time)

	s.Require().NoError(s.repos.TaskRepo.UpdateTaskDone(s.ctx, morning, true))
	done, err := s.repos.TaskRepo.ListTasks(s.ctx, domain.TaskFilter{Done: ptr(true), Kind: "captacao"})
	s.Require().NoError(err)
	s.Require().Len(done, 1)
	s.Equal(morning, done[0].ID)

	s.ErrorIs(s.repos.TaskRepo.DeleteTask(s.ctx, 999), apperrors.ErrNotFound)
}
