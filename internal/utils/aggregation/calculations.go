// Package aggregation reduces record sets into summaries. Every function here
// is pure: the callers fetch the records, these only fold them.
package aggregation

import (
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	MinCalendarYear = 2000
	MaxCalendarYear = 2100
)

var hundred = decimal.NewFromInt(100)

// SummarizeEntries folds entries into totals and per-category sums in a single pass.
// Categories appear only if at least one entry uses them.
func SummarizeEntries(entries []domain.FinancialEntry) domain.FinancialSummary {
	summary := domain.FinancialSummary{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		ByCategory:   make(map[string]domain.CategoryTotals),
	}

	for _, e := range entries {
		cat, ok := summary.ByCategory[e.Category]
		if !ok {
			cat = domain.CategoryTotals{Inflow: decimal.Zero, Outflow: decimal.Zero}
		}
		switch e.Kind {
		case domain.Inflow:
			summary.TotalInflow = summary.TotalInflow.Add(e.Amount)
			cat.Inflow = cat.Inflow.Add(e.Amount)
		case domain.Outflow:
			summary.TotalOutflow = summary.TotalOutflow.Add(e.Amount)
			cat.Outflow = cat.Outflow.Add(e.Amount)
		}
		summary.ByCategory[e.Category] = cat
	}

	summary.NetCash = summary.TotalInflow.Sub(summary.TotalOutflow)
	return summary
}

// TaskStatistics counts done and pending tasks and computes the completion
// percentage rounded to one decimal place (0 when there are no tasks).
// Unknown kinds count towards the total but not towards ByKind.
func TaskStatistics(tasks []domain.Task) domain.TaskStats {
	stats := domain.TaskStats{
		Total:          len(tasks),
		CompletionRate: decimal.Zero,
		ByKind:         make(map[domain.TaskKind]int, len(domain.TaskKinds)),
	}
	for _, k := range domain.TaskKinds {
		stats.ByKind[k] = 0
	}

	for _, t := range tasks {
		if t.Done {
			stats.Done++
		}
		if t.Kind.IsValid() {
			stats.ByKind[t.Kind]++
		}
	}
	stats.Pending = stats.Total - stats.Done

	if stats.Total > 0 {
		stats.CompletionRate = decimal.NewFromInt(int64(stats.Done)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(stats.Total))).
			Round(1)
	}
	return stats
}

// MonthRange returns the half-open date range [first day of month, first day
// of next month). December rolls over to January of the following year.
func MonthRange(year, month int) (from, before time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("Mês inválido")
	}
	if year < MinCalendarYear || year > MaxCalendarYear {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("Ano inválido")
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if month == 12 {
		before = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		before = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return from, before, nil
}

// GroupByDay buckets tasks by day of month keeping their input order.
// Days without tasks are absent from the result.
func GroupByDay(tasks []domain.Task) map[int][]domain.Task {
	days := make(map[int][]domain.Task)
	for _, t := range tasks {
		day := t.Date.Day()
		days[day] = append(days[day], t)
	}
	return days
}
