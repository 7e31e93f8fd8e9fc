// Package filters turns optional query parameters into domain filters.
// Absent or empty parameters impose no constraint; malformed dates fail
// with a validation error naming the offending parameter.
package filters

import (
	"net/url"
	"strings"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// Query parameter names understood by the list endpoints.
const (
	ParamClient    = "cliente"
	ParamDateFrom  = "data_inicio"
	ParamDateTo    = "data_fim"
	ParamStatus    = "status"
	ParamText      = "texto"
	ParamKind      = "tipo"
	ParamCompleted = "concluida"
)

// ParseEntryFilter reads data_inicio/data_fim as an inclusive range on the entry date.
func ParseEntryFilter(q url.Values) (domain.EntryFilter, error) {
	var f domain.EntryFilter
	var err error
	if f.DateFrom, err = optionalDate(q, ParamDateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = optionalDate(q, ParamDateTo); err != nil {
		return f, err
	}
	return f, nil
}

// ParseBudgetFilter reads status, cliente and texto.
func ParseBudgetFilter(q url.Values) domain.BudgetFilter {
	return domain.BudgetFilter{
		Status: strings.TrimSpace(q.Get(ParamStatus)),
		Client: strings.TrimSpace(q.Get(ParamClient)),
		Text:   strings.TrimSpace(q.Get(ParamText)),
	}
}

// ParseContractFilter reads cliente, data_inicio (lower bound on the contract
// start) and data_fim (upper bound on the contract end).
func ParseContractFilter(q url.Values) (domain.ContractFilter, error) {
	f := domain.ContractFilter{Client: strings.TrimSpace(q.Get(ParamClient))}
	var err error
	if f.StartDateFrom, err = optionalDate(q, ParamDateFrom); err != nil {
		return f, err
	}
	if f.EndDateTo, err = optionalDate(q, ParamDateTo); err != nil {
		return f, err
	}
	return f, nil
}

// ParseTaskDateRange reads only data_inicio and data_fim. Statistics use it
// so tipo and concluida never narrow the figures.
func ParseTaskDateRange(q url.Values) (domain.TaskFilter, error) {
	var f domain.TaskFilter
	var err error
	if f.DateFrom, err = optionalDate(q, ParamDateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = optionalDate(q, ParamDateTo); err != nil {
		return f, err
	}
	return f, nil
}

// ParseTaskFilter reads data_inicio, data_fim, tipo and concluida.
// concluida is true only for a case-insensitive "true"; any other non-empty
// value means false.
func ParseTaskFilter(q url.Values) (domain.TaskFilter, error) {
	f, err := ParseTaskDateRange(q)
	if err != nil {
		return f, err
	}
	f.Kind = strings.TrimSpace(q.Get(ParamKind))
	if raw := strings.TrimSpace(q.Get(ParamCompleted)); raw != "" {
		done := strings.EqualFold(raw, "true")
		f.Done = &done
	}
	return f, nil
}

func optionalDate(q url.Values, param string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(param))
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("Formato de data inválido para " + param)
	}
	return &d, nil
}
