package mapping

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/models"
)

// ToModelTask converts a domain Task to a model Task
func ToModelTask(d domain.Task) models.Task {
	var clock *string
	if d.Time != nil {
		s := d.Time.String()
		clock = &s
	}
	return models.Task{
		ID:          d.ID,
		Title:       d.Title,
		Kind:        string(d.Kind),
		Date:        d.Date,
		Time:        clock,
		Client:      d.Client,
		Location:    d.Location,
		Description: d.Description,
		Done:        d.Done,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainTask converts a model Task to a domain Task. A stored time that
// does not parse as HH:MM is treated as absent.
func ToDomainTask(m models.Task) domain.Task {
	var clock *domain.ClockTime
	if m.Time != nil && *m.Time != "" {
		if c, err := domain.ParseClockTime(*m.Time); err == nil {
			clock = &c
		}
	}
	return domain.Task{
		ID:          m.ID,
		Title:       m.Title,
		Kind:        domain.TaskKind(m.Kind),
		Date:        m.Date.UTC(),
		Time:        clock,
		Client:      m.Client,
		Location:    m.Location,
		Description: m.Description,
		Done:        m.Done,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// ToDomainTaskSlice converts a slice of model Tasks to domain Tasks
func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}
