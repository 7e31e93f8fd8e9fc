package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskKind classifies a scheduled task.
type TaskKind string

const (
	TaskCapture TaskKind = "captacao"
	TaskEditing TaskKind = "edicao"
	TaskMeeting TaskKind = "reuniao"
)

// TaskKinds lists the known kinds in display order.
var TaskKinds = []TaskKind{TaskCapture, TaskEditing, TaskMeeting}

// IsValid reports whether k is one of the known task kinds.
func (k TaskKind) IsValid() bool {
	switch k {
	case TaskCapture, TaskEditing, TaskMeeting:
		return true
	}
	return false
}

// Task is a scheduled piece of work. Only Done changes after creation.
type Task struct {
	ID          int64
	Title       string
	Kind        TaskKind
	Date        time.Time
	Time        *ClockTime
	Client      string
	Location    string
	Description string
	Done        bool
	CreatedAt   time.Time
}

// TaskStats summarizes completion over a set of tasks.
type TaskStats struct {
	Total          int
	Done           int
	Pending        int
	CompletionRate decimal.Decimal
	ByKind         map[TaskKind]int
}

// TaskCalendar groups the tasks of one month by day of month.
type TaskCalendar struct {
	Year  int
	Month int
	Days  map[int][]Task
}
