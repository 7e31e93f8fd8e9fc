package models

import "time"

// Task mirrors a row of the tarefas table. Time is stored as HH:MM text.
type Task struct {
	ID          int64
	Title       string
	Kind        string
	Date        time.Time
	Time        *string
	Client      string
	Location    string
	Description string
	Done        bool
	CreatedAt   time.Time
}
