package dto

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaskRequest is the body of POST /tarefas.
type CreateTaskRequest struct {
	Titulo    string `json:"titulo" binding:"notblank"`
	Tipo      string `json:"tipo" binding:"oneof=captacao edicao reuniao"`
	Data      string `json:"data" binding:"notblank,isodate"`
	Horario   string `json:"horario" binding:"omitempty,clock"`
	Cliente   string `json:"cliente"`
	Local     string `json:"local"`
	Descricao string `json:"descricao"`
}

func (r *CreateTaskRequest) Normalize() {
	trim(&r.Titulo, &r.Tipo, &r.Data, &r.Horario, &r.Cliente, &r.Local, &r.Descricao)
}

// CompleteTaskRequest is the body of PUT /tarefas/{id}/concluir.
// A missing concluida means false.
type CompleteTaskRequest struct {
	Concluida bool `json:"concluida"`
}

func (r *CompleteTaskRequest) Normalize() {}

func init() {
	registerMessages(map[string]string{
		"CreateTaskRequest.Titulo":        "Título é obrigatório",
		"CreateTaskRequest.Tipo":          `Tipo deve ser "captacao", "edicao" ou "reuniao"`,
		"CreateTaskRequest.Data.notblank": "Data é obrigatória",
		"CreateTaskRequest.Data.isodate":  "Formato de data inválido",
		"CreateTaskRequest.Horario":       "Formato de horário inválido (use HH:MM)",
	})
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Titulo      string  `json:"titulo"`
	Tipo        string  `json:"tipo"`
	Data        string  `json:"data"`
	Horario     *string `json:"horario"`
	Cliente     string  `json:"cliente"`
	Local       string  `json:"local"`
	Descricao   string  `json:"descricao"`
	Concluida   bool    `json:"concluida"`
	DataCriacao string  `json:"data_criacao"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO
func ToTaskResponse(t *domain.Task) TaskResponse {
	var clock *string
	if t.Time != nil {
		s := t.Time.String()
		clock = &s
	}
	return TaskResponse{
		ID:          t.ID,
		Titulo:      t.Title,
		Tipo:        string(t.Kind),
		Data:        t.Date.Format(domain.DateLayout),
		Horario:     clock,
		Cliente:     t.Client,
		Local:       t.Location,
		Descricao:   t.Description,
		Concluida:   t.Done,
		DataCriacao: formatTimestamp(t.CreatedAt),
	}
}

func toTaskResponses(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i])
	}
	return res
}

// ListTasksResponse wraps the list of tasks.
type ListTasksResponse struct {
	Tarefas []TaskResponse `json:"tarefas"`
}

// ToListTasksResponse converts a slice of domain.Task to ListTasksResponse DTO
func ToListTasksResponse(tasks []domain.Task) ListTasksResponse {
	return ListTasksResponse{Tarefas: toTaskResponses(tasks)}
}

// TaskMutationResponse is returned after a task is created or its done flag changes.
type TaskMutationResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Tarefa  TaskResponse `json:"tarefa"`
}

// CalendarResponse groups a month's tasks by day of month. encoding/json
// writes the integer day keys as strings.
type CalendarResponse struct {
	Ano        int                    `json:"ano"`
	Mes        int                    `json:"mes"`
	Calendario map[int][]TaskResponse `json:"calendario"`
}

// ToCalendarResponse converts a domain.TaskCalendar to CalendarResponse DTO
func ToCalendarResponse(cal domain.TaskCalendar) CalendarResponse {
	days := make(map[int][]TaskResponse, len(cal.Days))
	for day, tasks := range cal.Days {
		days[day] = toTaskResponses(tasks)
	}
	return CalendarResponse{Ano: cal.Year, Mes: cal.Month, Calendario: days}
}

// TaskStatsByKind has one counter per known task kind.
type TaskStatsByKind struct {
	Captacao int `json:"captacao"`
	Edicao   int `json:"edicao"`
	Reuniao  int `json:"reuniao"`
}

// TaskStatsResponse is the body of GET /tarefas/estatisticas.
type TaskStatsResponse struct {
	TotalTarefas  int             `json:"total_tarefas"`
	Concluidas    int             `json:"concluidas"`
	Pendentes     int             `json:"pendentes"`
	TaxaConclusao decimal.Decimal `json:"taxa_conclusao"`
	PorCategoria  TaskStatsByKind `json:"por_categoria"`
}

// ToTaskStatsResponse converts a domain.TaskStats to TaskStatsResponse DTO
func ToTaskStatsResponse(s domain.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		TotalTarefas:  s.Total,
		Concluidas:    s.Done,
		Pendentes:     s.Pending,
		TaxaConclusao: s.CompletionRate,
		PorCategoria: TaskStatsByKind{
			Captacao: s.ByKind[domain.TaskCapture],
			Edicao:   s.ByKind[domain.TaskEditing],
			Reuniao:  s.ByKind[domain.TaskMeeting],
		},
	}
}
