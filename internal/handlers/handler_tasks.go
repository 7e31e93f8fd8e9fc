package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/middleware"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/utils/filters"
)

const msgTaskNotFound = "Tarefa não encontrada"

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tarefas")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.GET("/estatisticas", h.statistics)
		tasks.GET("/calendario/:ano/:mes", h.calendar)
		tasks.PUT("/:id/concluir", h.completeTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// listTasks godoc
// @Summary List tasks
// @Description Lists tasks by date, then time (tasks without a time last)
// @Tags tarefas
// @Produce json
// @Param data_inicio query string false "Lower bound (YYYY-MM-DD)"
// @Param data_fim query string false "Upper bound (YYYY-MM-DD)"
// @Param tipo query string false "captacao, edicao or reuniao"
// @Param concluida query string false "true for done tasks, anything else for pending"
// @Success 200 {object} dto.ListTasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tarefas [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := filters.ParseTaskFilter(c.Request.URL.Query())
	if err != nil {
		writeError(c, logger, err, "Invalid task filter")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		writeError(c, logger, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// createTask godoc
// @Summary Create a task
// @Tags tarefas
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskMutationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tarefas [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaskRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid task request")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		writeError(c, logger, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.TaskMutationResponse{
		Success: true,
		Message: "Tarefa criada com sucesso",
		Tarefa:  dto.ToTaskResponse(task),
	})
}

// completeTask godoc
// @Summary Mark a task done or pending
// @Tags tarefas
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param body body dto.CompleteTaskRequest true "Done flag"
// @Success 200 {object} dto.TaskMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas/{id}/concluir [put]
func (h *taskHandler) completeTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgTaskNotFound)
	if !ok {
		return
	}

	var req dto.CompleteTaskRequest
	if err := dto.BindJSON(c, &req); err != nil {
		writeError(c, logger, err, "Invalid task completion request")
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), id, req.Concluida)
	if err != nil {
		writeError(c, logger, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.TaskMutationResponse{
		Success: true,
		Message: "Status da tarefa atualizado com sucesso",
		Tarefa:  dto.ToTaskResponse(task),
	})
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tarefas
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tarefas/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, "id", msgTaskNotFound)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		writeError(c, logger, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Tarefa removida com sucesso"})
}

// calendar godoc
// @Summary Tasks of a month grouped by day
// @Tags tarefas
// @Produce json
// @Param ano path int true "Year (2000-2100)"
// @Param mes path int true "Month (1-12)"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tarefas/calendario/{ano}/{mes} [get]
func (h *taskHandler) calendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// unparsable values fall through to the range checks as 0
	year, _ := strconv.Atoi(c.Param("ano"))
	month, _ := strconv.Atoi(c.Param("mes"))

	cal, err := h.taskService.TaskCalendar(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, logger, err, "Failed to build task calendar")
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarResponse(cal))
}

// statistics godoc
// @Summary Task completion statistics
// @Tags tarefas
// @Produce json
// @Param data_inicio query string false "Lower bound (YYYY-MM-DD)"
// @Param data_fim query string false "Upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.TaskStatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tarefas/estatisticas [get]
func (h *taskHandler) statistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := filters.ParseTaskDateRange(c.Request.URL.Query())
	if err != nil {
		writeError(c, logger, err, "Invalid task filter")
		return
	}

	stats, err := h.taskService.TaskStatistics(c.Request.Context(), filter)
	if err != nil {
		writeError(c, logger, err, "Failed to compute task statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatsResponse(stats))
}
