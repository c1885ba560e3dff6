package handler

import (
	"net/http"

	"study-group-service/api"
	"study-group-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TaskHandler обрабатывает HTTP-запросы для задач групп
type TaskHandler struct {
	*BaseHandler
	taskUseCase domain.TaskUseCase
}

// NewTaskHandler создает новый экземпляр TaskHandler
func NewTaskHandler(groupUseCase domain.GroupUseCase, taskUseCase domain.TaskUseCase, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		BaseHandler: NewBaseHandler(groupUseCase, logger),
		taskUseCase: taskUseCase,
	}
}

// PostTasksCreate обрабатывает создание задачи
func (h *TaskHandler) PostTasksCreate(c echo.Context) error {
	var req api.PostTasksCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create task request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_task").WithFields(logrus.Fields{
		"task_id":  req.TaskId,
		"group_id": req.GroupId,
	})
	logEntry.Info("Creating task")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	task := &domain.Task{
		ID:      req.TaskId,
		GroupID: req.GroupId,
		Title:   req.Title,
	}
	if req.Assignees != nil {
		task.Assignees = *req.Assignees
	}

	created, err := h.taskUseCase.CreateTask(c.Request().Context(), actor, task)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create task")
	}

	logEntry.WithField("assignees_count", len(created.Assignees)).Info("Task created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"task": toAPITask(created),
	})
}

// GetTasksGet обрабатывает получение задачи
func (h *TaskHandler) GetTasksGet(c echo.Context, params api.GetTasksGetParams) error {
	logEntry := h.logRequest(c, "get_task").WithField("task_id", params.TaskId)
	logEntry.Info("Getting task")

	actor, err := h.resolveActor(c, "")
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	task, err := h.taskUseCase.GetTask(c.Request().Context(), actor, params.TaskId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get task")
	}

	logEntry.Info("Task retrieved successfully")
	return c.JSON(http.StatusOK, toAPITask(task))
}

// PostTasksSetStatus обрабатывает смену статуса задачи
func (h *TaskHandler) PostTasksSetStatus(c echo.Context) error {
	var req api.PostTasksSetStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind set status request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "set_task_status").WithFields(logrus.Fields{
		"task_id": req.TaskId,
		"status":  req.Status,
	})
	logEntry.Info("Changing task status")

	// Группа задачи известна только после загрузки, членство подгружает use case
	actor, err := h.resolveActor(c, "")
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	task, err := h.taskUseCase.ChangeStatus(c.Request().Context(), actor, req.TaskId, domain.TaskStatus(req.Status))
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to change task status")
	}

	logEntry.Info("Task status changed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"task": toAPITask(task),
	})
}
