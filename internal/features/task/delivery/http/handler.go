package http

import (
	"net/http"

	"taskearn-backend/internal/common/middleware"
	"taskearn-backend/internal/features/task/models"
	"taskearn-backend/internal/features/task/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
	}

	authed := router.Group("/tasks")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/completions", h.ListCompletions)
		authed.POST("/:id/complete", h.CompleteTask)
	}

	admin := router.Group("/tasks")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", h.CreateTask)
		admin.PUT("/:id", h.UpdateTask)
	}
}

// @Summary List active tasks
// @Description All tasks with active=true
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Active tasks"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.Task "Task"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrTaskNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// @Summary Create task
// @Description Create a new task (admin only)
// @Tags tasks
// @Accept json
// @Produce json
// @Security SessionToken
// @Param task body models.TaskCreate true "Task data"
// @Success 201 {object} models.Task "Created task"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Forbidden - not an admin"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input models.TaskCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// @Summary Update task
// @Description Patch task fields, including active flag (admin only)
// @Tags tasks
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "Task ID"
// @Param task body models.TaskUpdate true "Fields to update"
// @Success 200 {object} models.Task "Updated task"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var input models.TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if err == service.ErrTaskNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// @Summary Complete task
// @Description Record a completion for the authenticated user; each task can be completed once per user
// @Tags tasks
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "Task ID"
// @Param submission body models.CompletionCreate true "Submission payload"
// @Success 201 {object} models.Completion "Completion record"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 409 {object} map[string]string "Task already completed"
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
		return
	}

	var input models.CompletionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := h.service.RecordCompletion(c.Request.Context(), c.Param("id"), userID, input.Data)
	if err != nil {
		switch err {
		case service.ErrTaskNotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case service.ErrAlreadyCompleted:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Task already completed"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// @Summary List own completions
// @Description Completions recorded for the authenticated user
// @Tags tasks
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.Completion "Completions"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tasks/completions [get]
func (h *TaskHandler) ListCompletions(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session token required"})
		return
	}

	completions, err := h.service.ListUserCompletions(c.Request.Context(), userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, completions)
}
