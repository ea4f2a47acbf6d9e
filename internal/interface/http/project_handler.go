package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/application"
	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/pkg/helpers"
	"github.com/vespasoft/taskhub/pkg/response"
	"github.com/vespasoft/taskhub/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	CompletionAt int64  `json:"completionAt"`
	Deadline     int64  `json:"deadline"`
	UserID       string `json:"userId" binding:"required"`
	AssignedTo   string `json:"assignedTo" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	Status       int    `json:"status"`
}

type taskPutRequest struct {
	TaskID       string `json:"taskId" binding:"required"`
	CompletionAt int64  `json:"completionAt"`
	Deadline     int64  `json:"deadline"`
	UserID       string `json:"userId" binding:"required"`
	AssignedTo   string `json:"assignedTo" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	Status       int    `json:"status"`
}

type projectRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Tasks       []taskRequest `json:"tasks"`
}

type projectPutRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Tasks       []taskPutRequest `json:"tasks"`
}

type taskResponse struct {
	TaskID       string `json:"taskId"`
	CompletionAt int64  `json:"completionAt"`
	Deadline     int64  `json:"deadline"`
	UserID       string `json:"userId"`
	AssignedTo   string `json:"assignedTo"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	Status       int    `json:"status"`
}

type projectResponse struct {
	ProjectID   string         `json:"projectId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tasks       []taskResponse `json:"tasks"`
}

type projectsResponse struct {
	Projects []projectResponse `json:"projects"`
}

func toProjectResponse(p *entity.Project) projectResponse {
	tasks := make([]taskResponse, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, taskResponse{
			TaskID:       t.ID.String(),
			CompletionAt: t.CompletionAt,
			Deadline:     t.Deadline,
			UserID:       t.CreatedBy.String(),
			AssignedTo:   t.AssignedTo.String(),
			Title:        t.Title,
			Description:  t.Description,
			Priority:     int(t.Priority),
			Status:       int(t.Status),
		})
	}
	return projectResponse{
		ProjectID:   p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Tasks:       tasks,
	}
}

func taskFromRequest(id uuid.UUID, createdBy, assignedTo uuid.UUID, completionAt, deadline int64, title, description string, priority, status int) entity.Task {
	return entity.Task{
		ID:           id,
		CreatedAt:    helpers.NowMillis(),
		CompletionAt: completionAt,
		Deadline:     deadline,
		CreatedBy:    createdBy,
		AssignedTo:   assignedTo,
		Title:        title,
		Description:  description,
		Priority:     entity.PriorityFromCode(priority),
		Status:       entity.StatusFromCode(status),
	}
}

// Create handles POST /api/v1/users/:userId/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	tasks := make([]entity.Task, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		createdBy, err := uuid.Parse(t.UserID)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"userId": "must be a valid UUID"})
			return
		}
		assignedTo, err := uuid.Parse(t.AssignedTo)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"assignedTo": "must be a valid UUID"})
			return
		}
		tasks = append(tasks, taskFromRequest(uuid.New(), createdBy, assignedTo, t.CompletionAt, t.Deadline, t.Title, t.Description, t.Priority, t.Status))
	}

	p, err := h.Svc.CreateProject(c.Request.Context(), c.Param("userId"), req.Title, req.Description, []entity.User{}, tasks)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toProjectResponse(p), "project created")
}

// List handles GET /api/v1/users/:userId/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.GetAllProjects(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := projectsResponse{Projects: make([]projectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectResponse(p))
	}
	response.Success(c, http.StatusOK, out, "projects")
}

// Update handles PUT /api/v1/projects/:projectId.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	tasks := make([]entity.Task, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		taskID, err := uuid.Parse(t.TaskID)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"taskId": "must be a valid UUID"})
			return
		}
		createdBy, err := uuid.Parse(t.UserID)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"userId": "must be a valid UUID"})
			return
		}
		assignedTo, err := uuid.Parse(t.AssignedTo)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"assignedTo": "must be a valid UUID"})
			return
		}
		tasks = append(tasks, taskFromRequest(taskID, createdBy, assignedTo, t.CompletionAt, t.Deadline, t.Title, t.Description, t.Priority, t.Status))
	}

	p, err := h.Svc.UpdateProject(c.Param("projectId"), req.Title, req.Description, []entity.User{}, tasks)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toProjectResponse(p), "project has been updated successfully")
}

// Delete handles DELETE /api/v1/projects/:projectId.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteProject(c.Param("projectId")); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "project has been deleted successfully")
}
