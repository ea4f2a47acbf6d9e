package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/event"
	"github.com/vespasoft/taskhub/internal/domain/repository"
	"github.com/vespasoft/taskhub/pkg/apierrors"
	"github.com/vespasoft/taskhub/pkg/helpers"
)

const invalidProjectIDMessage = "the project id is not valid or does not exist"
const invalidCreatorIDMessage = "the user id is not valid or does not exist"

// ProjectService owns project creation, listing, update and deletion. Project
// reads and writes go through the project store; the creator is resolved
// through the user store and snapshotted into the project.
type ProjectService struct {
	Users    repository.UserRepository
	Projects repository.ProjectRepository
	Bus      Publisher
	Logger   *logrus.Logger
}

func NewProjectService(users repository.UserRepository, projects repository.ProjectRepository, bus Publisher, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Users: users, Projects: projects, Bus: bus, Logger: logger}
}

// CreateProject resolves the creator, saves a new project and publishes
// ProjectCreated. A creator that cannot be resolved fails the whole call with
// a domain error; the underlying store error is not leaked.
func (s *ProjectService) CreateProject(ctx context.Context, createdBy, title, description string, members []entity.User, tasks []entity.Task) (*entity.Project, error) {
	id, err := uuid.Parse(createdBy)
	if err != nil {
		return nil, apierrors.BadRequest(invalidCreatorIDMessage)
	}
	creator, err := s.Users.GetByID(id)
	if err != nil {
		return nil, apierrors.BadRequest(invalidCreatorIDMessage)
	}

	p := &entity.Project{
		ID:          uuid.New(),
		CreatedAt:   helpers.NowMillis(),
		CreatedBy:   *creator,
		Title:       title,
		Description: description,
		Members:     members,
		Tasks:       tasks,
	}
	saved, err := s.Projects.Save(p)
	if err != nil {
		return nil, err
	}

	if err := s.Bus.Publish(ctx, event.ProjectCreated{CreatedBy: *creator, Project: *saved}); err != nil {
		s.Logger.WithError(err).WithField("project_id", saved.ID).Warn("publishing event failed")
	}
	return saved, nil
}

// GetAllProjects returns the projects created by the given user, in store
// order.
func (s *ProjectService) GetAllProjects(userID string) ([]*entity.Project, error) {
	all, err := s.Projects.GetAll()
	if err != nil {
		s.Logger.WithError(err).Error("listing projects failed")
		return nil, apierrors.Internal("unexpected error listing projects")
	}
	out := make([]*entity.Project, 0, len(all))
	for _, p := range all {
		if p.CreatedBy.ID.String() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateProject replaces title, description, members and tasks of an existing
// project, preserving its identifier, creator and creation timestamp.
func (s *ProjectService) UpdateProject(projectID, title, description string, members []entity.User, tasks []entity.Task) (*entity.Project, error) {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return nil, apierrors.BadRequest(invalidProjectIDMessage)
	}
	existing, err := s.Projects.GetByID(id)
	if err != nil {
		return nil, apierrors.BadRequest(invalidProjectIDMessage)
	}

	updated := *existing
	updated.Title = title
	updated.Description = description
	updated.Members = members
	updated.Tasks = tasks
	return s.Projects.Update(&updated)
}

// DeleteProject delegates to the store; not-found surfaces unchanged.
func (s *ProjectService) DeleteProject(projectID string) error {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return apierrors.BadRequest(invalidProjectIDMessage)
	}
	return s.Projects.Remove(id)
}
