package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/event"
	"github.com/vespasoft/taskhub/internal/infrastructure/memory"
	"github.com/vespasoft/taskhub/pkg/apierrors"
	"github.com/vespasoft/taskhub/pkg/helpers"
)

type projectFixture struct {
	users    *UserService
	projects *ProjectService
	store    *memory.Store[*entity.Project]
	recorder *eventRecorder
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	logger := newTestLogger()
	userStore := memory.NewUserStore(logger)
	projectStore := memory.NewProjectStore(logger)
	rec := &eventRecorder{}
	return &projectFixture{
		users:    NewUserService(userStore, rec, helpers.PlainScheme{}, logger),
		projects: NewProjectService(userStore, projectStore, rec, logger),
		store:    projectStore,
		recorder: rec,
	}
}

func (f *projectFixture) createUser(t *testing.T) *entity.User {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), "vespasoft", "vespasoft@gmail.com", "1m4*5Aa78@", "")
	require.NoError(t, err)
	return u
}

func TestCreateProject(t *testing.T) {
	f := newProjectFixture(t)
	u := f.createUser(t)

	p, err := f.projects.CreateProject(context.Background(), u.ID.String(), "Project 000001", "This is my favorite project", nil, nil)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, p.ID)
	require.Equal(t, "Project 000001", p.Title)
	require.Equal(t, "This is my favorite project", p.Description)
	require.Equal(t, *u, p.CreatedBy)
	require.NotZero(t, p.CreatedAt)

	events := f.recorder.all()
	require.Len(t, events, 2) // user.created, project.created
	created, ok := events[1].(event.ProjectCreated)
	require.True(t, ok)
	require.Equal(t, u.ID, created.CreatedBy.ID)
	require.Equal(t, p.ID, created.Project.ID)
}

func TestCreateProjectUnknownCreator(t *testing.T) {
	f := newProjectFixture(t)

	_, err := f.projects.CreateProject(context.Background(), uuid.NewString(), "Project 000001", "desc", nil, nil)
	require.Equal(t, 400, apierrors.CodeOf(err))
	require.EqualError(t, err, invalidCreatorIDMessage)

	_, err = f.projects.CreateProject(context.Background(), "not-a-uuid", "Project 000001", "desc", nil, nil)
	require.Equal(t, 400, apierrors.CodeOf(err))

	require.Zero(t, f.store.Len())
	require.Empty(t, f.recorder.all())
}

func TestCreateProjectWithTasks(t *testing.T) {
	f := newProjectFixture(t)
	u := f.createUser(t)

	tasks := []entity.Task{{
		ID:          uuid.New(),
		Title:       "first task",
		Description: "do the thing",
		Priority:    entity.PriorityHigh,
		Status:      entity.StatusInProgress,
	}}
	p, err := f.projects.CreateProject(context.Background(), u.ID.String(), "Project 000001", "desc", []entity.User{*u}, tasks)
	require.NoError(t, err)
	require.Equal(t, tasks, p.Tasks)
	require.Equal(t, []entity.User{*u}, p.Members)
}

func TestGetAllProjectsFiltersByCreator(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	u := f.createUser(t)
	other, err := f.users.CreateUser(ctx, "other", "other@gmail.com", "1m4*5Aa78@", "")
	require.NoError(t, err)

	first, err := f.projects.CreateProject(ctx, u.ID.String(), "Project 000001", "a", nil, nil)
	require.NoError(t, err)
	_, err = f.projects.CreateProject(ctx, other.ID.String(), "Project 000002", "b", nil, nil)
	require.NoError(t, err)
	second, err := f.projects.CreateProject(ctx, u.ID.String(), "Project 000003", "c", nil, nil)
	require.NoError(t, err)

	list, err := f.projects.GetAllProjects(u.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 2)
	// insertion order is preserved
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
}

func TestGetAllProjectsEmpty(t *testing.T) {
	f := newProjectFixture(t)

	list, err := f.projects.GetAllProjects(uuid.NewString())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateProject(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	u := f.createUser(t)

	p, err := f.projects.CreateProject(ctx, u.ID.String(), "Project 000001", "This is my favorite project", nil, nil)
	require.NoError(t, err)

	updated, err := f.projects.UpdateProject(p.ID.String(), "Project 000001", "This is my favorite project updated", nil, nil)
	require.NoError(t, err)
	require.Equal(t, p.ID, updated.ID)
	require.Equal(t, p.CreatedBy, updated.CreatedBy)
	require.Equal(t, p.CreatedAt, updated.CreatedAt)
	require.Equal(t, "This is my favorite project updated", updated.Description)

	stored, err := f.store.GetByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, "This is my favorite project updated", stored.Description)
}

func TestUpdateProjectUnknown(t *testing.T) {
	f := newProjectFixture(t)

	_, err := f.projects.UpdateProject(uuid.NewString(), "t", "d", nil, nil)
	require.Equal(t, 400, apierrors.CodeOf(err))
	require.EqualError(t, err, invalidProjectIDMessage)

	_, err = f.projects.UpdateProject("not-a-uuid", "t", "d", nil, nil)
	require.Equal(t, 400, apierrors.CodeOf(err))
}

func TestDeleteProject(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	u := f.createUser(t)

	p, err := f.projects.CreateProject(ctx, u.ID.String(), "Project 000001", "d", nil, nil)
	require.NoError(t, err)

	require.NoError(t, f.projects.DeleteProject(p.ID.String()))
	require.Zero(t, f.store.Len())

	err = f.projects.DeleteProject(p.ID.String())
	require.True(t, apierrors.IsNotFound(err))

	err = f.projects.DeleteProject("not-a-uuid")
	require.Equal(t, 400, apierrors.CodeOf(err))
}

// TestProjectLifecycle walks the whole flow: register a user, create a
// project, update its description and read it back through the listing.
func TestProjectLifecycle(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	u, err := f.users.CreateUser(ctx, "vespasoft", "vespasoft@gmail.com", "1m4*5Aa78@", "")
	require.NoError(t, err)

	p, err := f.projects.CreateProject(ctx, u.ID.String(), "Project 000001", "This is my favorite project", nil, nil)
	require.NoError(t, err)

	_, err = f.projects.UpdateProject(p.ID.String(), p.Title, "This is my favorite project updated", nil, nil)
	require.NoError(t, err)

	list, err := f.projects.GetAllProjects(u.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Project 000001", list[0].Title)
	require.Equal(t, "This is my favorite project updated", list[0].Description)

	names := make([]string, 0, len(f.recorder.all()))
	for _, e := range f.recorder.all() {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{"user.created", "project.created"}, names)
}
