package memory

import (
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/pkg/apierrors"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newProject(title string) *entity.Project {
	return &entity.Project{ID: uuid.New(), CreatedAt: 1700000000000, Title: title}
}

func TestStoreSaveAndGetByID(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	p := newProject("alpha")

	saved, err := store.Save(p)
	require.NoError(t, err)
	require.Equal(t, p, saved)

	got, err := store.GetByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, "alpha", got.Title)
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	id := uuid.New()

	_, err := store.GetByID(id)
	require.Error(t, err)
	require.True(t, apierrors.IsNotFound(err))
	require.Contains(t, err.Error(), id.String())
}

func TestStoreSaveAppendsDuplicates(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	p := newProject("alpha")

	_, err := store.Save(p)
	require.NoError(t, err)
	_, err = store.Save(p)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
}

func TestStoreGetAllPreservesInsertionOrder(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := store.Save(newProject(title))
		require.NoError(t, err)
	}

	all, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, title := range titles {
		require.Equal(t, title, all[i].Title)
	}
}

func TestStoreGetAllReturnsSnapshot(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	_, err := store.Save(newProject("alpha"))
	require.NoError(t, err)

	all, err := store.GetAll()
	require.NoError(t, err)
	all = append(all, newProject("rogue"))
	_ = all

	again, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, again, 1)
}

func TestStoreUpdateReplacesInPlace(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	first := newProject("first")
	second := newProject("second")
	_, err := store.Save(first)
	require.NoError(t, err)
	_, err = store.Save(second)
	require.NoError(t, err)

	replacement := &entity.Project{ID: first.ID, CreatedAt: first.CreatedAt, Title: "renamed"}
	updated, err := store.Update(replacement)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)

	all, err := store.GetAll()
	require.NoError(t, err)
	require.Equal(t, "renamed", all[0].Title)
	require.Equal(t, "second", all[1].Title)
}

func TestStoreUpdateNotFound(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	ghost := newProject("ghost")

	_, err := store.Update(ghost)
	require.True(t, apierrors.IsNotFound(err))

	// repeating the failed update produces the same failure
	_, err2 := store.Update(ghost)
	require.Equal(t, err.Error(), err2.Error())
	require.Equal(t, 0, store.Len())
}

func TestStoreRemove(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	p := newProject("alpha")
	_, err := store.Save(p)
	require.NoError(t, err)

	require.NoError(t, store.Remove(p.ID))
	require.Equal(t, 0, store.Len())

	err = store.Remove(p.ID)
	require.True(t, apierrors.IsNotFound(err))
	err = store.Remove(p.ID)
	require.True(t, apierrors.IsNotFound(err))
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := NewProjectStore(newTestLogger())
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Save(newProject("concurrent"))
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, n, store.Len())
}
