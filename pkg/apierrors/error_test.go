package apierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := Conflict("the user already exists")
	require.EqualError(t, err, "the user already exists")
	require.Equal(t, 409, err.Code)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, 404, CodeOf(NotFoundf("no entity with id %s", "abc")))
	require.Equal(t, 400, CodeOf(BadRequest("the user id is not valid or does not exist")))
	require.Equal(t, 500, CodeOf(errors.New("plain failure")))
}

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("saving project: %w", Conflict("blocked"))
	require.Equal(t, 409, CodeOf(err))
	require.True(t, IsConflictClass(err))
}

func TestIsConflictClass(t *testing.T) {
	require.True(t, IsConflictClass(Conflict("dup")))
	require.True(t, IsConflictClass(NotFoundf("missing")))
	require.True(t, IsConflictClass(BadRequest("bad ref")))
	require.False(t, IsConflictClass(Internal("boom")))
	require.False(t, IsConflictClass(errors.New("uncoded")))
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(NotFoundf("gone")))
	require.False(t, IsNotFound(Conflict("dup")))
}
