package memory

import (
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/repository"
)

// NewProjectStore creates the in-memory project store. Projects need no
// business-key uniqueness, so the generic store is used directly.
func NewProjectStore(logger *logrus.Logger) *Store[*entity.Project] {
	return NewStore[*entity.Project]("project", logger)
}

var _ repository.ProjectRepository = (*Store[*entity.Project])(nil)
