package repository

import (
	"github.com/google/uuid"

	"github.com/vespasoft/taskhub/internal/domain/entity"
)

// UserRepository defines the interface for user storage operations. Save
// enforces the email/username uniqueness constraint.
type UserRepository interface {
	Save(u *entity.User) (*entity.User, error)
	Update(u *entity.User) (*entity.User, error)
	GetByID(id uuid.UUID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

// ProjectRepository defines the interface for project storage operations.
type ProjectRepository interface {
	Save(p *entity.Project) (*entity.Project, error)
	Update(p *entity.Project) (*entity.Project, error)
	GetByID(id uuid.UUID) (*entity.Project, error)
	GetAll() ([]*entity.Project, error)
	Remove(id uuid.UUID) error
}
