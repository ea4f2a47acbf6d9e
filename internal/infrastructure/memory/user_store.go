package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/repository"
	"github.com/vespasoft/taskhub/pkg/apierrors"
)

// UserStore is the in-memory user collection. Unlike the generic store it
// enforces the email/username uniqueness constraint at save time; the check
// and the append happen under the same lock.
type UserStore struct {
	mu     sync.RWMutex
	users  []*entity.User
	logger *logrus.Logger
}

func NewUserStore(logger *logrus.Logger) *UserStore {
	return &UserStore{logger: logger}
}

func (s *UserStore) Save(u *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return nil, apierrors.Conflict("the user already exists")
		}
	}
	s.users = append(s.users, u)
	s.logger.WithFields(logrus.Fields{
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
	}).Info("user created")
	return u, nil
}

func (s *UserStore) Update(u *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			s.logger.WithFields(logrus.Fields{
				"user_id":  u.ID,
				"username": u.Username,
				"email":    u.Email,
			}).Info("user updated")
			return u, nil
		}
	}
	return nil, apierrors.NotFoundf("there is no user with the userId %s", u.ID)
}

func (s *UserStore) GetByID(id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apierrors.NotFoundf("there is no user with the userId %s", id)
}

func (s *UserStore) GetByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apierrors.NotFoundf("there is no user with the email %s", email)
}

var _ repository.UserRepository = (*UserStore)(nil)
