package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/event"
	"github.com/vespasoft/taskhub/internal/domain/repository"
	"github.com/vespasoft/taskhub/pkg/apierrors"
	"github.com/vespasoft/taskhub/pkg/helpers"
	"github.com/vespasoft/taskhub/pkg/validation"
)

const weakPasswordMessage = "password is not secured: it must have minimum length 6 characters and " +
	"contain at least one letter, one number and one symbol"

const invalidUserIDMessage = "userId is incorrect or it does not exist"

// UserService owns user registration and password updates. Every successful
// mutation publishes a domain event on the bus.
type UserService struct {
	Users  repository.UserRepository
	Bus    Publisher
	Scheme helpers.PasswordScheme
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, bus Publisher, scheme helpers.PasswordScheme, logger *logrus.Logger) *UserService {
	if scheme == nil {
		scheme = helpers.PlainScheme{}
	}
	return &UserService{Users: users, Bus: bus, Scheme: scheme, Logger: logger}
}

// CreateUser validates the input, saves a new user and publishes UserCreated.
// Validation failures are reported before any side effect; a duplicate
// email or username surfaces the store's conflict unchanged.
func (s *UserService) CreateUser(ctx context.Context, username, email, password, profilePicture string) (*entity.User, error) {
	if username == "" {
		return nil, errors.New("username must not be empty")
	}
	if email == "" {
		return nil, errors.New("email must not be empty")
	}
	if !validation.Email(email) {
		return nil, errors.New("email is not valid")
	}
	if !validation.Password(password) {
		return nil, errors.New(weakPasswordMessage)
	}

	stored, err := s.Scheme.Hash(password)
	if err != nil {
		s.Logger.WithError(err).Error("hashing password failed")
		return nil, apierrors.Internal("error saving user")
	}
	if profilePicture == "" {
		profilePicture = entity.DefaultProfilePicture
	}

	u := &entity.User{
		ID:             uuid.New(),
		Email:          email,
		Username:       username,
		Password:       stored,
		ProfilePicture: profilePicture,
	}
	saved, err := s.Users.Save(u)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.UserCreated{UserID: saved.ID, Username: saved.Username, Email: saved.Email})
	return saved, nil
}

// UpdatePassword replaces the stored password after checking the current one.
// The comparison uses the configured scheme; under the default plain scheme
// it is a direct equality check on the stored value.
func (s *UserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == newPassword {
		return apierrors.Conflict("it is not possible to update to an equal password")
	}
	if !validation.Password(newPassword) {
		return apierrors.Conflict(weakPasswordMessage)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return apierrors.BadRequest(invalidUserIDMessage)
	}
	u, err := s.Users.GetByID(id)
	if err != nil {
		return apierrors.BadRequest(invalidUserIDMessage)
	}
	if !s.Scheme.Verify(u.Password, currentPassword) {
		return apierrors.Conflict("current password provided is not correct")
	}

	stored, err := s.Scheme.Hash(newPassword)
	if err != nil {
		s.Logger.WithError(err).Error("hashing password failed")
		return apierrors.Internal("error updating user")
	}
	updated := *u
	updated.Password = stored
	if _, err := s.Users.Update(&updated); err != nil {
		return err
	}

	s.publish(ctx, event.UserPasswordUpdated{UserID: u.ID, Username: u.Username, Email: u.Email})
	return nil
}

// publish delivers the event, logging a failed delivery. The preceding
// mutation is not rolled back on publish failure.
func (s *UserService) publish(ctx context.Context, e event.Event) {
	if err := s.Bus.Publish(ctx, e); err != nil {
		s.Logger.WithError(err).WithField("event", e.Name()).Warn("publishing event failed")
	}
}
