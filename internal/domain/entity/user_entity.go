package entity

import "github.com/google/uuid"

// DefaultProfilePicture is used when a user signs up without one.
const DefaultProfilePicture = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png"

// User is the aggregate root for the user domain. Email and Username are each
// unique across the user store. Password is stored as produced by the
// configured password scheme (verbatim under the default plain scheme).
type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	Password       string
	ProfilePicture string
}

func (u *User) EntityID() uuid.UUID { return u.ID }
