// internal/domain/entity/user.go
package entity

import (
	"time"
)

// User is an application account. PasswordHash is nil for accounts created
// through Google federation, which never log in with a local password.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash *string   `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}
