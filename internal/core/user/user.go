package user

import (
	"fmt"
	"time"
)

type User struct {
	ID             string
	Username       string
	ProfilePicture string // opaque reference, may be empty
	CreatedAt      time.Time
}

func (u *User) String() string {
	return fmt.Sprintf("User(id=%s, username='%s')", u.ID, u.Username)
}
