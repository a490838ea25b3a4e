package user

import "time"

// User is the minimal directory record behind /sap/users; ModifiedAt drives
// the delta-style "modifiedAt gt" filter.
type User struct {
	UserID     string
	Name       string
	Email      string
	Department string
	ModifiedAt time.Time
}
