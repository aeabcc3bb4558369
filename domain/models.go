package domain

import (
	"errors"
	"time"
)

type UserID string
type Username string

type User struct {
	ID       UserID
	Username Username
	Log      []Exercise
}

// Exercise lives only inside a user's log, appended once and never
// edited or removed afterwards.
type Exercise struct {
	Description string
	Duration    int
	Date        string
}

var ErrNoUsername = errors.New("no username provided")
var ErrUsernameTaken = errors.New("Username already in use")
var ErrMissingFields = errors.New("please fill required fields")
var ErrBadDate = errors.New("please provide date as indicated")
var ErrBadLimit = errors.New("limit must be a positive integer")
var ErrFilterConflict = errors.New("Select date or limit filter")
var ErrUserNotFound = errors.New("no such user in database")

// DateLayout is the canonical calendar-date form used in storage and on
// the wire.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return d, nil
}

// Today returns the server's current local calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}
