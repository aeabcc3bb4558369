package server

import (
	"fmt"
	"strconv"
	"strings"

	"exlog/domain"
)

type newUserRequest struct {
	Username string `json:"username" form:"username"`
}

type addExerciseRequest struct {
	UserID      string    `json:"userId" form:"userId"`
	Description string    `json:"description" form:"description"`
	Duration    IntString `json:"duration" form:"duration"`
	Date        string    `json:"date" form:"date"`
}

// IntString is an int that also unmarshals from its quoted form, so a
// duration arrives as an integer whether the client sent 30 or "30".
type IntString int

func (n *IntString) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	*n = IntString(v)
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form and
// query values.
func (n *IntString) UnmarshalParam(param string) error {
	if param == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(param)
	if err != nil {
		return fmt.Errorf("not an integer: %q", param)
	}
	*n = IntString(v)
	return nil
}

type userResponse struct {
	ID       domain.UserID   `json:"id"`
	Username domain.Username `json:"username"`
}

type exerciseResponse struct {
	Username    domain.Username `json:"username"`
	ID          domain.UserID   `json:"id"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Date        string          `json:"date"`
}

type exerciseEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	UserID   domain.UserID   `json:"userId"`
	Username domain.Username `json:"username"`
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
	Count    int             `json:"count"`
	Log      []exerciseEntry `json:"log"`
}

type userLogResponse struct {
	ID       domain.UserID   `json:"id"`
	Username domain.Username `json:"username"`
	Count    int             `json:"count"`
	Log      []exerciseEntry `json:"log"`
}

func toEntries(exercises []domain.Exercise) []exerciseEntry {
	entries := make([]exerciseEntry, 0, len(exercises))
	for _, ex := range exercises {
		entries = append(entries, exerciseEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		})
	}
	return entries
}
