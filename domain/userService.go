package domain

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type UserService struct {
	store UserStore
	log   *slog.Logger
}

// UserStore is the port to the document store holding the users
// collection.
type UserStore interface {
	FindByUsername(ctx context.Context, username Username) (User, error)
	AddUser(ctx context.Context, user User) (User, error)
	GetUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id UserID) (User, error)
	AppendExercise(ctx context.Context, id UserID, ex Exercise) error
}

// LogQuery carries the raw, still unparsed filter parameters of a log
// request. From/To engage only together; Limit excludes them.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type LogResult struct {
	User    User
	Entries []Exercise
	From    string
	To      string
	Ranged  bool
}

func NewUserService(store UserStore, log *slog.Logger) *UserService {
	return &UserService{
		store: store,
		log:   log,
	}
}

// Register creates a user with an empty log. Usernames are unique; a
// taken name yields ErrUsernameTaken.
func (s UserService) Register(ctx context.Context, username Username) (User, error) {
	const op = "UserService.Register"
	username = Username(strings.TrimSpace(string(username)))
	if username == "" {
		return User{}, ErrNoUsername
	}
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		s.log.Debug(op, "username", username, "result", "already taken")
		return User{}, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		s.log.Error(op, "err", err)
		return User{}, err
	}
	user, err := s.store.AddUser(ctx, User{Username: username, Log: []Exercise{}})
	if err != nil {
		s.log.Error(op, "err", err)
		return User{}, err
	}
	s.log.Info(op+": registered user", "username", user.Username, "id", user.ID)
	return user, nil
}

// Users lists every user projected to id and username.
func (s UserService) Users(ctx context.Context) ([]User, error) {
	const op = "UserService.Users"
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		s.log.Error(op, "err", err)
		return nil, err
	}
	return users, nil
}

// User returns the full user document including its exercise log.
func (s UserService) User(ctx context.Context, id UserID) (User, error) {
	const op = "UserService.User"
	if id == "" {
		return User{}, ErrMissingFields
	}
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		s.log.Debug(op, "id", id, "err", err)
		return User{}, err
	}
	return user, nil
}

// AddExercise validates and appends one exercise to the user's log. An
// omitted date defaults to today; a supplied one must be YYYY-MM-DD.
func (s UserService) AddExercise(ctx context.Context, id UserID, ex Exercise) (User, Exercise, error) {
	const op = "UserService.AddExercise"
	if id == "" || strings.TrimSpace(ex.Description) == "" || ex.Duration <= 0 {
		return User{}, Exercise{}, ErrMissingFields
	}
	if ex.Date == "" {
		ex.Date = Today()
	} else {
		d, err := ParseDate(ex.Date)
		if err != nil {
			return User{}, Exercise{}, err
		}
		ex.Date = d.Format(DateLayout)
	}
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		s.log.Debug(op, "id", id, "err", err)
		return User{}, Exercise{}, err
	}
	if err := s.store.AppendExercise(ctx, user.ID, ex); err != nil {
		s.log.Error(op, "err", err)
		return User{}, Exercise{}, err
	}
	s.log.Info(op+": logged exercise", "id", user.ID, "description", ex.Description)
	return user, ex, nil
}

// Log fetches a user's exercise log with at most one filter applied:
// an inclusive [from, to] calendar-date range, or a limit keeping the
// first N entries in insertion order.
func (s UserService) Log(ctx context.Context, id UserID, q LogQuery) (LogResult, error) {
	const op = "UserService.Log"
	if id == "" {
		return LogResult{}, ErrMissingFields
	}
	hasRange := q.From != "" && q.To != ""
	hasLimit := q.Limit != ""
	if hasRange && hasLimit {
		return LogResult{}, ErrFilterConflict
	}

	var from, to time.Time
	if hasRange {
		var err error
		if from, err = ParseDate(q.From); err != nil {
			return LogResult{}, err
		}
		if to, err = ParseDate(q.To); err != nil {
			return LogResult{}, err
		}
	}
	limit := 0
	if hasLimit {
		n, err := strconv.Atoi(q.Limit)
		if err != nil || n < 1 {
			return LogResult{}, ErrBadLimit
		}
		limit = n
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		s.log.Debug(op, "id", id, "err", err)
		return LogResult{}, err
	}

	entries := user.Log
	switch {
	case hasRange:
		filtered := make([]Exercise, 0, len(entries))
		for _, ex := range entries {
			d, err := ParseDate(ex.Date)
			if err != nil {
				// stored dates are written canonical; skip anything that is not
				continue
			}
			if !d.Before(from) && !d.After(to) {
				filtered = append(filtered, ex)
			}
		}
		entries = filtered
	case limit > 0 && limit < len(entries):
		entries = entries[:limit]
	}

	return LogResult{User: user, Entries: entries, From: q.From, To: q.To, Ranged: hasRange}, nil
}
