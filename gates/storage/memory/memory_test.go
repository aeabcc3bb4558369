package memory_test

import (
	"context"
	"errors"
	"testing"

	"exlog/domain"
	"exlog/gates/storage/memory"
)

func TestAddAndGetUser(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	user, err := db.AddUser(ctx, domain.User{Username: "alice"})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := db.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "alice" || len(got.Log) != 0 {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestAddUserDuplicate(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	if _, err := db.AddUser(ctx, domain.User{Username: "alice"}); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if _, err := db.AddUser(ctx, domain.User{Username: "alice"}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestFindByUsername(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	if _, err := db.FindByUsername(ctx, "alice"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	added, _ := db.AddUser(ctx, domain.User{Username: "alice"})
	got, err := db.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if got.ID != added.ID {
		t.Fatalf("expected id %s, got %s", added.ID, got.ID)
	}
}

func TestGetUsersProjection(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	alice, _ := db.AddUser(ctx, domain.User{Username: "alice"})
	if err := db.AppendExercise(ctx, alice.ID, domain.Exercise{Description: "run", Duration: 30, Date: "2024-01-01"}); err != nil {
		t.Fatalf("AppendExercise: %v", err)
	}

	users, err := db.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Log != nil {
		t.Fatalf("listing must not carry logs: %+v", users[0])
	}
}

func TestAppendExerciseOrder(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	alice, _ := db.AddUser(ctx, domain.User{Username: "alice"})
	for _, desc := range []string{"run", "swim", "row"} {
		if err := db.AppendExercise(ctx, alice.ID, domain.Exercise{Description: desc, Duration: 10, Date: "2024-01-01"}); err != nil {
			t.Fatalf("AppendExercise: %v", err)
		}
	}

	got, _ := db.GetUser(ctx, alice.ID)
	if len(got.Log) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.Log))
	}
	for i, desc := range []string{"run", "swim", "row"} {
		if got.Log[i].Description != desc {
			t.Fatalf("entry %d: expected %s, got %s", i, desc, got.Log[i].Description)
		}
	}
}

func TestAppendExerciseUnknownUser(t *testing.T) {
	db := memory.New()
	err := db.AppendExercise(context.Background(), "missing", domain.Exercise{Description: "run", Duration: 10, Date: "2024-01-01"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
