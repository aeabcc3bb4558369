package storage

import (
	"exlog/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type user struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Log      []exercise         `bson:"log"`
}

type exercise struct {
	Description string `bson:"description"`
	Duration    int    `bson:"duration"`
	Date        string `bson:"date"`
}

func (u user) toDomain() domain.User {
	log := make([]domain.Exercise, 0, len(u.Log))
	for _, ex := range u.Log {
		log = append(log, domain.Exercise{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		})
	}
	return domain.User{
		ID:       domain.UserID(u.ID.Hex()),
		Username: domain.Username(u.Username),
		Log:      log,
	}
}

func fromDomainExercise(ex domain.Exercise) exercise {
	return exercise{
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date,
	}
}
