package storage

import (
	"context"
	"errors"
	"log/slog"

	"exlog/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store implements domain.UserStore on a MongoDB users collection.
type Store struct {
	users *mongo.Collection
	log   *slog.Logger
}

var _ domain.UserStore = (*Store)(nil)

func NewStore(db *mongo.Database, log *slog.Logger) *Store {
	return &Store{
		users: db.Collection("users"),
		log:   log,
	}
}

// EnsureIndexes creates the unique username index. It backs up the
// lookup-before-insert check in the service, so two concurrent
// registrations of one name cannot both land.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	const op = "storage.Mongo.EnsureIndexes"
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		s.log.Error(op, "err", err)
		return err
	}
	s.log.Debug(op, "index", "username unique")
	return nil
}

func (s *Store) FindByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	const op = "storage.Mongo.FindByUsername"
	var doc user
	err := s.users.FindOne(ctx, bson.M{"username": string(username)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		s.log.Error(op, "err", err)
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

func (s *Store) AddUser(ctx context.Context, duser domain.User) (domain.User, error) {
	const op = "storage.Mongo.AddUser"
	doc := user{
		Username: string(duser.Username),
		Log:      []exercise{},
	}
	res, err := s.users.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return domain.User{}, domain.ErrUsernameTaken
	}
	if err != nil {
		s.log.Error(op, "err", err)
		return domain.User{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		s.log.Error(op, "err", "inserted id is not an ObjectID")
		return domain.User{}, errors.New("unexpected inserted id type")
	}
	duser.ID = domain.UserID(oid.Hex())
	duser.Log = []domain.Exercise{}
	s.log.Debug(op+": added user", "id", duser.ID)
	return duser, nil
}

// GetUsers lists every user projected to id and username; logs stay on
// the server.
func (s *Store) GetUsers(ctx context.Context) ([]domain.User, error) {
	const op = "storage.Mongo.GetUsers"
	cur, err := s.users.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"username": 1}))
	if err != nil {
		s.log.Error(op, "err", err)
		return nil, err
	}
	var docs []user
	if err := cur.All(ctx, &docs); err != nil {
		s.log.Error(op, "err", err)
		return nil, err
	}
	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, domain.User{
			ID:       domain.UserID(doc.ID.Hex()),
			Username: domain.Username(doc.Username),
		})
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	const op = "storage.Mongo.GetUser"
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		// malformed ids behave like missing users
		return domain.User{}, domain.ErrUserNotFound
	}
	var doc user
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		s.log.Error(op, "err", err)
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

// AppendExercise pushes one log entry atomically, so concurrent appends
// to the same user never overwrite each other.
func (s *Store) AppendExercise(ctx context.Context, id domain.UserID, ex domain.Exercise) error {
	const op = "storage.Mongo.AppendExercise"
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := s.users.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"log": fromDomainExercise(ex)}})
	if err != nil {
		s.log.Error(op, "err", err)
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
