package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/bruinmovies/server/internal/movies/store"
)

const (
	usersCollection    = "users"
	commentsCollection = "comments"

	setupTimeout = 10 * time.Second
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to the document store. The connection is owned by the
// composition root: created once at startup, closed at shutdown, passed down
// to every handler through the Store interface.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Fail fast at startup instead of on the first request.
	pingCtx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ping verifies the store connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ApplyMigrations ensures the indexes the queries rely on. Document stores
// have no schema to migrate; this is the moral equivalent.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
		},
		{
			// Multikey index for the reverse watchlist lookup.
			Keys: bson.D{{Key: "watchlist", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection(commentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "movie_name", Value: 1}, {Key: "likes", Value: -1}},
		},
	})
	return err
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(usersCollection)}
}

func (s *Store) Comments() store.Comments {
	return &commentsRepo{coll: s.db.Collection(commentsCollection)}
}

func mapNotFound(err error) error {
	if err == mongo.ErrNoDocuments {
		return store.ErrNotFound
	}
	return err
}
