package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bruinmovies/server/internal/movies/domain"
)

// toggleAttempts bounds the retry loop for filter-guarded toggles. Two
// attempts only fail together when another toggle commits in between, which
// is rare enough that three rounds effectively never all lose.
const toggleAttempts = 3

var errToggleContention = errors.New("mongo: toggle retries exhausted under contention")

type commentsRepo struct {
	coll *mongo.Collection
}

type commentDoc struct {
	ID        string    `bson:"_id"`
	MovieName string    `bson:"movie_name"`
	Body      string    `bson:"body"`
	Author    string    `bson:"author,omitempty"`
	Likes     int       `bson:"likes"`
	LikedBy   []string  `bson:"liked_by,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func mapComment(doc commentDoc) domain.Comment {
	return domain.Comment{
		ID:        doc.ID,
		MovieName: doc.MovieName,
		Body:      doc.Body,
		Author:    doc.Author,
		Likes:     doc.Likes,
		LikedBy:   doc.LikedBy,
		CreatedAt: doc.CreatedAt,
	}
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.coll.InsertOne(ctx, commentDoc{
		ID:        c.ID,
		MovieName: c.MovieName,
		Body:      c.Body,
		Author:    c.Author,
		Likes:     c.Likes,
		LikedBy:   c.LikedBy,
		CreatedAt: c.CreatedAt.UTC(),
	})
	return err
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return mapComment(doc), nil
}

func (r *commentsRepo) ListCommentsByMovie(ctx context.Context, movieName string) ([]domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "likes", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cur, err := r.coll.Find(ctx, bson.M{"movie_name": movieName}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []domain.Comment
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		comments = append(comments, mapComment(doc))
	}
	return comments, cur.Err()
}

// ToggleLike flips actor's membership in liked_by and moves likes with it in
// the same update document, so the counter and the set can never be observed
// out of step. The membership test sits in the update filter rather than in
// application code; the naive read-then-write version loses updates when two
// toggles race.
func (r *commentsRepo) ToggleLike(ctx context.Context, commentID, actor string) (bool, int, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for i := 0; i < toggleAttempts; i++ {
		// Already liked: unlike.
		var doc commentDoc
		err := r.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": commentID, "liked_by": actor},
			bson.M{
				"$pull": bson.M{"liked_by": actor},
				"$inc":  bson.M{"likes": -1},
			},
			after,
		).Decode(&doc)
		if err == nil {
			return false, doc.Likes, nil
		}
		if err != mongo.ErrNoDocuments {
			return false, 0, err
		}

		// Not yet liked: like.
		err = r.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": commentID, "liked_by": bson.M{"$ne": actor}},
			bson.M{
				"$addToSet": bson.M{"liked_by": actor},
				"$inc":      bson.M{"likes": 1},
			},
			after,
		).Decode(&doc)
		if err == nil {
			return true, doc.Likes, nil
		}
		if err != mongo.ErrNoDocuments {
			return false, 0, err
		}

		// Neither filter matched: comment gone, or we raced another toggle.
		if _, err := r.GetCommentByID(ctx, commentID); err != nil {
			return false, 0, err
		}
	}

	return false, 0, errToggleContention
}
