package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bruinmovies/server/internal/movies/domain"
	"github.com/bruinmovies/server/internal/movies/store"
)

type usersRepo struct {
	coll *mongo.Collection
}

type passcodeDoc struct {
	Value     string    `bson:"value"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type userDoc struct {
	ID             string       `bson:"_id"`
	Username       string       `bson:"username"`
	Email          string       `bson:"email"`
	PasswordHash   string       `bson:"password_hash"`
	Passcode       *passcodeDoc `bson:"passcode,omitempty"`
	Biography      string       `bson:"biography,omitempty"`
	ProfilePicture string       `bson:"profile_picture,omitempty"`
	GenreInterests string       `bson:"genre_interests,omitempty"`
	Major          string       `bson:"major,omitempty"`
	Year           string       `bson:"year,omitempty"`
	Watchlist      []string     `bson:"watchlist,omitempty"`
	CreatedAt      time.Time    `bson:"created_at"`
	UpdatedAt      time.Time    `bson:"updated_at"`
}

func mapUser(doc userDoc) domain.User {
	u := domain.User{
		ID:             doc.ID,
		Username:       doc.Username,
		Email:          doc.Email,
		PasswordHash:   doc.PasswordHash,
		Biography:      doc.Biography,
		ProfilePicture: doc.ProfilePicture,
		GenreInterests: doc.GenreInterests,
		Major:          doc.Major,
		Year:           doc.Year,
		Watchlist:      doc.Watchlist,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
	if doc.Passcode != nil {
		u.Passcode = &domain.Passcode{
			Value:     doc.Passcode.Value,
			ExpiresAt: doc.Passcode.ExpiresAt,
		}
	}
	return u
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	doc := userDoc{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Biography:      u.Biography,
		ProfilePicture: u.ProfilePicture,
		GenreInterests: u.GenreInterests,
		Major:          u.Major,
		Year:           u.Year,
		Watchlist:      u.Watchlist,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(doc), nil
}

func (r *usersRepo) SetPendingPasscode(ctx context.Context, userID string, pc domain.Passcode) error {
	// Overwrites any prior binding: at most one passcode is valid per
	// identity, and an in-flight older one silently dies here.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"passcode":   passcodeDoc{Value: pc.Value, ExpiresAt: pc.ExpiresAt.UTC()},
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ClearPendingPasscode(ctx context.Context, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$unset": bson.M{"passcode": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.ProfileUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Username != nil {
		set["username"] = *p.Username
	}
	if p.Biography != nil {
		set["biography"] = *p.Biography
	}
	if p.ProfilePicture != nil {
		set["profile_picture"] = *p.ProfilePicture
	}
	if p.GenreInterests != nil {
		set["genre_interests"] = *p.GenreInterests
	}
	if p.Major != nil {
		set["major"] = *p.Major
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ToggleWatchlist flips movieID's membership with filter-guarded updates:
// the membership test lives in the update filter, so a concurrent toggle can
// make an attempt miss but never corrupt the set.
func (r *usersRepo) ToggleWatchlist(ctx context.Context, userID, movieID string) (bool, int, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for i := 0; i < toggleAttempts; i++ {
		// Member: remove it.
		var doc userDoc
		err := r.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": userID, "watchlist": movieID},
			bson.M{"$pull": bson.M{"watchlist": movieID}},
			after,
		).Decode(&doc)
		if err == nil {
			return false, len(doc.Watchlist), nil
		}
		if err != mongo.ErrNoDocuments {
			return false, 0, err
		}

		// Not a member: add it.
		err = r.coll.FindOneAndUpdate(ctx,
			bson.M{"_id": userID, "watchlist": bson.M{"$ne": movieID}},
			bson.M{"$addToSet": bson.M{"watchlist": movieID}},
			after,
		).Decode(&doc)
		if err == nil {
			return true, len(doc.Watchlist), nil
		}
		if err != mongo.ErrNoDocuments {
			return false, 0, err
		}

		// Both filters missed: the user is gone, or a concurrent toggle
		// flipped membership between our two attempts. Distinguish and retry.
		if _, err := r.GetUserByID(ctx, userID); err != nil {
			return false, 0, err
		}
	}

	return false, 0, errToggleContention
}

func (r *usersRepo) AddWatchlistItem(ctx context.Context, userID, movieID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"watchlist": movieID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) RemoveWatchlistItem(ctx context.Context, userID, movieID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"watchlist": movieID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) GetWatchlist(ctx context.Context, userID string) ([]string, error) {
	u, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Watchlist, nil
}

func (r *usersRepo) ListUsersByWatchlistItem(ctx context.Context, movieID string) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{"watchlist": movieID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, mapUser(doc))
	}
	return users, cur.Err()
}
