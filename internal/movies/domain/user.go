package domain

import "time"

// User is a long-lived account record. Email is the stable identity key used
// for membership sets; usernames are display-only and may collide.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string    // argon2id encoded
	Passcode     *Passcode // pending sign-in passcode (nil when none)

	// Profile attributes, all optional.
	Biography      string
	ProfilePicture string // path/URL only; upload storage lives elsewhere
	GenreInterests string
	Major          string
	Year           string

	Watchlist []string // movie keys, no duplicates

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Passcode is an ephemeral single-use sign-in credential. It exists only
// between issuance and verification, expiry, or a superseding re-issue.
type Passcode struct {
	Value     string
	ExpiresAt time.Time
}

// Expired reports whether the passcode's validity window has passed.
func (p Passcode) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// ProfileUpdate carries the mutable profile fields for a partial update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username       *string
	Biography      *string
	ProfilePicture *string
	GenreInterests *string
	Major          *string
	Year           *string
}

// Empty reports whether the update carries no fields at all.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Biography == nil && u.ProfilePicture == nil &&
		u.GenreInterests == nil && u.Major == nil && u.Year == nil
}

// UserSummary is the public view of a user returned by reverse watchlist
// lookups. It never carries credentials or passcode state.
type UserSummary struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	Biography      string `json:"biography"`
	GenreInterests string `json:"genre_interests"`
	Major          string `json:"major"`
	Year           string `json:"year"`
}

// Summary projects the public fields of a user.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Biography:      u.Biography,
		GenreInterests: u.GenreInterests,
		Major:          u.Major,
		Year:           u.Year,
	}
}
