package domain

import "time"

// Comment is a user comment attached to a movie. Likes and LikedBy move in
// lock-step: likes == len(likedBy) after every successful toggle.
type Comment struct {
	ID        string
	MovieName string // free-text key of the movie being commented on
	Body      string
	Author    string // display name of the poster, may be empty
	Likes     int
	LikedBy   []string // actor emails, no duplicates
	CreatedAt time.Time
}

// MembershipState reports which way a toggle flipped.
type MembershipState string

const (
	MembershipAdded   MembershipState = "added"
	MembershipRemoved MembershipState = "removed"
)

// ToggleResult is the outcome of a membership toggle. Count is the new
// counter value where the target set carries one, otherwise the set size.
type ToggleResult struct {
	State MembershipState
	Count int
}
