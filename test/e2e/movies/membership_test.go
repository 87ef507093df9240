package movies_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommentLikeToggleE2E(t *testing.T) {
	baseURL, _ := setupServer(t)

	var created map[string]string
	status := doJSON(t, http.MethodPost, baseURL+"/comments", "", map[string]string{
		"comment":   "Great!",
		"movieName": "Zootopia",
		"user":      "author@example.com",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	commentID := created["commentId"]
	require.NotEmpty(t, commentID)

	type commentView struct {
		CommentID string   `json:"commentId"`
		Likes     int      `json:"likes"`
		LikedBy   []string `json:"likedBy"`
	}

	listComments := func() []commentView {
		var comments []commentView
		status := doJSON(t, http.MethodGet, baseURL+"/comments?movieName=Zootopia", "", nil, &comments)
		require.Equal(t, http.StatusOK, status)
		return comments
	}

	t.Run("new comment starts unliked", func(t *testing.T) {
		comments := listComments()
		require.Len(t, comments, 1)
		require.Equal(t, 0, comments[0].Likes)
		require.Empty(t, comments[0].LikedBy)
	})

	t.Run("like then unlike round-trips", func(t *testing.T) {
		var res map[string]any
		status := doJSON(t, http.MethodPatch, baseURL+"/comments", "", map[string]string{
			"commentId": commentID,
			"email":     "u@x.com",
		}, &res)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "added", res["state"])
		require.EqualValues(t, 1, res["likes"])

		comments := listComments()
		require.Equal(t, 1, comments[0].Likes)
		require.Equal(t, []string{"u@x.com"}, comments[0].LikedBy)

		status = doJSON(t, http.MethodPatch, baseURL+"/comments", "", map[string]string{
			"commentId": commentID,
			"email":     "u@x.com",
		}, &res)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "removed", res["state"])
		require.EqualValues(t, 0, res["likes"])

		comments = listComments()
		require.Equal(t, 0, comments[0].Likes)
		require.Empty(t, comments[0].LikedBy)
	})

	t.Run("counter equals set size with several actors", func(t *testing.T) {
		for _, actor := range []string{"a@x.com", "b@x.com", "c@x.com"} {
			status := doJSON(t, http.MethodPatch, baseURL+"/comments", "", map[string]string{
				"commentId": commentID,
				"email":     actor,
			}, nil)
			require.Equal(t, http.StatusOK, status)
		}

		comments := listComments()
		require.Equal(t, 3, comments[0].Likes)
		require.Len(t, comments[0].LikedBy, 3)
	})

	t.Run("unknown comment is 404", func(t *testing.T) {
		status := doJSON(t, http.MethodPatch, baseURL+"/comments", "", map[string]string{
			"commentId": "missing",
			"email":     "u@x.com",
		}, nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("empty actor is 400", func(t *testing.T) {
		status := doJSON(t, http.MethodPatch, baseURL+"/comments", "", map[string]string{
			"commentId": commentID,
		}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestAnonymousCommentE2E(t *testing.T) {
	baseURL, _ := setupServer(t)

	var created map[string]string
	status := doJSON(t, http.MethodPost, baseURL+"/comments", "", map[string]string{
		"comment":   "Great!",
		"movieName": "Zootopia",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created["commentId"])

	var comments []struct {
		CommentID string   `json:"commentId"`
		Author    string   `json:"author"`
		Likes     int      `json:"likes"`
		LikedBy   []string `json:"likedBy"`
	}
	status = doJSON(t, http.MethodGet, baseURL+"/comments?movieName=Zootopia", "", nil, &comments)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, comments, 1)
	require.Empty(t, comments[0].Author)
	require.Equal(t, 0, comments[0].Likes)
	require.Empty(t, comments[0].LikedBy)
}

func TestWatchlistE2E(t *testing.T) {
	baseURL, mailer := setupServer(t)
	token := signUpAndSignIn(t, baseURL, mailer, "carol", "carol@example.com")

	readWatchlist := func() []string {
		var resp struct {
			Watchlist []string `json:"watchlist"`
		}
		status := doJSON(t, http.MethodGet, baseURL+"/watchlist", token, nil, &resp)
		require.Equal(t, http.StatusOK, status)
		return resp.Watchlist
	}

	t.Run("add then remove", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
			"movieId": "tt123",
			"action":  "add",
		}, nil)
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, readWatchlist(), "tt123")

		status = doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
			"movieId": "tt123",
			"action":  "remove",
		}, nil)
		require.Equal(t, http.StatusOK, status)
		require.NotContains(t, readWatchlist(), "tt123")
	})

	t.Run("repeated add stays single", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			status := doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
				"movieId": "tt456",
				"action":  "add",
			}, nil)
			require.Equal(t, http.StatusOK, status)
		}
		require.Equal(t, []string{"tt456"}, readWatchlist())
	})

	t.Run("bare toggle flips membership", func(t *testing.T) {
		var res map[string]any
		status := doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
			"movieId": "tt789",
		}, &res)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "added", res["state"])

		status = doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
			"movieId": "tt789",
		}, &res)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "removed", res["state"])
	})

	t.Run("reverse lookup finds watchers", func(t *testing.T) {
		var resp struct {
			Users []struct {
				Username string `json:"username"`
				Email    string `json:"email"`
			} `json:"users"`
		}
		status := doJSON(t, http.MethodGet, baseURL+"/watchlist?imdbId=tt456", token, nil, &resp)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, resp.Users, 1)
		require.Equal(t, "carol", resp.Users[0].Username)

		status = doJSON(t, http.MethodGet, baseURL+"/watchlist?imdbId=tt000", token, nil, &resp)
		require.Equal(t, http.StatusOK, status)
		require.Empty(t, resp.Users)
	})

	t.Run("unknown action is 400", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, baseURL+"/watchlist", token, map[string]string{
			"movieId": "tt456",
			"action":  "banish",
		}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHealthE2E(t *testing.T) {
	baseURL, _ := setupServer(t)

	var health map[string]any
	status := doJSON(t, http.MethodGet, baseURL+"/livez", "", nil, &health)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health["status"])

	status = doJSON(t, http.MethodGet, baseURL+"/readyz", "", nil, &health)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health["status"])
}
