package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/internal/movies/store/drivers/sqlite"
)

func newCommentsHandler(t *testing.T) *CommentsHandler {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &CommentsHandler{CommentService: &service.CommentService{Store: st}}
}

// Comments may be posted without a user; the author is simply absent.
func TestHandleCreateAnonymousComment(t *testing.T) {
	h := newCommentsHandler(t)

	body, err := json.Marshal(map[string]string{
		"comment":   "Great!",
		"movieName": "Zootopia",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(body))
	h.HandleCreate(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Comment added successfully", created["message"])
	require.NotEmpty(t, created["commentId"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/comments?movieName=Zootopia", nil)
	h.HandleList(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []commentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	require.Equal(t, created["commentId"], comments[0].CommentID)
	require.Empty(t, comments[0].Author)
	require.Equal(t, 0, comments[0].Likes)
	require.Equal(t, []string{}, comments[0].LikedBy)
}

func TestHandleCreateRejectsEmptyComment(t *testing.T) {
	h := newCommentsHandler(t)

	body, err := json.Marshal(map[string]string{
		"comment":   "  ",
		"movieName": "Zootopia",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(body))
	h.HandleCreate(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
