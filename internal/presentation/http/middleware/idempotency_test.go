package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys    map[string]*entity.IdempotencyKey
	created []*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key]
	if !ok || ikey.UserID != userID {
		return nil, nil
	}
	return ikey, nil
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key] = ikey
	r.created = append(r.created, ikey)
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error { return nil }

func idempotencyRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, handlerCalls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	router.Use(Idempotency(IdempotencyConfig{Repo: repo}))
	router.POST("/sales", func(c *gin.Context) {
		*handlerCalls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router
}

func TestIdempotencySkipsAnonymousRequests(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := idempotencyRouter(repo, uuid.Nil, &calls)

	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, repo.created)
}

func TestIdempotencyStoresFirstResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	calls := 0
	router := idempotencyRouter(repo, userID, &calls)

	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "key-1", repo.created[0].Key)
	assert.Equal(t, userID, repo.created[0].UserID)
	assert.Equal(t, http.StatusCreated, repo.created[0].ResponseCode)
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	repo.keys["key-1"] = &entity.IdempotencyKey{
		Key:          "key-1",
		UserID:       userID,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"ok":true}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	calls := 0
	router := idempotencyRouter(repo, userID, &calls)

	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 0, calls)
}
