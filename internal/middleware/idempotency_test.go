package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"express/internal/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCountingRouter(store redis.IdempotencyStoreInterface, calls *int) *gin.Engine {
	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	r.POST("/v1/storage", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"call": *calls})
	})
	r.GET("/v1/storage", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"call": *calls})
	})
	return r
}

func newMiniredisStore(t *testing.T) *redis.IdempotencyStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewIdempotencyStore(client)
}

func do(r http.Handler, method, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/v1/storage", nil)
	if key != "" {
		req.Header.Set(idempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysRepeatedCommand(t *testing.T) {
	calls := 0
	r := newCountingRouter(newMiniredisStore(t), &calls)

	first := do(r, http.MethodPost, "abc")
	second := do(r, http.MethodPost, "abc")

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if second.Code != http.StatusCreated {
		t.Errorf("replayed status = %d, want 201", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replayed body %q differs from %q", second.Body.String(), first.Body.String())
	}
	if second.Header().Get("Idempotent-Replayed") != "true" {
		t.Error("expected replay header")
	}
}

func TestIdempotency_DistinctKeysRunSeparately(t *testing.T) {
	calls := 0
	r := newCountingRouter(newMiniredisStore(t), &calls)

	do(r, http.MethodPost, "a")
	do(r, http.MethodPost, "b")
	do(r, http.MethodPost, "")

	if calls != 3 {
		t.Errorf("expected 3 handler runs, got %d", calls)
	}
}

func TestIdempotency_IgnoresReads(t *testing.T) {
	calls := 0
	r := newCountingRouter(newMiniredisStore(t), &calls)

	do(r, http.MethodGet, "same")
	do(r, http.MethodGet, "same")

	if calls != 2 {
		t.Errorf("expected GETs to bypass replay, got %d runs", calls)
	}
}

func TestIdempotency_NilStorePassesThrough(t *testing.T) {
	calls := 0
	r := newCountingRouter(nil, &calls)

	do(r, http.MethodPost, "abc")
	do(r, http.MethodPost, "abc")

	if calls != 2 {
		t.Errorf("expected 2 runs without a store, got %d", calls)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/v1/storage", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/storage", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing allow-origin header")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "req-1" {
		t.Errorf("echoed request id = %q, want req-1", got)
	}
	if w.Body.String() != "req-1" {
		t.Errorf("context request id = %q, want req-1", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}
}
