package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rohininagaraju/BlogApp/internal/users"
)

func newProtectedRouter(store users.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(store, testSecret), func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRejects(t *testing.T) {
	store := newMemUserStore()
	r := newProtectedRouter(store)

	expired, err := GenerateToken(1, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Token abc",
		"no token":       "Bearer ",
		"garbage token":  "Bearer garbage",
		"expired token":  "Bearer " + expired,
	}
	for name, header := range cases {
		if w := get(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: code %d, want 401", name, w.Code)
		}
	}
}

func TestRequireAuthDeletedUser(t *testing.T) {
	store := newMemUserStore()
	r := newProtectedRouter(store)

	u := &users.User{Email: "a@x.com", Name: "A", PasswordHash: "x"}
	if err := store.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}
	tok, err := GenerateToken(u.ID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if w := get(r, "Bearer "+tok); w.Code != http.StatusOK {
		t.Fatalf("live user code %d, want 200", w.Code)
	}

	store.delete(u.ID)
	if w := get(r, "Bearer "+tok); w.Code != http.StatusUnauthorized {
		t.Fatalf("deleted user code %d, want 401", w.Code)
	}
}
