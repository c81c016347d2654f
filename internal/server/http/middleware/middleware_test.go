package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	pkgAuth "github.com/AlexisMGL/HappyCheese/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type parserStub struct {
	userID int64
	err    error
}

func (p parserStub) ParseToken(string) (int64, error) { return p.userID, p.err }

type userProviderStub struct {
	user *model.User
	err  error
}

func (u userProviderStub) User(context.Context, int64) (*model.User, error) { return u.user, u.err }

func serve(t *testing.T, handler gin.HandlerFunc, mutate func(*http.Request), pre func(*gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	if pre != nil {
		router.Use(func(c *gin.Context) { pre(c); c.Next() })
	}
	router.GET("/", handler, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredNoToken(t *testing.T) {
	resp := serve(t, AuthRequired(parserStub{userID: 7}), nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	resp := serve(t, AuthRequired(parserStub{userID: 7}), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer token")
	}, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthRequiredCookie(t *testing.T) {
	resp := serve(t, AuthRequired(parserStub{userID: 7}), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "token"})
	}, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	resp := serve(t, AuthRequired(parserStub{err: pkgAuth.ErrInvalidToken}), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer bad")
	}, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRequiredParserError(t *testing.T) {
	resp := serve(t, AuthRequired(parserStub{err: errors.New("boom")}), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer token")
	}, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	withUser := func(c *gin.Context) { c.Set(UserIDContextKey, int64(7)) }

	resp := serve(t, AdminRequired(userProviderStub{user: &model.User{ID: 7, Admin: true}}), nil, withUser)
	if resp.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", resp.Code)
	}

	resp = serve(t, AdminRequired(userProviderStub{user: &model.User{ID: 7}}), nil, withUser)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", resp.Code)
	}

	resp = serve(t, AdminRequired(userProviderStub{user: &model.User{ID: 7, Admin: true}}), nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", resp.Code)
	}

	resp = serve(t, AdminRequired(userProviderStub{err: errors.New("boom")}), nil, withUser)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("provider error: expected 500, got %d", resp.Code)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetAuthCookie(c, "session-token")

	if got := w.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("expected Set-Cookie header")
	}
}
