package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/pkg/apperrors"
	"github.com/deniz/technexus/internal/pkg/auth"
)

type stubAdminRepo struct {
	admins map[string]*models.Admin
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	s.admins[admin.Username] = admin
	return nil
}

func (s *stubAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, ok := s.admins[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (s *stubAdminRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok := s.admins[username]
	return ok, nil
}

type stubUserRepo struct {
	users map[int64]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	return nil
}

func (s *stubUserRepo) ToggleSavedEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) ToggleSavedOpportunity(ctx context.Context, userID, opportunityID int64) (bool, error) {
	return false, nil
}

type middlewareFixture struct {
	jwtService *auth.JWTService
	adminRepo  *stubAdminRepo
	userRepo   *stubUserRepo
	router     *gin.Engine
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &middlewareFixture{
		jwtService: auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "unit-test-secret",
			AccessTokenExp: time.Hour,
			TokenIssuer:    "test",
		}),
		adminRepo: &stubAdminRepo{admins: map[string]*models.Admin{
			"root": {ID: 1, Username: "root", HashedPassword: "x"},
		}},
		userRepo: &stubUserRepo{users: map[int64]*models.User{
			42: {ID: 42, Username: "ada", Email: "ada@example.com"},
		}},
	}

	m := NewAuthMiddleware(f.jwtService, f.adminRepo, f.userRepo)
	f.router = gin.New()
	f.router.GET("/admin-only", m.RequireAdmin(), func(c *gin.Context) {
		caller, _ := GetCaller(c)
		c.JSON(http.StatusOK, gin.H{"username": caller.Username()})
	})
	f.router.GET("/any-caller", m.RequireUser(), func(c *gin.Context) {
		caller, _ := GetCaller(c)
		c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID()})
	})
	return f
}

func (f *middlewareFixture) get(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *middlewareFixture) adminToken(t *testing.T) string {
	t.Helper()
	token, err := f.jwtService.Issue(auth.Identity{Subject: "root", UserType: models.UserTypeAdmin})
	if err != nil {
		t.Fatalf("issuing admin token: %v", err)
	}
	return token
}

func (f *middlewareFixture) userToken(t *testing.T, id int64, username string) string {
	t.Helper()
	token, err := f.jwtService.Issue(auth.Identity{Subject: username, UserType: models.UserTypeUser, UserID: &id})
	if err != nil {
		t.Fatalf("issuing user token: %v", err)
	}
	return token
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	f := newMiddlewareFixture(t)

	w := f.get("/admin-only", "Bearer "+f.adminToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "root") {
		t.Errorf("body = %s, want resolved admin username", w.Body.String())
	}
}

func TestRequireAdminRejectsUserToken(t *testing.T) {
	f := newMiddlewareFixture(t)

	w := f.get("/admin-only", "Bearer "+f.userToken(t, 42, "ada"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireUserResolvesCaller(t *testing.T) {
	f := newMiddlewareFixture(t)

	w := f.get("/any-caller", "Bearer "+f.userToken(t, 42, "ada"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "42") {
		t.Errorf("body = %s, want resolved user id", w.Body.String())
	}
}

func TestRequireUserAdmitsAdminToken(t *testing.T) {
	f := newMiddlewareFixture(t)

	// Admin callers pass the guard with user id 0
	w := f.get("/any-caller", "Bearer "+f.adminToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestGuardsRejectBadTokensUniformly(t *testing.T) {
	f := newMiddlewareFixture(t)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "test",
	})
	expiredToken, err := expired.Issue(auth.Identity{Subject: "root", UserType: models.UserTypeAdmin})
	if err != nil {
		t.Fatalf("issuing expired token: %v", err)
	}

	cases := map[string]string{
		"missing":   "",
		"garbage":   "Bearer not-a-token",
		"expired":   "Bearer " + expiredToken,
		"wrong key": "Bearer " + wrongKeyToken(t),
	}
	for name, header := range cases {
		w := f.get("/any-caller", header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s token: status = %d, want 401", name, w.Code)
			continue
		}
		if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Errorf("%s token: WWW-Authenticate = %q, want Bearer", name, got)
		}
		if !strings.Contains(w.Body.String(), "Could not validate credentials") {
			t.Errorf("%s token: body = %s, want generic message", name, w.Body.String())
		}
	}
}

func wrongKeyToken(t *testing.T) string {
	t.Helper()
	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	token, err := other.Issue(auth.Identity{Subject: "root", UserType: models.UserTypeAdmin})
	if err != nil {
		t.Fatalf("issuing wrong-key token: %v", err)
	}
	return token
}

func TestDeletedAccountTokenRejected(t *testing.T) {
	f := newMiddlewareFixture(t)
	token := f.userToken(t, 42, "ada")

	delete(f.userRepo.users, 42)

	w := f.get("/any-caller", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 after account removal", w.Code)
	}
}
