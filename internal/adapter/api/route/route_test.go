package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
	"github.com/hugohenrick/liora/internal/domain/profile"
	"github.com/hugohenrick/liora/internal/domain/recipe"
	"github.com/hugohenrick/liora/internal/domain/user"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type emptyRecipes struct{}

func (emptyRecipes) List(context.Context) ([]*recipe.Recipe, error) { return nil, nil }
func (emptyRecipes) FindByID(context.Context, string) (*recipe.Recipe, error) {
	return nil, recipe.ErrRecipeNotFound
}
func (emptyRecipes) FindByIDs(context.Context, []string) (map[string]*recipe.Recipe, error) {
	return map[string]*recipe.Recipe{}, nil
}

type singleProfile struct{}

func (singleProfile) FindByUserID(_ context.Context, userID string) (*profile.Profile, error) {
	return &profile.Profile{UserID: userID, FullName: "Ana"}, nil
}

// asUser substitui a validação do token nos testes
func asUser(u *user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Request = c.Request.WithContext(auth.SetUserContext(c.Request.Context(), u))
		}
		c.Next()
	}
}

func TestProtectedRoutesApplyMiddlewareChain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		user   *user.User
		path   string
		status int
	}{
		{name: "authenticated recipes", user: &user.User{ID: "user-1", Role: user.RoleAuthenticated}, path: "/api/v1/recipes", status: http.StatusOK},
		{name: "service role profile", user: &user.User{ID: "user-1", Role: user.RoleServiceRole}, path: "/api/v1/profile", status: http.StatusOK},
		{name: "anon role recipes", user: &user.User{ID: "user-1", Role: "anon"}, path: "/api/v1/recipes", status: http.StatusForbidden},
		{name: "anon role profile", user: &user.User{ID: "user-1", Role: "anon"}, path: "/api/v1/profile", status: http.StatusForbidden},
		{name: "no user", user: nil, path: "/api/v1/profile", status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log := logger.NewNop()
			chain := []gin.HandlerFunc{
				asUser(tc.user),
				auth.RoleAuthMiddleware(string(user.RoleAuthenticated), string(user.RoleServiceRole)),
			}

			r := gin.New()
			api := r.Group("/api/v1")
			RegisterRecipeRoutes(api, controller.NewRecipeController(emptyRecipes{}, log), chain...)
			RegisterProfileRoutes(api, controller.NewProfileController(singleProfile{}, log), chain...)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}
