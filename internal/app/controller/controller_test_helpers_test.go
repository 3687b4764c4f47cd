package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/uncode/videojuegos/internal/app/repository"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/db"
	"github.com/uncode/videojuegos/web"
)

type catalog struct {
	categories service.CategoryService
	studios    service.StudioService
	games      service.GameService
}

// setupControllerTest wires the three HTML controllers over a fresh sqlite
// database and returns a client that keeps the session cookie between calls.
func setupControllerTest(t *testing.T) (*testClient, *catalog) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	categories := service.NewCategoryService(repository.NewCategoryRepository(testDB))
	studios := service.NewStudioService(repository.NewStudioRepository(testDB))
	games := service.NewGameService(repository.NewGameRepository(testDB), categories, studios)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	categoryController := NewCategoryController(categories)
	router.GET("/categorias", categoryController.ListCategories)
	router.GET("/categorias/new", categoryController.NewCategory)
	router.POST("/categorias/new", categoryController.CreateCategory)
	router.GET("/categorias/:id", categoryController.EditCategory)
	router.POST("/categorias/:id", categoryController.UpdateCategory)
	router.POST("/categorias/:id/delete", categoryController.DeleteCategory)

	studioController := NewStudioController(studios)
	router.GET("/estudios", studioController.ListStudios)
	router.POST("/estudios/new", studioController.CreateStudio)
	router.GET("/estudios/:id", studioController.EditStudio)
	router.POST("/estudios/:id/delete", studioController.DeleteStudio)

	gameController := NewGameController(games, categories, studios)
	router.GET("/videojuegos", gameController.ListGames)
	router.GET("/videojuegos/new", gameController.NewGame)
	router.POST("/videojuegos/new", gameController.CreateGame)
	router.GET("/videojuegos/:id", gameController.EditGame)
	router.POST("/videojuegos/:id", gameController.UpdateGame)
	router.POST("/videojuegos/:id/delete", gameController.DeleteGame)

	return &testClient{router: router}, &catalog{categories: categories, studios: studios, games: games}
}

type testClient struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (tc *testClient) get(path string) *httptest.ResponseRecorder {
	return tc.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (tc *testClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

// follow issues a GET for the Location of a redirect response
func (tc *testClient) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	return tc.get(w.Header().Get("Location"))
}

func (tc *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	if tc.cookies == nil {
		tc.cookies = map[string]*http.Cookie{}
	}
	for _, c := range w.Result().Cookies() {
		tc.cookies[c.Name] = c
	}
	return w
}
