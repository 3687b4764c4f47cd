package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncode/videojuegos/internal/app/controller"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/repository"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/db"
	"github.com/uncode/videojuegos/internal/middleware"
	"github.com/uncode/videojuegos/web"
	"gorm.io/gorm"
)

type TestServer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	cookies []*http.Cookie
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	categoryService := service.NewCategoryService(repository.NewCategoryRepository(testDB))
	studioService := service.NewStudioService(repository.NewStudioRepository(testDB))
	gameService := service.NewGameService(repository.NewGameRepository(testDB), categoryService, studioService)

	categoryController := controller.NewCategoryController(categoryService)
	studioController := controller.NewStudioController(studioService)
	gameController := controller.NewGameController(gameService, categoryService, studioService)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.LoggingMiddleware())
	router.Use(sessions.Sessions("it_session", cookie.NewStore([]byte("it-secret"))))

	router.POST("/categorias/new", categoryController.CreateCategory)
	router.POST("/categorias/:id/delete", categoryController.DeleteCategory)
	router.POST("/estudios/new", studioController.CreateStudio)
	router.POST("/estudios/:id", studioController.UpdateStudio)
	router.GET("/videojuegos", gameController.ListGames)
	router.GET("/videojuegos/new", gameController.NewGame)
	router.POST("/videojuegos/new", gameController.CreateGame)
	router.GET("/videojuegos/:id", gameController.EditGame)

	return &TestServer{Router: router, DB: testDB}
}

func (s *TestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		s.cookies = cookies
	}
	return w
}

// createdID posts a form expected to redirect to the new entity's page
func (s *TestServer) createdID(t *testing.T, path string, form url.Values) string {
	w := s.request(http.MethodPost, path, form)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	return location[strings.LastIndex(location, "/")+1:]
}

func TestCatalogJourney(t *testing.T) {
	server := setupIntegrationTest(t)

	categoryID := server.createdID(t, "/categorias/new", url.Values{"nombre": {"RPG"}})
	studioID := server.createdID(t, "/estudios/new", url.Values{"nombre": {"Square"}})

	gameID := server.createdID(t, "/videojuegos/new", url.Values{
		"nombre":      {"Chrono Trigger"},
		"rutaimg":     {"/img/ct.png"},
		"precio":      {"29.99"},
		"cantidad":    {"5"},
		"descripcion": {"An RPG classic"},
		"lanzamiento": {"1995-03-11"},
		"categoriaId": {categoryID},
		"estudioId":   {studioID},
	})

	// Flash from the create is shown on the game page.
	w := server.request(http.MethodGet, "/videojuegos/"+gameID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Videojuego creado correctamente")

	// Renaming the studio shows up in the game listing.
	w = server.request(http.MethodPost, "/estudios/"+studioID, url.Values{"nombre": {"Square Enix"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = server.request(http.MethodGet, "/videojuegos", nil)
	assert.Contains(t, w.Body.String(), "Square Enix")
	assert.Contains(t, w.Body.String(), "Chrono Trigger")

	// A soft-deleted category disappears from the game form but stays stored.
	w = server.request(http.MethodPost, "/categorias/"+categoryID+"/delete", nil)
	require.Equal(t, http.StatusFound, w.Code)

	w = server.request(http.MethodGet, "/videojuegos/new", nil)
	assert.NotContains(t, w.Body.String(), categoryID)

	var stored model.Category
	require.NoError(t, server.DB.Where("id = ?", categoryID).First(&stored).Error)
	assert.False(t, stored.Active)

	w = server.request(http.MethodPost, "/videojuegos/new", url.Values{
		"nombre":      {"Secret of Mana"},
		"rutaimg":     {"/img/som.png"},
		"precio":      {"19.99"},
		"cantidad":    {"1"},
		"descripcion": {"Action RPG"},
		"lanzamiento": {"1993-08-06"},
		"categoriaId": {categoryID},
		"estudioId":   {studioID},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "No se encontró categoria")
}
