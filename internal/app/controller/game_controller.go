package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/middleware"
)

const gamesPath = "/videojuegos"

// gameForm keeps the submitted text so a rejected form renders exactly as typed
type gameForm struct {
	Name        string `form:"nombre"`
	ImagePath   string `form:"rutaimg"`
	Price       string `form:"precio"`
	Quantity    string `form:"cantidad"`
	Description string `form:"descripcion"`
	OnOffer     string `form:"oferta"`
	ReleaseDate string `form:"lanzamiento"`
	CategoryID  string `form:"categoriaId"`
	StudioID    string `form:"estudioId"`
}

func (f gameForm) Offer() bool {
	return service.ParseOffer(f.OnOffer)
}

// input parses the numeric and date fields; the first unparseable one wins
func (f gameForm) input() (service.GameInput, error) {
	price, err := service.ParsePrice(f.Price)
	if err != nil {
		return service.GameInput{}, err
	}
	quantity, err := service.ParseQuantity(f.Quantity)
	if err != nil {
		return service.GameInput{}, err
	}
	releaseDate, err := service.ParseReleaseDate(f.ReleaseDate)
	if err != nil {
		return service.GameInput{}, err
	}

	return service.GameInput{
		Name:        f.Name,
		ImagePath:   f.ImagePath,
		Price:       price,
		Quantity:    quantity,
		Description: f.Description,
		OnOffer:     f.Offer(),
		ReleaseDate: releaseDate,
		CategoryID:  service.ParseID(f.CategoryID),
		StudioID:    service.ParseID(f.StudioID),
	}, nil
}

func gameFormFrom(game *model.Game) gameForm {
	form := gameForm{
		Name:        game.Name,
		ImagePath:   game.ImagePath,
		Price:       strconv.FormatFloat(game.Price, 'f', -1, 64),
		Quantity:    strconv.Itoa(game.Quantity),
		Description: game.Description,
		ReleaseDate: game.ReleaseDate.Format(service.ReleaseDateLayout),
		CategoryID:  game.CategoryID.String(),
		StudioID:    game.StudioID.String(),
	}
	if game.OnOffer {
		form.OnOffer = "on"
	}
	return form
}

type GameController struct {
	gameService     service.GameService
	categoryService service.CategoryService
	studioService   service.StudioService
}

func NewGameController(
	gameService service.GameService,
	categoryService service.CategoryService,
	studioService service.StudioService,
) *GameController {
	return &GameController{
		gameService:     gameService,
		categoryService: categoryService,
		studioService:   studioService,
	}
}

// formData loads the select options for the game form. A failure is shown
// as the page error unless one is already set.
func (ctrl *GameController) formData(c *gin.Context, data gin.H) gin.H {
	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		if _, ok := data[flashError]; !ok {
			data[flashError] = errorMessage(c, err)
		}
	}
	studios, err := ctrl.studioService.ListStudios()
	if err != nil {
		if _, ok := data[flashError]; !ok {
			data[flashError] = errorMessage(c, err)
		}
	}

	data["categorias"] = categories
	data["estudios"] = studios
	return data
}

// ListGames GET /videojuegos
func (ctrl *GameController) ListGames(c *gin.Context) {
	data := gin.H{"title": "Videojuegos"}

	games, err := ctrl.gameService.ListGames()
	if err != nil {
		data[flashError] = errorMessage(c, err)
	}
	data["videojuegos"] = games

	render(c, http.StatusOK, "videojuego_index.html", data)
}

// NewGame GET /videojuegos/new
func (ctrl *GameController) NewGame(c *gin.Context) {
	render(c, http.StatusOK, "videojuego_form.html", ctrl.formData(c, gin.H{
		"title":  "Nuevo videojuego",
		"action": "new",
		"form":   gameForm{},
	}))
}

// CreateGame POST /videojuegos/new
func (ctrl *GameController) CreateGame(c *gin.Context) {
	var form gameForm
	bindForm(c, &form)

	var id uuid.UUID
	input, err := form.input()
	if err == nil {
		id, err = ctrl.gameService.CreateGame(input)
	}
	if err != nil {
		render(c, http.StatusUnprocessableEntity, "videojuego_form.html", ctrl.formData(c, gin.H{
			"title":    "Nuevo videojuego",
			"action":   "new",
			"form":     form,
			flashError: errorMessage(c, err),
		}))
		return
	}

	addFlash(c, flashSuccess, "Videojuego creado correctamente")
	redirect(c, gamesPath+"/"+id.String())
}

// EditGame GET /videojuegos/:id
func (ctrl *GameController) EditGame(c *gin.Context) {
	idStr := c.Param("id")

	game, err := ctrl.gameService.GetGame(service.ParseID(idStr))
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Game not available for edit", map[string]interface{}{
			"game_id": idStr,
		})
		addFlash(c, flashError, errorMessage(c, err))
		redirect(c, gamesPath)
		return
	}

	render(c, http.StatusOK, "videojuego_form.html", ctrl.formData(c, gin.H{
		"title":  "Editar videojuego",
		"action": "edit",
		"id":     game.ID,
		"form":   gameFormFrom(game),
	}))
}

// UpdateGame POST /videojuegos/:id
func (ctrl *GameController) UpdateGame(c *gin.Context) {
	idStr := c.Param("id")
	var form gameForm
	bindForm(c, &form)

	input, err := form.input()
	if err == nil {
		err = ctrl.gameService.UpdateGame(service.ParseID(idStr), input)
	}
	if err != nil {
		render(c, http.StatusUnprocessableEntity, "videojuego_form.html", ctrl.formData(c, gin.H{
			"title":    "Editar videojuego",
			"action":   "edit",
			"id":       idStr,
			"form":     form,
			flashError: errorMessage(c, err),
		}))
		return
	}

	addFlash(c, flashSuccess, "Videojuego actualizado correctamente")
	redirect(c, gamesPath+"/"+idStr)
}

// DeleteGame POST /videojuegos/:id/delete
func (ctrl *GameController) DeleteGame(c *gin.Context) {
	if err := ctrl.gameService.DeleteGame(service.ParseID(c.Param("id"))); err != nil {
		addFlash(c, flashError, errorMessage(c, err))
	} else {
		addFlash(c, flashSuccess, "Videojuego eliminado correctamente")
	}
	redirect(c, gamesPath)
}
