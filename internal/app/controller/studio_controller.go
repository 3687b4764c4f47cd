package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/middleware"
)

const studiosPath = "/estudios"

type StudioController struct {
	studioService service.StudioService
}

func NewStudioController(studioService service.StudioService) *StudioController {
	return &StudioController{
		studioService: studioService,
	}
}

// ListStudios GET /estudios
func (ctrl *StudioController) ListStudios(c *gin.Context) {
	data := gin.H{"title": "Estudios"}

	studios, err := ctrl.studioService.ListStudios()
	if err != nil {
		data[flashError] = errorMessage(c, err)
	}
	data["estudios"] = studios

	render(c, http.StatusOK, "estudio_index.html", data)
}

// NewStudio GET /estudios/new
func (ctrl *StudioController) NewStudio(c *gin.Context) {
	render(c, http.StatusOK, "estudio_form.html", gin.H{
		"title":  "Nuevo estudio",
		"action": "new",
		"form":   nameForm{},
	})
}

// CreateStudio POST /estudios/new
func (ctrl *StudioController) CreateStudio(c *gin.Context) {
	var form nameForm
	bindForm(c, &form)

	id, err := ctrl.studioService.CreateStudio(form.Name)
	if err != nil {
		render(c, http.StatusUnprocessableEntity, "estudio_form.html", gin.H{
			"title":    "Nuevo estudio",
			"action":   "new",
			"form":     form,
			flashError: errorMessage(c, err),
		})
		return
	}

	addFlash(c, flashSuccess, "Estudio creado correctamente")
	redirect(c, studiosPath+"/"+id.String())
}

// EditStudio GET /estudios/:id
func (ctrl *StudioController) EditStudio(c *gin.Context) {
	idStr := c.Param("id")

	studio, err := ctrl.studioService.GetStudio(service.ParseID(idStr))
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Studio not available for edit", map[string]interface{}{
			"studio_id": idStr,
		})
		addFlash(c, flashError, errorMessage(c, err))
		redirect(c, studiosPath)
		return
	}

	render(c, http.StatusOK, "estudio_form.html", gin.H{
		"title":  "Editar estudio",
		"action": "edit",
		"id":     studio.ID,
		"form":   nameForm{Name: studio.Name},
	})
}

// UpdateStudio POST /estudios/:id
func (ctrl *StudioController) UpdateStudio(c *gin.Context) {
	idStr := c.Param("id")
	var form nameForm
	bindForm(c, &form)

	if err := ctrl.studioService.UpdateStudio(service.ParseID(idStr), form.Name); err != nil {
		render(c, http.StatusUnprocessableEntity, "estudio_form.html", gin.H{
			"title":    "Editar estudio",
			"action":   "edit",
			"id":       idStr,
			"form":     form,
			flashError: errorMessage(c, err),
		})
		return
	}

	addFlash(c, flashSuccess, "Estudio actualizado correctamente")
	redirect(c, studiosPath+"/"+idStr)
}

// DeleteStudio POST /estudios/:id/delete
func (ctrl *StudioController) DeleteStudio(c *gin.Context) {
	if err := ctrl.studioService.DeleteStudio(service.ParseID(c.Param("id"))); err != nil {
		addFlash(c, flashError, errorMessage(c, err))
	} else {
		addFlash(c, flashSuccess, "Estudio eliminado correctamente")
	}
	redirect(c, studiosPath)
}
