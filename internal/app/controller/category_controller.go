package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/middleware"
)

const categoriesPath = "/categorias"

// nameForm is the form shared by categories and studios
type nameForm struct {
	Name string `form:"nombre"`
}

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// ListCategories GET /categorias
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	data := gin.H{"title": "Categorias"}

	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		data[flashError] = errorMessage(c, err)
	}
	data["categorias"] = categories

	render(c, http.StatusOK, "categoria_index.html", data)
}

// NewCategory GET /categorias/new
func (ctrl *CategoryController) NewCategory(c *gin.Context) {
	render(c, http.StatusOK, "categoria_form.html", gin.H{
		"title":  "Nueva categoria",
		"action": "new",
		"form":   nameForm{},
	})
}

// CreateCategory POST /categorias/new
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var form nameForm
	bindForm(c, &form)

	id, err := ctrl.categoryService.CreateCategory(form.Name)
	if err != nil {
		render(c, http.StatusUnprocessableEntity, "categoria_form.html", gin.H{
			"title":    "Nueva categoria",
			"action":   "new",
			"form":     form,
			flashError: errorMessage(c, err),
		})
		return
	}

	addFlash(c, flashSuccess, "Categoria creada correctamente")
	redirect(c, categoriesPath+"/"+id.String())
}

// EditCategory GET /categorias/:id
func (ctrl *CategoryController) EditCategory(c *gin.Context) {
	idStr := c.Param("id")

	category, err := ctrl.categoryService.GetCategory(service.ParseID(idStr))
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Category not available for edit", map[string]interface{}{
			"category_id": idStr,
		})
		addFlash(c, flashError, errorMessage(c, err))
		redirect(c, categoriesPath)
		return
	}

	render(c, http.StatusOK, "categoria_form.html", gin.H{
		"title":  "Editar categoria",
		"action": "edit",
		"id":     category.ID,
		"form":   nameForm{Name: category.Name},
	})
}

// UpdateCategory POST /categorias/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	idStr := c.Param("id")
	var form nameForm
	bindForm(c, &form)

	if err := ctrl.categoryService.UpdateCategory(service.ParseID(idStr), form.Name); err != nil {
		render(c, http.StatusUnprocessableEntity, "categoria_form.html", gin.H{
			"title":    "Editar categoria",
			"action":   "edit",
			"id":       idStr,
			"form":     form,
			flashError: errorMessage(c, err),
		})
		return
	}

	addFlash(c, flashSuccess, "Categoria actualizada correctamente")
	redirect(c, categoriesPath+"/"+idStr)
}

// DeleteCategory POST /categorias/:id/delete
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctrl.categoryService.DeleteCategory(service.ParseID(c.Param("id"))); err != nil {
		addFlash(c, flashError, errorMessage(c, err))
	} else {
		addFlash(c, flashSuccess, "Categoria eliminada correctamente")
	}
	redirect(c, categoriesPath)
}
