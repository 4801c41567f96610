package controllers

import (
	"errors"
	"strconv"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/pkg/resp"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /api/menu/categories?includeItems=true
func (ctl *MenuController) Categories(c *gin.Context) {
	cats, err := ctl.Repo.ListCategories(c.Query("includeItems") == "true")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(cats), "categories": cats})
}

// GET /api/menu/categories/:slug
func (ctl *MenuController) CategoryBySlug(c *gin.Context) {
	cat, err := ctl.Repo.CategoryBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Categoría no encontrada")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"category": cat})
}

// GET /api/menu/items
func (ctl *MenuController) Items(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := ctl.Repo.ListMenuItems(repository.MenuItemFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		IsPopular:    c.Query("isPopular") == "true",
		IsFeatured:   c.Query("isFeatured") == "true",
		IsNew:        c.Query("isNew") == "true",
		MinPrice:     c.Query("minPrice"),
		MaxPrice:     c.Query("maxPrice"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": total, "menuItems": items})
}

// GET /api/menu/items/:id — numeric id or slug
func (ctl *MenuController) Item(c *gin.Context) {
	param := c.Param("id")

	var item *entity.MenuItem
	var err error
	if id, convErr := strconv.Atoi(param); convErr == nil {
		item, err = ctl.Repo.MenuItemByID(uint(id))
		if err == nil && item == nil {
			err = gorm.ErrRecordNotFound
		}
	} else {
		item, err = ctl.Repo.MenuItemBySlug(param)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Platillo no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"menuItem": item})
}

// POST /api/menu/items (admin)
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Repo.CreateMenuItem(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Platillo creado", gin.H{"menuItem": req})
}

// PATCH /api/menu/items/:id/availability (admin)
func (ctl *MenuController) UpdateAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Repo.UpdateMenuItem(uint(id), map[string]any{"is_available": *req.IsAvailable}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isAvailable": *req.IsAvailable})
}
