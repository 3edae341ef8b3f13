package controllers

import (
	"strconv"

	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /categories
func (m *MenuController) Categories(c *gin.Context) {
	cats, err := m.Svc.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /menu-items?category=&search=&ordering=&featured=&page=&limit=
func (m *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
		Ordering:     c.Query("ordering"),
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	page, err := m.Svc.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /menu-items/:id
func (m *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	item, err := m.Svc.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
