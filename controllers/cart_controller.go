package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type AddToCartReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"` // defaults to 1
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var req AddToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(actor.UserID, req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, line)
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)

	lines, subtotal, err := h.Svc.List(actor.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	actor := utils.CurrentActor(c)

	if err := h.Svc.Clear(actor.UserID); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
