package controllers

import (
	"strconv"

	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders — checkout: drain the caller's cart into a new order.
func (oc *OrderController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)

	order, err := oc.Svc.Checkout(actor.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?status=
func (oc *OrderController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || !entity.OrderStatus(n).Valid() {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		s := entity.OrderStatus(n)
		status = &s
	}

	orders, err := oc.Svc.List(actor, status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := oc.Svc.Detail(actor, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT|PATCH /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	actor := utils.CurrentActor(c)
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Update(actor, id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — manager only, cascades to order items.
func (oc *OrderController) Delete(c *gin.Context) {
	actor := utils.CurrentActor(c)
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := oc.Svc.Delete(actor, id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
