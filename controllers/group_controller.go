package controllers

import (
	"strconv"

	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

// GroupController serves /groups/manager/users and
// /groups/delivery-crew/users. Role gating lives in the service.
type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController { return &GroupController{Svc: s} }

type AddMemberReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (g *GroupController) members(c *gin.Context, groupName string) {
	actor := utils.CurrentActor(c)
	users, err := g.Svc.Members(actor, groupName)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "email": u.Email, "firstName": u.FirstName, "lastName": u.LastName})
	}
	resp.OK(c, gin.H{"users": out})
}

func (g *GroupController) add(c *gin.Context, groupName string) {
	actor := utils.CurrentActor(c)

	var req AddMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := g.Svc.AddMember(actor, groupName, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": u.Email + " added to " + groupName + " group"})
}

func (g *GroupController) remove(c *gin.Context, groupName string) {
	actor := utils.CurrentActor(c)

	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	u, err := g.Svc.RemoveMember(actor, groupName, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": u.Email + " removed from " + groupName + " group"})
}

// GET /groups/manager/users
func (g *GroupController) ManagerMembers(c *gin.Context) { g.members(c, entity.GroupManager) }

// POST /groups/manager/users
func (g *GroupController) ManagerAdd(c *gin.Context) { g.add(c, entity.GroupManager) }

// DELETE /groups/manager/users/:userId
func (g *GroupController) ManagerRemove(c *gin.Context) { g.remove(c, entity.GroupManager) }

// GET /groups/delivery-crew/users
func (g *GroupController) CrewMembers(c *gin.Context) { g.members(c, entity.GroupDeliveryCrew) }

// POST /groups/delivery-crew/users
func (g *GroupController) CrewAdd(c *gin.Context) { g.add(c, entity.GroupDeliveryCrew) }

// DELETE /groups/delivery-crew/users/:userId
func (g *GroupController) CrewRemove(c *gin.Context) { g.remove(c, entity.GroupDeliveryCrew) }
