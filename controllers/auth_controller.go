package controllers

import (
	"net/http"

	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

func userOut(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email,
		"firstName": u.FirstName, "lastName": u.LastName,
		"isStaff": u.IsStaff,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, userOut(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userOut(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	actor := utils.CurrentActor(c)
	user, err := a.Svc.GetProfile(actor.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	out := userOut(user)
	out["role"] = actor.Role().String()
	resp.OK(c, out)
}
