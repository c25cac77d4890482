package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/entity"
	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/services"
	"github.com/vai-sys/DigitalDinner/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController { return &AuthController{Svc: svc} }

// userPayload is the public view of a user; the password hash never
// crosses the API boundary.
func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phoneNumber": u.PhoneNumber,
	}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   out.Token,
		"user":    userPayload(out.User),
	})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Login(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   out.Token,
		"user":    userPayload(out.User),
	})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	payload := userPayload(user)
	payload["createdAt"] = user.CreatedAt
	resp.OK(c, payload)
}
