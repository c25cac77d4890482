package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/services"
	"github.com/vai-sys/DigitalDinner/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, line)
}

// PUT /cart/:id
func (h *CartController) Update(c *gin.Context) {
	itemID, ok := uintParam(c, "id")
	if !ok {
		fail(c, services.ErrCartItemNotFound)
		return
	}

	var req services.UpdateCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.UpdateQuantity(c.Request.Context(), utils.CurrentUserID(c), itemID, *req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	if line == nil {
		// quantity driven to zero deletes the line
		resp.OK(c, gin.H{})
		return
	}
	resp.OK(c, line)
}

// DELETE /cart/:id
func (h *CartController) Remove(c *gin.Context) {
	itemID, ok := uintParam(c, "id")
	if !ok {
		fail(c, services.ErrCartItemNotFound)
		return
	}
	if err := h.Svc.Remove(utils.CurrentUserID(c), itemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
