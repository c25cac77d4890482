package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/services"
	"github.com/vai-sys/DigitalDinner/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders — place an order from the caller's cart.
func (h *OrderController) Create(c *gin.Context) {
	order, err := h.Svc.Checkout(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		fail(c, services.ErrOrderNotFound)
		return
	}
	order, err := h.Svc.GetForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/user/:userId — lists the caller's own orders; the path
// param is kept for route compatibility but the token identity wins.
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(orders), orders)
}

// GET /orders/phone/:phoneNumber — public lookup path.
func (h *OrderController) ByPhone(c *gin.Context) {
	orders, err := h.Svc.ListByPhone(c.Param("phoneNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(orders), orders)
}

// PUT /orders/:id — administrative status update, unscoped by owner.
func (h *OrderController) UpdateStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		fail(c, services.ErrOrderNotFound)
		return
	}

	var req services.UpdateOrderStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, services.ErrInvalidStatus.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(orderID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id/cancel — owner-scoped, PENDING only.
func (h *OrderController) Cancel(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		fail(c, services.ErrOrderNotFound)
		return
	}
	order, err := h.Svc.Cancel(utils.CurrentUserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
