package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/services"
	"github.com/vai-sys/DigitalDinner/utils"
)

type MenuController struct {
	Svc        *services.MenuService
	UploadsDir string
}

func NewMenuController(svc *services.MenuService, uploadsDir string) *MenuController {
	return &MenuController{Svc: svc, UploadsDir: uploadsDir}
}

// GET /menu?category=&available=
func (h *MenuController) List(c *gin.Context) {
	var available *bool
	if c.Query("available") == "true" {
		t := true
		available = &t
	}

	items, err := h.Svc.List(c.Request.Context(), c.Query("category"), available)
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(items), items)
}

// GET /menu/:id
func (h *MenuController) Get(c *gin.Context) {
	item, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/category/:categoryName
func (h *MenuController) ByCategory(c *gin.Context) {
	items, err := h.Svc.ListByCategory(c.Request.Context(), c.Param("categoryName"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(items), items)
}

// POST /menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveUploadedImage(c, file, h.UploadsDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		req.Image = name
	}

	item, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.UpdateMenuItemIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveUploadedImage(c, file, h.UploadsDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		req.Image = &name
	}

	item, err := h.Svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
