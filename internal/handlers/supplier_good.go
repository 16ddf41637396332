package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type SupplierGoodHandler struct {
	svc *services.SupplierGoodService
	log *zap.Logger
}

func NewSupplierGoodHandler(svc *services.SupplierGoodService, log *zap.Logger) *SupplierGoodHandler {
	return &SupplierGoodHandler{svc: svc, log: log}
}

func (h *SupplierGoodHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.GET("/supplier/:id", h.listBySupplier)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *SupplierGoodHandler) list(c *gin.Context) {
	goods, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(goods) == 0 {
		httpx.Message(c, http.StatusNotFound, "No supplier goods found!")
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *SupplierGoodHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	goods, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(goods) == 0 {
		httpx.Message(c, http.StatusNotFound, "No supplier goods found!")
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *SupplierGoodHandler) listBySupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	goods, err := h.svc.ListBySupplier(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(goods) == 0 {
		httpx.Message(c, http.StatusNotFound, "No supplier goods found!")
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *SupplierGoodHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	good, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, good)
}

func (h *SupplierGoodHandler) create(c *gin.Context) {
	var in services.CreateSupplierGoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	good, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Supplier good "+good.Name+" created successfully!")
}

func (h *SupplierGoodHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateSupplierGoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	good, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Supplier good "+good.Name+" updated successfully!")
}

func (h *SupplierGoodHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	good, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Supplier good "+good.Name+" deleted successfully!")
}
