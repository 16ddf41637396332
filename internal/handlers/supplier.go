package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type SupplierHandler struct {
	svc *services.SupplierService
	log *zap.Logger
}

func NewSupplierHandler(svc *services.SupplierService, log *zap.Logger) *SupplierHandler {
	return &SupplierHandler{svc: svc, log: log}
}

func (h *SupplierHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *SupplierHandler) list(c *gin.Context) {
	suppliers, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(suppliers) == 0 {
		httpx.Message(c, http.StatusNotFound, "No suppliers found!")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	suppliers, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(suppliers) == 0 {
		httpx.Message(c, http.StatusNotFound, "No suppliers found!")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	supplier, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) create(c *gin.Context) {
	var in services.CreateSupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	supplier, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Supplier "+supplier.LegalName+" created successfully!")
}

func (h *SupplierHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateSupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	supplier, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Supplier "+supplier.LegalName+" updated successfully!")
}

func (h *SupplierHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	supplier, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Supplier with tax number "+supplier.TaxNumber+" deleted successfully!")
}
