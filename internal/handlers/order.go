package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type OrderHandler struct {
	svc *services.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc *services.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.GET("/pos/:id", h.listByPos)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *OrderHandler) list(c *gin.Context) {
	orders, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(orders) == 0 {
		httpx.Message(c, http.StatusNotFound, "No orders found!")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(orders) == 0 {
		httpx.Message(c, http.StatusNotFound, "No orders found!")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) listByPos(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders, err := h.svc.ListByPos(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(orders) == 0 {
		httpx.Message(c, http.StatusNotFound, "No orders found!")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) create(c *gin.Context) {
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	_, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Order created successfully!")
}

func (h *OrderHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	if _, err := h.svc.Update(id, in); err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Order updated successfully!")
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.svc.Delete(id); err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Order deleted successfully!")
}
