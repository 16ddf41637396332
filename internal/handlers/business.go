package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type BusinessHandler struct {
	svc *services.BusinessService
	log *zap.Logger
}

func NewBusinessHandler(svc *services.BusinessService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{svc: svc, log: log}
}

func (h *BusinessHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *BusinessHandler) list(c *gin.Context) {
	businesses, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(businesses) == 0 {
		httpx.Message(c, http.StatusNotFound, "No businesses found!")
		return
	}
	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	business, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) create(c *gin.Context) {
	var in services.CreateBusinessInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	business, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Business "+business.TradeName+" created successfully!")
}

func (h *BusinessHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateBusinessInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	business, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Business "+business.TradeName+" updated successfully!")
}

func (h *BusinessHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	business, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Business "+business.TradeName+" deleted successfully!")
}
