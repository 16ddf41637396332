package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type BusinessGoodHandler struct {
	svc *services.BusinessGoodService
	log *zap.Logger
}

func NewBusinessGoodHandler(svc *services.BusinessGoodService, log *zap.Logger) *BusinessGoodHandler {
	return &BusinessGoodHandler{svc: svc, log: log}
}

func (h *BusinessGoodHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *BusinessGoodHandler) list(c *gin.Context) {
	goods, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(goods) == 0 {
		httpx.Message(c, http.StatusNotFound, "No business goods found!")
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *BusinessGoodHandler) listByBusiness(c *gin.Context) {
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
		httpx.Message(c, http.StatusNotFound, "No business goods found!")
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *BusinessGoodHandler) get(c *gin.Context) {
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

func (h *BusinessGoodHandler) create(c *gin.Context) {
	var in services.CreateBusinessGoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	good, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Business good "+good.Name+" created successfully!")
}

func (h *BusinessGoodHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateBusinessGoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	good, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Business good "+good.Name+" updated successfully!")
}

func (h *BusinessGoodHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	good, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Business good "+good.Name+" deleted successfully!")
}
