package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type PosHandler struct {
	svc *services.PosService
	log *zap.Logger
}

func NewPosHandler(svc *services.PosService, log *zap.Logger) *PosHandler {
	return &PosHandler{svc: svc, log: log}
}

func (h *PosHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *PosHandler) list(c *gin.Context) {
	pos, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(pos) == 0 {
		httpx.Message(c, http.StatusNotFound, "No pos found!")
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *PosHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pos, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(pos) == 0 {
		httpx.Message(c, http.StatusNotFound, "No pos found!")
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *PosHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pos, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *PosHandler) create(c *gin.Context) {
	var in services.CreatePosInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	pos, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Pos "+pos.PosReferenceCode+" created successfully!")
}

func (h *PosHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdatePosInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	pos, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Pos "+pos.PosReferenceCode+" updated successfully!")
}

func (h *PosHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pos, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Pos "+pos.PosReferenceCode+" deleted successfully!")
}
