package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type PrinterHandler struct {
	svc *services.PrinterService
	log *zap.Logger
}

func NewPrinterHandler(svc *services.PrinterService, log *zap.Logger) *PrinterHandler {
	return &PrinterHandler{svc: svc, log: log}
}

func (h *PrinterHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *PrinterHandler) list(c *gin.Context) {
	printers, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(printers) == 0 {
		httpx.Message(c, http.StatusNotFound, "No printers found!")
		return
	}
	c.JSON(http.StatusOK, printers)
}

func (h *PrinterHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	printers, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(printers) == 0 {
		httpx.Message(c, http.StatusNotFound, "No printers found!")
		return
	}
	c.JSON(http.StatusOK, printers)
}

func (h *PrinterHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	printer, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, printer)
}

func (h *PrinterHandler) create(c *gin.Context) {
	var in services.CreatePrinterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	printer, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "Printer "+printer.Name+" created successfully!")
}

func (h *PrinterHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdatePrinterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	printer, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Printer "+printer.Name+" updated successfully!")
}

func (h *PrinterHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	printer, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Printer "+printer.Name+" deleted successfully!")
}
