package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmartins/tabletrack/internal/httpx"
	"github.com/rmartins/tabletrack/internal/services"
)

type UserHandler struct {
	svc *services.UserService
	log *zap.Logger
}

func NewUserHandler(svc *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/:id", h.get)
	r.GET("/business/:id", h.listByBusiness)
	r.POST("", h.create)
	r.PATCH("/:id", h.update)
	r.DELETE("/:id", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(users) == 0 {
		httpx.Message(c, http.StatusNotFound, "No users found!")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) listByBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	users, err := h.svc.ListByBusiness(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	if len(users) == 0 {
		httpx.Message(c, http.StatusNotFound, "No users found!")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.svc.GetByID(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c *gin.Context) {
	var in services.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	user, err := h.svc.Create(in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusCreated, "New user "+user.Username+" created successfully!")
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c)
		return
	}
	user, err := h.svc.Update(id, in)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, "User "+user.Username+" updated successfully!")
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.svc.Delete(id)
	if err != nil {
		httpx.Error(c, h.log, err)
		return
	}
	httpx.Message(c, http.StatusOK, fmt.Sprintf("User %s with ID %d deleted successfully!", user.Username, user.ID))
}
