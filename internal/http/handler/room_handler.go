package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/service"
)

type RoomHandler struct{ svc service.RoomService }

func NewRoomHandler(s service.RoomService) *RoomHandler { return &RoomHandler{svc: s} }

type roomIn struct {
	RoomNumber int             `json:"roomNumber" binding:"required,gt=0"`
	RoomType   models.RoomType `json:"roomType" binding:"required,oneof=single double suite"`
	HasSeaView *bool           `json:"hasSeaView"`
}

type roomUpdateIn struct {
	RoomNumber *int             `json:"roomNumber" binding:"omitempty,gt=0"`
	RoomType   *models.RoomType `json:"roomType" binding:"omitempty,oneof=single double suite"`
	HasSeaView *bool            `json:"hasSeaView"`
}

func (h *RoomHandler) Register(g *gin.RouterGroup) {
	g.POST("/rooms", h.Create)
	g.GET("/rooms", h.FindAll)
	g.GET("/rooms/byRoomNumber/:roomNumber", h.FindByRoomNumber)
	g.DELETE("/rooms/byRoomNumber/:roomNumber", h.RemoveByRoomNumber)
	g.GET("/rooms/:id", h.FindOne)
	g.PATCH("/rooms/:id", h.Update)
	g.DELETE("/rooms/:id", h.Remove)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var in roomIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.Create(c.Request.Context(), service.CreateRoomInput{
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		HasSeaView: in.HasSeaView,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) FindAll(c *gin.Context) {
	rooms, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) FindOne(c *gin.Context) {
	room, err := h.svc.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) FindByRoomNumber(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomNumber must be an integer"})
		return
	}
	room, err := h.svc.FindByRoomNumber(c.Request.Context(), n)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	var in roomUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.svc.Update(c.Request.Context(), c.Param("id"), service.UpdateRoomInput{
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		HasSeaView: in.HasSeaView,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RoomHandler) RemoveByRoomNumber(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomNumber must be an integer"})
		return
	}
	if err := h.svc.RemoveByRoomNumber(c.Request.Context(), n); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
