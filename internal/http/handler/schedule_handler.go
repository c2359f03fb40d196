package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/service"
)

type ScheduleHandler struct{ svc service.ScheduleService }

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

type scheduleIn struct {
	RoomID string `json:"roomId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

func (h *ScheduleHandler) Register(g *gin.RouterGroup) {
	g.POST("/schedule", h.Create)
	g.GET("/schedule", h.FindAll)
	g.GET("/schedule/:id", h.FindOne)
	g.PUT("/schedule/:id", h.Update)
	g.DELETE("/schedule/:id", h.Remove)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var in scheduleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid date string"})
		return
	}
	sched, err := h.svc.Create(c.Request.Context(), in.RoomID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

func (h *ScheduleHandler) FindAll(c *gin.Context) {
	var filter service.ScheduleFilter
	filter.RoomID = c.Query("roomId")
	if raw := c.Query("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid date string"})
			return
		}
		filter.Date = &date
	}
	scheds, err := h.svc.FindAll(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheds)
}

func (h *ScheduleHandler) FindOne(c *gin.Context) {
	sched, err := h.svc.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var in scheduleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid date string"})
		return
	}
	sched, err := h.svc.Update(c.Request.Context(), c.Param("id"), in.RoomID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (h *ScheduleHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
