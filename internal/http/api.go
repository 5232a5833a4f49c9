package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"smarthome-api/internal/domain"
	"smarthome-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	sensors   service.SensorService
	jwtSecret []byte
	logger    *logrus.Logger
}

func NewHandler(auth service.AuthService, sensors service.SensorService, jwtSecret []byte, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:      auth,
		sensors:   sensors,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogMiddleware(h.logger))

	router.GET("/", h.root)
	router.POST("/login", h.login)

	// Every sensor route sits behind the token gate; a bad token is rejected
	// before any handler or storage access.
	sensores := router.Group("/sensores")
	sensores.Use(authRequired(h.jwtSecret))
	{
		sensores.GET("", h.listSensors)
		sensores.POST("", h.createSensor)
		sensores.PUT("/:id", h.updateSensor)
		sensores.DELETE("/:id", h.deleteSensor)
	}
}

func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, "SmartHome API")
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			// The contract echoes the submitted username on unknown accounts.
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found", "username": req.Username})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// The token is the whole response body, an opaque string to the caller.
	c.String(http.StatusOK, token)
}

type sensorRequest struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type SensorResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

func sensorToResponse(sensor domain.Sensor) SensorResponse {
	return SensorResponse{
		ID:    sensor.ID,
		Name:  sensor.Name,
		Value: sensor.Value,
		Date:  sensor.Date.Format(time.RFC3339),
	}
}

func (h *Handler) listSensors(c *gin.Context) {
	sensors, err := h.sensors.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]SensorResponse, len(sensors))
	for i := range sensors {
		resp[i] = sensorToResponse(sensors[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createSensor(c *gin.Context) {
	var req sensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sensor, err := h.sensors.Create(c.Request.Context(), req.Name, req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sensorToResponse(*sensor))
}

func (h *Handler) updateSensor(c *gin.Context) {
	id, ok := sensorID(c)
	if !ok {
		return
	}

	var req sensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sensors.Update(c.Request.Context(), id, req.Name, req.Value); err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteSensor(c *gin.Context) {
	id, ok := sensorID(c)
	if !ok {
		return
	}

	if err := h.sensors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func sensorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor id"})
		return 0, false
	}
	return id, true
}
