package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/serp-response/serp-backend/internal/http/response"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"github.com/serp-response/serp-backend/internal/services"
)

type QoSHandler struct {
	log *logger.Logger
	qos services.QoSService
}

func NewQoSHandler(log *logger.Logger, qos services.QoSService) *QoSHandler {
	return &QoSHandler{
		log: log.With("handler", "QoSHandler"),
		qos: qos,
	}
}

type activateQoSBody struct {
	Profile     string `json:"profile"`
	Duration    int    `json:"duration"`
	ServiceIPv4 string `json:"service_ipv4"`
}

func (h *QoSHandler) Activate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body activateQoSBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
			return
		}
	}

	session, err := h.qos.Activate(c.Request.Context(), id, services.ActivateQoSRequest{
		Profile:     body.Profile,
		Duration:    body.Duration,
		ServiceIPv4: body.ServiceIPv4,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, session)
}

func (h *QoSHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.qos.DeactivateForResource(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QoSHandler) DeviceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	device, err := h.qos.DeviceStatus(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, device)
}

func (h *QoSHandler) DeviceLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	maxAgeSec, _ := strconv.Atoi(c.DefaultQuery("max_age", "60"))
	location, err := h.qos.DeviceLocation(c.Request.Context(), id, time.Duration(maxAgeSec)*time.Second)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, location)
}
