package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/http/response"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"github.com/serp-response/serp-backend/internal/services"
)

type ResourceHandler struct {
	log         *logger.Logger
	resources   services.ResourceService
	assignments services.AssignmentService
}

func NewResourceHandler(
	log *logger.Logger,
	resources services.ResourceService,
	assignments services.AssignmentService,
) *ResourceHandler {
	return &ResourceHandler{
		log:         log.With("handler", "ResourceHandler"),
		resources:   resources,
		assignments: assignments,
	}
}

type createResourceBody struct {
	Name         string   `json:"name" binding:"required"`
	ResourceType string   `json:"resource_type"`
	Status       string   `json:"status"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	Responsible  string   `json:"responsible"`
	Telephone    string   `json:"telephone"`
	Email        string   `json:"email"`
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var body createResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}

	id, err := h.resources.Create(c.Request.Context(), services.CreateResourceRequest{
		Name:         body.Name,
		ResourceType: types.ResourceType(body.ResourceType),
		Status:       types.ResourceStatus(body.Status),
		Latitude:     *body.Latitude,
		Longitude:    *body.Longitude,
		Responsible:  body.Responsible,
		Telephone:    body.Telephone,
		Email:        body.Email,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"message":     "Resource created successfully",
		"resource_id": id,
	})
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resource, err := h.resources.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, resource)
}

func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resources.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, resources)
}

func (h *ResourceHandler) GetLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	location, err := h.resources.GetLocation(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, location)
}

type updateResourceBody struct {
	Name         *string `json:"name"`
	ResourceType *string `json:"resource_type"`
	Status       *string `json:"status"`
	Responsible  *string `json:"responsible"`
	Telephone    *string `json:"telephone"`
	Email        *string `json:"email"`

	ActualLatitude  *float64 `json:"actual_latitude"`
	ActualLongitude *float64 `json:"actual_longitude"`
	NormalLatitude  *float64 `json:"normal_latitude"`
	NormalLongitude *float64 `json:"normal_longitude"`
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}

	patch := services.ResourcePatch{
		Name:            body.Name,
		Responsible:     body.Responsible,
		Telephone:       body.Telephone,
		Email:           body.Email,
		ActualLatitude:  body.ActualLatitude,
		ActualLongitude: body.ActualLongitude,
		NormalLatitude:  body.NormalLatitude,
		NormalLongitude: body.NormalLongitude,
	}
	if body.ResourceType != nil {
		v := types.ResourceType(*body.ResourceType)
		patch.ResourceType = &v
	}
	if body.Status != nil {
		v := types.ResourceStatus(*body.Status)
		patch.Status = &v
	}

	updatedID, err := h.resources.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":     "Resource updated successfully",
		"resource_id": updatedID,
	})
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.resources.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":     "Resource deleted successfully",
		"resource_id": id,
	})
}

func (h *ResourceHandler) ListAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emergencies, err := h.assignments.ListResourceAssignments(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, emergencies)
}
