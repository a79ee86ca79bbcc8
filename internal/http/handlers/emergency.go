package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/serp-response/serp-backend/internal/domain"
	"github.com/serp-response/serp-backend/internal/http/response"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"github.com/serp-response/serp-backend/internal/services"
)

// pathID parses the :id path parameter. Malformed ids answer 400 before any
// service call.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}

type EmergencyHandler struct {
	log         *logger.Logger
	emergencies services.EmergencyService
	assignments services.AssignmentService
}

func NewEmergencyHandler(
	log *logger.Logger,
	emergencies services.EmergencyService,
	assignments services.AssignmentService,
) *EmergencyHandler {
	return &EmergencyHandler{
		log:         log.With("handler", "EmergencyHandler"),
		emergencies: emergencies,
		assignments: assignments,
	}
}

type createEmergencyBody struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Latitude         *float64 `json:"latitude" binding:"required"`
	Longitude        *float64 `json:"longitude" binding:"required"`
	EmergencyType    string   `json:"emergency_type"`
	Priority         string   `json:"priority"`
	Status           string   `json:"status"`
	NameContact      string   `json:"name_contact"`
	TelephoneContact string   `json:"telephone_contact"`
	IDContact        string   `json:"id_contact"`
}

func (h *EmergencyHandler) Create(c *gin.Context) {
	var body createEmergencyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}

	id, err := h.emergencies.Create(c.Request.Context(), services.CreateEmergencyRequest{
		Name:             body.Name,
		Description:      body.Description,
		Latitude:         *body.Latitude,
		Longitude:        *body.Longitude,
		EmergencyType:    types.EmergencyType(body.EmergencyType),
		Priority:         types.Priority(body.Priority),
		Status:           types.Status(body.Status),
		NameContact:      body.NameContact,
		TelephoneContact: body.TelephoneContact,
		IDContact:        body.IDContact,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"message":      "Emergency created successfully",
		"emergency_id": id,
	})
}

func (h *EmergencyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	emergency, err := h.emergencies.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, emergency)
}

func (h *EmergencyHandler) List(c *gin.Context) {
	emergencies, err := h.emergencies.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, emergencies)
}

type updateEmergencyBody struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	EmergencyType *string `json:"emergency_type"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`

	LocationEmergency *uuid.UUID `json:"location_emergency"`
	AddressEmergency  *uuid.UUID `json:"address_emergency"`

	ResourceID       *uuid.UUID `json:"resource_id"`
	LocationResource *uuid.UUID `json:"location_resource"`
	AddressResource  *uuid.UUID `json:"address_resource"`

	DestinationID       *uuid.UUID `json:"destination_id"`
	LocationDestination *uuid.UUID `json:"location_destination"`
	AddressDestination  *uuid.UUID `json:"address_destination"`

	NameContact      *string `json:"name_contact"`
	TelephoneContact *string `json:"telephone_contact"`
	IDContact        *string `json:"id_contact"`
}

func (h *EmergencyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateEmergencyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}

	patch := services.EmergencyPatch{
		Name:                body.Name,
		Description:         body.Description,
		LocationEmergency:   body.LocationEmergency,
		AddressEmergency:    body.AddressEmergency,
		ResourceID:          body.ResourceID,
		LocationResource:    body.LocationResource,
		AddressResource:     body.AddressResource,
		DestinationID:       body.DestinationID,
		LocationDestination: body.LocationDestination,
		AddressDestination:  body.AddressDestination,
		NameContact:         body.NameContact,
		TelephoneContact:    body.TelephoneContact,
		IDContact:           body.IDContact,
	}
	if body.EmergencyType != nil {
		v := types.EmergencyType(*body.EmergencyType)
		patch.EmergencyType = &v
	}
	if body.Priority != nil {
		v := types.Priority(*body.Priority)
		patch.Priority = &v
	}
	if body.Status != nil {
		v := types.Status(*body.Status)
		patch.Status = &v
	}

	updatedID, err := h.emergencies.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":      "Emergency updated successfully",
		"emergency_id": updatedID,
	})
}

func (h *EmergencyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.emergencies.Delete(c.Request.Context(), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":      "Emergency deleted successfully",
		"emergency_id": id,
	})
}

type assignResourcesBody struct {
	ResourceIDs []uuid.UUID `json:"resource_ids"`
}

func (h *EmergencyHandler) AssignResources(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body assignResourcesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}
	if err := h.assignments.AssignResources(c.Request.Context(), id, body.ResourceIDs); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":      "Resources assigned successfully",
		"emergency_id": id,
	})
}
