package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imf-ops/gadget-api/internal/application"
	"github.com/imf-ops/gadget-api/pkg/response"
	"github.com/imf-ops/gadget-api/pkg/validation"
)

type GadgetHandler struct {
	Svc    *application.GadgetService
	Logger *logrus.Logger
}

func NewGadgetHandler(svc *application.GadgetService, logger *logrus.Logger) *GadgetHandler {
	return &GadgetHandler{Svc: svc, Logger: logger}
}

type createGadgetRequest struct {
	// Stored verbatim; the create path intentionally skips enum validation.
	Status string `json:"status"`
}

type updateGadgetRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// List GET /gadgets?status=
// 400 on an unknown filter value (case-sensitive match). Persistence
// failures are a generic 500.
func (h *GadgetHandler) List(c *gin.Context) {
	status := c.Query("status")
	gadgets, err := h.Svc.List(status)
	if err != nil {
		if errors.Is(err, application.ErrInvalidStatusFilter) {
			response.Error(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve gadgets")
		return
	}
	response.JSON(c, http.StatusOK, gadgets)
}

// Create POST /gadgets
func (h *GadgetHandler) Create(c *gin.Context) {
	var req createGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}
	g, err := h.Svc.Create(req.Status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create gadget")
		return
	}
	response.JSON(c, http.StatusOK, g)
}

// Update PATCH /gadgets/:id
// A missing id is folded into the generic 500 along with every other
// persistence failure; the upstream API never distinguished them.
func (h *GadgetHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateGadgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}
	g, err := h.Svc.Update(id, req.Name, req.Status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update gadget")
		return
	}
	response.JSON(c, http.StatusOK, g)
}

// Decommission DELETE /gadgets/:id
// Forces status to Decommissioned and stamps the timestamp. Not guarded
// against repeat calls; the second call restamps and still succeeds.
func (h *GadgetHandler) Decommission(c *gin.Context) {
	id := c.Param("id")
	g, err := h.Svc.Decommission(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to decommission gadget")
		return
	}
	response.JSON(c, http.StatusOK, g)
}

// SelfDestruct POST /gadgets/:id/self-destruct
// Stateless acknowledgment with a fresh 6-digit code per call.
func (h *GadgetHandler) SelfDestruct(c *gin.Context) {
	id := c.Param("id")
	conf := h.Svc.InitiateSelfDestruct(id)
	response.JSON(c, http.StatusOK, conf)
}
