package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/service"
	"github.com/cardinalnav/campus-backend-go/pkg/response"
)

// NavHandler handles HTTP requests for navigation and location.
type NavHandler struct {
	navigator *service.Navigator
}

// NewNavHandler creates a new navigation handler.
func NewNavHandler(navigator *service.Navigator) *NavHandler {
	return &NavHandler{navigator: navigator}
}

// StartRequest selects the navigation destination.
type StartRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

// Start handles POST /api/v1/nav/start
func (h *NavHandler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid navigation request")
		return
	}
	if err := h.navigator.StartNavigation(req.RoomID); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, h.navigator.State())
}

// Stop handles POST /api/v1/nav/stop
func (h *NavHandler) Stop(c *gin.Context) {
	h.navigator.StopNavigation()
	response.Success(c, h.navigator.State())
}

// GetState handles GET /api/v1/nav
func (h *NavHandler) GetState(c *gin.Context) {
	snap := h.navigator.State()
	response.Success(c, gin.H{
		"navigating":   snap.Navigating,
		"destination":  snap.Destination,
		"route":        snap.Route,
		"instructions": snap.Instructions,
	})
}

// CheckIn handles POST /api/v1/nav/checkin/:roomId
func (h *NavHandler) CheckIn(c *gin.Context) {
	if err := h.navigator.CheckIn(c.Param("roomId")); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, h.navigator.Position())
}

// PushFix handles POST /api/v1/location/fix — the boundary for clients acting
// as the location supplier.
func (h *NavHandler) PushFix(c *gin.Context) {
	var fix models.Fix
	if err := c.ShouldBindJSON(&fix); err != nil {
		response.BadRequest(c, "Invalid fix payload")
		return
	}
	h.navigator.PushFix(fix)
	response.Success(c, h.navigator.Position())
}

// GetLocation handles GET /api/v1/location
func (h *NavHandler) GetLocation(c *gin.Context) {
	response.Success(c, gin.H{
		"position": h.navigator.Position(),
		"error":    h.navigator.TrackingErr(),
	})
}
