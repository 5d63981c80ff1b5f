package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/cardinalnav/campus-backend-go/internal/campus"
	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/internal/service"
	"github.com/cardinalnav/campus-backend-go/pkg/response"
)

// CampusHandler handles HTTP requests for the campus data model.
type CampusHandler struct {
	navigator *service.Navigator
}

// NewCampusHandler creates a new campus handler.
func NewCampusHandler(navigator *service.Navigator) *CampusHandler {
	return &CampusHandler{navigator: navigator}
}

// GetState handles GET /api/v1/campus
func (h *CampusHandler) GetState(c *gin.Context) {
	response.Success(c, h.navigator.State())
}

// ListBuildings handles GET /api/v1/campus/buildings
func (h *CampusHandler) ListBuildings(c *gin.Context) {
	response.Success(c, h.navigator.ListBuildings())
}

// SelectBuilding handles PUT /api/v1/campus/building/:id
func (h *CampusHandler) SelectBuilding(c *gin.Context) {
	if err := h.navigator.SelectBuilding(c.Param("id")); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, h.navigator.State())
}

// SelectFloor handles PUT /api/v1/campus/floor/:id
func (h *CampusHandler) SelectFloor(c *gin.Context) {
	if err := h.navigator.SelectFloor(c.Param("id")); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, h.navigator.State())
}

// GetRooms handles GET /api/v1/campus/rooms?q=
func (h *CampusHandler) GetRooms(c *gin.Context) {
	rooms := h.navigator.Rooms(c.Query("q"))
	response.Success(c, gin.H{
		"data":  rooms,
		"count": len(rooms),
	})
}

// AddRoomRequest is the payload for placing a room at an indoor coordinate.
type AddRoomRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Type     string  `json:"type"`
	Building string  `json:"building"` // defaults to current
	Floor    string  `json:"floor"`    // defaults to current
}

// AddRoom handles POST /api/v1/campus/rooms
func (h *CampusHandler) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid room payload")
		return
	}

	room := models.Room{
		ID:   req.ID,
		Name: req.Name,
		X:    req.X,
		Y:    req.Y,
		Type: models.ParseRoomType(req.Type),
	}
	if err := h.navigator.AddRoom(req.Building, req.Floor, room); err != nil {
		switch {
		case errors.Is(err, campus.ErrDuplicateRoom):
			response.Conflict(c, err.Error())
		case errors.Is(err, campus.ErrBuildingNotFound), errors.Is(err, campus.ErrFloorNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, room)
}

// DeleteRoom handles DELETE /api/v1/campus/rooms/:id
func (h *CampusHandler) DeleteRoom(c *gin.Context) {
	h.navigator.RemoveRoom(c.Query("building"), c.Query("floor"), c.Param("id"))
	response.Success(c, nil)
}

// Export handles GET /api/v1/campus/export
func (h *CampusHandler) Export(c *gin.Context) {
	data, err := h.navigator.Export()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	building := h.navigator.State().Building.ID
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_campus_data.json", building))
	c.Data(200, "application/json", data)
}

// Import handles POST /api/v1/campus/import
func (h *CampusHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Failed to read import document")
		return
	}
	if err := h.navigator.Import(data); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.navigator.State())
}
