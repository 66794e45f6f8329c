package api

import (
	"net/http"

	reqdto "estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	cmds commands.ParkingCommands
	q    queries.ParkingQueries
}

func NewParkingHandler(cmds commands.ParkingCommands, q queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{cmds: cmds, q: q}
}

// @Summary List parkings
// @Description Public listing, newest first
// @Tags parkings
// @Produce json
// @Success 200 {array} queries.ParkingView
// @Router /parkings/ [get]
func (h *ParkingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Search parkings
// @Description Case-insensitive match on name, address or district, cheapest first
// @Tags parkings
// @Produce json
// @Param q query string false "Search text"
// @Param available_only query bool false "Only parkings with free slots"
// @Success 200 {array} queries.ParkingView
// @Failure 400 {object} httperr.Response
// @Router /parkings/search [get]
func (h *ParkingHandler) Search(c *gin.Context) {
	var query reqdto.SearchParkingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), queries.ParkingSearch{
		Query:         query.Q,
		AvailableOnly: query.AvailableOnly,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List parkings by owner
// @Tags parkings
// @Security BearerAuth
// @Produce json
// @Param owner_id path string true "Owner user ID"
// @Success 200 {array} queries.ParkingView
// @Failure 400 {object} httperr.Response
// @Router /parkings/owner/{owner_id} [get]
func (h *ParkingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := parseID(c, "owner_id")
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create parking
// @Description available defaults to capacity and is clamped to [0, capacity]
// @Tags parkings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateParkingRequest true "Create parking request"
// @Success 201 {object} queries.ParkingView
// @Failure 400 {object} httperr.Response
// @Router /parkings/ [post]
func (h *ParkingHandler) Create(c *gin.Context) {
	var req reqdto.CreateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/parkings/"+id.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Get parking
// @Tags parkings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Parking ID"
// @Success 200 {object} queries.ParkingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parkings/{id} [get]
func (h *ParkingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update parking
// @Description Partial update; available is clamped against the resulting capacity
// @Tags parkings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Parking ID"
// @Param request body reqdto.UpdateParkingRequest true "Update parking request"
// @Success 200 {object} queries.ParkingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parkings/{id} [put]
func (h *ParkingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete parking
// @Tags parkings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Parking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parkings/{id} [delete]
func (h *ParkingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Parking deleted"})
}

// @Summary Adjust free slots
// @Description Shift available by a signed delta, clamped to [0, capacity]
// @Tags parkings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Parking ID"
// @Param request body reqdto.AdjustAvailableRequest true "Delta"
// @Success 200 {object} resdto.AdjustAvailableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parkings/{id}/adjust-available [post]
func (h *ParkingHandler) AdjustAvailable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustAvailableRequest
	// an empty body means delta 0
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	available, err := h.cmds.AdjustAvailable(c.Request.Context(), id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AdjustAvailableResponse{
		Message:   "Availability updated",
		ID:        id,
		Available: available,
	})
}
