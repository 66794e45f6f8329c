package api

import (
	"net/http"

	reqdto "estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary List promotions
// @Tags promotions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.PromotionView
// @Router /promotions/ [get]
func (h *PromotionHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Current promotions of a parking
// @Description Public. Active promotions that have not ended, newest first.
// @Tags promotions
// @Produce json
// @Param id path string true "Parking ID"
// @Success 200 {array} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Router /promotions/by-parking/{id} [get]
func (h *PromotionHandler) ListByParking(c *gin.Context) {
	parkingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListCurrentByParking(c.Request.Context(), parkingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create promotion
// @Tags promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePromotionRequest true "Create promotion request"
// @Success 201 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/ [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
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
	c.Header("Location", "/api/promotions/"+id.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Get promotion
// @Tags promotions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
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

// @Summary Update promotion
// @Tags promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Update promotion request"
// @Success 200 {object} queries.PromotionView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePromotionRequest
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

// @Summary Delete promotion
// @Tags promotions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Promotion deleted"})
}
