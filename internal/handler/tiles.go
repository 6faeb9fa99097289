package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/tiles"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

func tileSet(c *gin.Context) (model.TileSet, bool) {
	set := model.TileSet(c.Param("set"))
	if !set.Valid() {
		response.InvalidParam(c, "set", "set is not one of quick_access, quick_actions, services.")
		return "", false
	}
	return set, true
}

// DashboardTiles returns the enabled tiles of a set as the dashboard shows them
// @Summary      Dashboard tiles
// @Tags         tiles
// @Produce      json
// @Param        set  path  string  true  "quick_access, quick_actions or services"
// @Success      200  {array}  model.Tile
// @Router       /tiles/{set} [get]
func (h *Handler) DashboardTiles(c *gin.Context) {
	set, ok := tileSet(c)
	if !ok {
		return
	}
	items, err := h.Tiles.Configured(c.Request.Context(), set)
	if err != nil {
		h.Logger.Sugar().Errorw("load tiles failed", "set", set, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, items)
}

// AdminTiles returns every tile of a set, disabled ones included
// @Router       /admin/tiles/{set} [get]
func (h *Handler) AdminTiles(c *gin.Context) {
	set, ok := tileSet(c)
	if !ok {
		return
	}
	items, err := h.Tiles.Items(c.Request.Context(), set)
	if err != nil {
		h.Logger.Sugar().Errorw("load admin tiles failed", "set", set, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, items)
}

// SaveTiles replaces a tile set
// @Summary      Save tiles
// @Tags         tiles
// @Accept       json
// @Produce      json
// @Param        set   path  string                  true  "quick_access, quick_actions or services"
// @Param        body  body  model.SaveTilesRequest  true  "Tiles"
// @Success      200  {array}  model.Tile
// @Router       /admin/tiles/{set} [put]
func (h *Handler) SaveTiles(c *gin.Context) {
	set, ok := tileSet(c)
	if !ok {
		return
	}
	var req model.SaveTilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("save tiles bad request", "err", err)
		response.InvalidParam(c, "items", "items must be a list of tiles.")
		return
	}

	saved, err := h.Tiles.Save(c.Request.Context(), set, req.Items)
	if err != nil {
		h.Logger.Sugar().Errorw("save tiles failed", "set", set, "err", err)
		response.InternalError(c, "")
		return
	}
	h.Logger.Sugar().Infow("tiles saved", "set", set, "count", len(saved), "user_id", h.PrincipalFromContext(c).UserID)
	response.OK(c, saved)
}

// TileCatalog lists the icons and gradients an admin can pick from
// @Router       /admin/tiles/catalog [get]
func (h *Handler) TileCatalog(c *gin.Context) {
	response.OK(c, tiles.Catalog())
}
