package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/onabhani/SimpleDashboard/internal/search"
	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/response"
)

// SearchEntries searches form entries across every active form
// @Summary      Search form entries
// @Tags         search
// @Produce      json
// @Param        q         query  string  true   "Search query"
// @Param        form_id   query  int     false  "Limit search to one form"
// @Param        per_page  query  int     false  "Results per page"  default(20)
// @Param        page      query  int     false  "Page number"       default(1)
// @Success      200  {object}  model.SearchPage
// @Failure      400  {object}  response.ErrorBody
// @Router       /search/entries [get]
func (h *Handler) SearchEntries(c *gin.Context) {
	raw, ok := c.GetQuery("q")
	if !ok {
		response.MissingParam(c, "q")
		return
	}
	q := pkg.SanitizeTextField(raw)

	formID, ok := absIntParam(c, "form_id", 0)
	if !ok {
		return
	}
	perPage, ok := absIntParam(c, "per_page", search.DefaultPerPage)
	if !ok {
		return
	}
	page, ok := absIntParam(c, "page", 1)
	if !ok {
		return
	}

	res, err := h.Search.Search(c.Request.Context(), q, int64(formID), page, perPage)
	if err != nil {
		if errors.Is(err, search.ErrFormsUnavailable) {
			h.Logger.Sugar().Warnw("entry search: forms backend unavailable", "err", err)
			response.PreconditionFailed(c, response.CodeFormsNotActive, "Gravity Forms plugin is not active.")
			return
		}
		h.Logger.Sugar().Errorw("entry search failed", "q", q, "form_id", formID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, res)
}
