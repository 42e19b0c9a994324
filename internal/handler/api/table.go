package api

import (
	"net/http"

	resdto "reservation-book/internal/handler/dto/response"
	"reservation-book/internal/handler/httperr"
	"reservation-book/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	queries queries.TableQueries
}

func NewTableHandler(tableQueries queries.TableQueries) *TableHandler {
	return &TableHandler{queries: tableQueries}
}

// @Summary List tables
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.TableResponse
// @Failure 500 {object} httperr.Response
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tables", nil)
		return
	}
	resp, err := resdto.FromTableViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load tables", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Party size choices
// @Description One choice per party size up to the largest table
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.PartySizeChoiceResponse
// @Failure 500 {object} httperr.Response
// @Router /tables/party-sizes [get]
func (h *TableHandler) PartySizes(c *gin.Context) {
	choices, err := h.queries.PartySizeChoices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load party sizes", nil)
		return
	}
	resp, err := resdto.FromPartySizeChoices(choices)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load party sizes", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
