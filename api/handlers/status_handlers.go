package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"widia-api/dto"
	"widia-api/services"
)

// CreateStatusCheckHandler godoc
// @Summary      Record a status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StatusCheckCreateDTO  true  "Client name"
// @Success      200   {object}  dto.StatusCheckDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /status [post]
func CreateStatusCheckHandler(svc *services.StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.StatusCheckCreateDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
			return
		}
		check, err := svc.Create(c.Request.Context(), *body.ClientName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewStatusCheckDTO(check))
	}
}

// ListStatusChecksHandler godoc
// @Summary      List status checks
// @Description  The 1000 most recent status checks, oldest first
// @Tags         status
// @Produce      json
// @Success      200  {array}   dto.StatusCheckDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /status [get]
func ListStatusChecksHandler(svc *services.StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		out := make([]dto.StatusCheckDTO, 0, len(items))
		for _, it := range items {
			out = append(out, dto.NewStatusCheckDTO(it))
		}
		c.JSON(http.StatusOK, out)
	}
}
