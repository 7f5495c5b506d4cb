package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"widia-api/dto"
	"widia-api/services"
)

// SubmitContactHandler godoc
// @Summary      Submit the contact form
// @Description  Stores the submission and emails the team. Email failures do not fail the request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContactFormCreateDTO  true  "Contact form"
// @Success      200   {object}  dto.ContactFormDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ValidationErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /contact [post]
func SubmitContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ContactFormCreateDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			writeBindError(c, err)
			return
		}
		rec, err := svc.Submit(c.Request.Context(), services.ContactInput{
			Name:    body.Name,
			Email:   body.Email,
			Phone:   body.Phone,
			Company: body.Company,
			Service: body.Service,
			Message: body.Message,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewContactFormDTO(rec))
	}
}
