// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stamperia/stamperia-backend/internal/i18n"
	"github.com/stamperia/stamperia-backend/internal/services"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type reviewDecisionRequest struct {
	Comment string `json:"comment"`
}

// POST /designs/:id/approve
func (h *ReviewHandler) ApproveDesign(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "design ID"), nil)
		return
	}

	var req reviewDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	review, err := h.reviewService.ApproveDesign(id, actor.ID, req.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewApproved),
		"review":  review,
	})
}

// POST /designs/:id/reject
func (h *ReviewHandler) RejectDesign(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "design ID"), nil)
		return
	}

	var req reviewDecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	review, err := h.reviewService.RejectDesign(id, actor.ID, req.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewRejected),
		"review":  review,
	})
}

// GET /designs/:id/reviews
func (h *ReviewHandler) GetDesignReviews(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "design ID"), nil)
		return
	}

	reviews, err := h.reviewService.GetDesignReviews(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"reviews": reviews})
}

// GET /designs/:id/technical-sheet
func (h *ReviewHandler) GetTechnicalSheet(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "design ID"), nil)
		return
	}

	sheet, err := h.reviewService.GenerateTechnicalSheet(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"technical_sheet": sheet})
}
