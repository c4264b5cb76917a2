// internal/handlers/design.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stamperia/stamperia-backend/internal/i18n"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/services"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

type DesignHandler struct {
	designService *services.DesignService
}

func NewDesignHandler(designService *services.DesignService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
	}
}

// POST /designs
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	design, err := h.designService.CreateDesign(actor, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyDesignCreated),
		"design":  design,
	})
}

// GET /designs/:id
func (h *DesignHandler) GetDesign(c *gin.Context) {
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

	design, err := h.designService.GetDesign(actor, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"design": design})
}

// GET /designs - current user's designs, or every design when an admin
// filters explicitly.
func (h *DesignHandler) GetDesigns(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	if actor.IsAdmin() {
		designs, total, err := h.designService.ListDesigns(parseDesignFilter(c), params)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		result := utils.CreatePaginationResult(designs, total, params)
		utils.SetPaginationHeaders(c, result)
		utils.PaginatedResponse(c, result)
		return
	}

	designs, total, err := h.designService.GetUserDesigns(actor, params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(designs, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// GET /designs/pending - the review queue, oldest submissions first.
func (h *DesignHandler) GetPendingDesigns(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	if params.Sort == "" {
		params.Sort = "created_at"
		params.Order = "asc"
	}

	designs, total, err := h.designService.GetPendingDesigns(params)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(designs, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.PaginatedResponse(c, result)
}

// PUT /designs/:id
func (h *DesignHandler) UpdateDesign(c *gin.Context) {
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

	var req services.UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	design, err := h.designService.UpdateDesign(actor, id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyDesignUpdated),
		"design":  design,
	})
}

// DELETE /designs/:id
func (h *DesignHandler) DeleteDesign(c *gin.Context) {
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

	if err := h.designService.DeleteDesign(actor, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyDesignDeleted),
	})
}

func parseDesignFilter(c *gin.Context) models.DesignFilter {
	var filter models.DesignFilter

	if userID, err := uuid.Parse(c.Query("user_id")); err == nil {
		filter.UserID = &userID
	}
	if productID, err := uuid.Parse(c.Query("product_id")); err == nil {
		filter.ProductID = &productID
	}
	if status := c.Query("status"); status != "" {
		s := models.DesignStatus(status)
		filter.Status = &s
	}
	if from, err := time.Parse(time.RFC3339, c.Query("date_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("date_to")); err == nil {
		filter.DateTo = &to
	}

	return filter
}
