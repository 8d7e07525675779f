package handlers

import (
	"net/http"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// checkbookHandler handles HTTP requests related to checkbooks.
type checkbookHandler struct {
	checkbookService portssvc.CheckbookSvcFacade
	numberValidator  portssvc.CheckNumberValidatorSvc
}

func newCheckbookHandler(cs portssvc.CheckbookSvcFacade, nv portssvc.CheckNumberValidatorSvc) *checkbookHandler {
	return &checkbookHandler{checkbookService: cs, numberValidator: nv}
}

// RegisterCheckbookRoutes registers routes related to checkbooks.
func RegisterCheckbookRoutes(rg *gin.RouterGroup, checkbookService portssvc.CheckbookSvcFacade, numberValidator portssvc.CheckNumberValidatorSvc) {
	h := newCheckbookHandler(checkbookService, numberValidator)

	checkbooks := rg.Group("/checkbooks")
	{
		checkbooks.POST("", h.createCheckbook)
		checkbooks.GET("", h.listCheckbooks)
		checkbooks.GET("/:id", h.getCheckbook)
		checkbooks.PUT("/:id", h.updateCheckbook)
		checkbooks.DELETE("/:id", h.deleteCheckbook)
		checkbooks.GET("/:id/validate-number", h.validateNumber)
		checkbooks.POST("/:id/reconcile", h.reconcileBalance)
	}
}

// createCheckbook godoc
// @Summary Create a checkbook
// @Tags checkbooks
// @Accept  json
// @Produce  json
// @Param   checkbook body dto.CreateCheckbookRequest true "Checkbook details"
// @Success 201 {object} dto.Envelope{data=dto.CheckbookResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or disabled bank"
// @Failure 404 {object} dto.Envelope "Bank not found"
// @Security BearerAuth
// @Router /checkbooks [post]
func (h *checkbookHandler) createCheckbook(c *gin.Context) {
	var req dto.CreateCheckbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cb, err := h.checkbookService.CreateCheckbook(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create checkbook")
		return
	}
	respondOK(c, http.StatusCreated, dto.ToCheckbookDetailResponse(cb), "Checkbook created")
}

// listCheckbooks godoc
// @Summary List checkbooks
// @Tags checkbooks
// @Produce  json
// @Param   bankID query string false "Bank ID"
// @Param   activeOnly query bool false "Only active checkbooks"
// @Success 200 {object} dto.Envelope{data=[]dto.CheckbookResponse}
// @Security BearerAuth
// @Router /checkbooks [get]
func (h *checkbookHandler) listCheckbooks(c *gin.Context) {
	var params dto.ListCheckbooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	cbs, err := h.checkbookService.ListCheckbooks(c.Request.Context(), domain.CheckbookFilter{
		BankID:     params.BankID,
		ActiveOnly: params.ActiveOnly,
	})
	if err != nil {
		respondError(c, err, "Failed to list checkbooks")
		return
	}
	respondOK(c, http.StatusOK, dto.ToListCheckbookResponse(cbs), "")
}

// getCheckbook godoc
// @Summary Get a checkbook
// @Tags checkbooks
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Success 200 {object} dto.Envelope{data=dto.CheckbookResponse}
// @Failure 404 {object} dto.Envelope "Checkbook not found"
// @Security BearerAuth
// @Router /checkbooks/{id} [get]
func (h *checkbookHandler) getCheckbook(c *gin.Context) {
	cb, err := h.checkbookService.GetCheckbookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve checkbook")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCheckbookDetailResponse(cb), "")
}

// updateCheckbook godoc
// @Summary Update a checkbook
// @Description The initial balance cannot be changed
// @Tags checkbooks
// @Accept  json
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Param   checkbook body dto.UpdateCheckbookRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.CheckbookResponse}
// @Security BearerAuth
// @Router /checkbooks/{id} [put]
func (h *checkbookHandler) updateCheckbook(c *gin.Context) {
	var req dto.UpdateCheckbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cb, err := h.checkbookService.UpdateCheckbook(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update checkbook")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCheckbookDetailResponse(cb), "Checkbook updated")
}

// deleteCheckbook godoc
// @Summary Delete a checkbook
// @Description Fails with 409 while checks reference the checkbook
// @Tags checkbooks
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Success 200 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Checkbook has checks"
// @Security BearerAuth
// @Router /checkbooks/{id} [delete]
func (h *checkbookHandler) deleteCheckbook(c *gin.Context) {
	if err := h.checkbookService.DeleteCheckbook(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete checkbook")
		return
	}
	respondOK(c, http.StatusOK, nil, "Checkbook deleted")
}

// validateNumber godoc
// @Summary Validate a check number against a checkbook
// @Description Checks the active flag and the reserved range. Uniqueness is not checked.
// @Tags checkbooks
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Param   number query string true "Candidate check number"
// @Success 200 {object} dto.Envelope{data=dto.ValidateNumberResponse}
// @Failure 400 {object} dto.Envelope "Inactive checkbook or number out of range"
// @Security BearerAuth
// @Router /checkbooks/{id}/validate-number [get]
func (h *checkbookHandler) validateNumber(c *gin.Context) {
	checkbookID := c.Param("id")
	number := c.Query("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, dto.Envelope{Success: false, Error: "number query parameter is required"})
		return
	}
	if err := h.numberValidator.ValidateCheckNumber(c.Request.Context(), checkbookID, number); err != nil {
		respondError(c, err, "Failed to validate check number")
		return
	}
	respondOK(c, http.StatusOK, dto.ValidateNumberResponse{CheckbookID: checkbookID, Number: number, Valid: true}, "")
}

// reconcileBalance godoc
// @Summary Recompute a checkbook balance
// @Description Sets the current balance to the initial balance minus every cashed check
// @Tags checkbooks
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Success 200 {object} dto.Envelope{data=domain.BalanceReconciliation}
// @Security BearerAuth
// @Router /checkbooks/{id}/reconcile [post]
func (h *checkbookHandler) reconcileBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rec, err := h.checkbookService.ReconcileBalance(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to reconcile checkbook balance")
		return
	}
	respondOK(c, http.StatusOK, rec, "Balance reconciled")
}
