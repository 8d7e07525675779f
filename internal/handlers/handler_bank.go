package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/SscSPs/cheque_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to banks.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// RegisterBankRoutes registers routes related to banks.
func RegisterBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:id", h.getBank)
		banks.PUT("/:id", h.updateBank)
		banks.DELETE("/:id", h.deleteBank)
	}
}

// createBank godoc
// @Summary Create a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.Envelope{data=dto.BankResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 409 {object} dto.Envelope "Duplicate bank code"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create bank")
		return
	}
	respondOK(c, http.StatusCreated, dto.ToBankResponse(bank), "Bank created")
}

// listBanks godoc
// @Summary List banks
// @Tags banks
// @Produce  json
// @Param   enabledOnly query bool false "Only enabled banks"
// @Success 200 {object} dto.Envelope{data=[]dto.BankResponse}
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	var params dto.ListBanksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	banks, err := h.bankService.ListBanks(c.Request.Context(), params.EnabledOnly)
	if err != nil {
		respondError(c, err, "Failed to list banks")
		return
	}
	respondOK(c, http.StatusOK, dto.ToListBankResponse(banks), "")
}

// getBank godoc
// @Summary Get a bank
// @Tags banks
// @Produce  json
// @Param   id path string true "Bank ID"
// @Success 200 {object} dto.Envelope{data=dto.BankResponse}
// @Failure 404 {object} dto.Envelope "Bank not found"
// @Security BearerAuth
// @Router /banks/{id} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	bank, err := h.bankService.GetBankByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bank")
		return
	}
	respondOK(c, http.StatusOK, dto.ToBankResponse(bank), "")
}

// updateBank godoc
// @Summary Update a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   id path string true "Bank ID"
// @Param   bank body dto.UpdateBankRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.BankResponse}
// @Failure 404 {object} dto.Envelope "Bank not found"
// @Security BearerAuth
// @Router /banks/{id} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update bank")
		return
	}
	respondOK(c, http.StatusOK, dto.ToBankResponse(bank), "Bank updated")
}

// deleteBank godoc
// @Summary Delete a bank
// @Description Fails with 409 while checkbooks reference the bank
// @Tags banks
// @Produce  json
// @Param   id path string true "Bank ID"
// @Success 200 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Bank has checkbooks"
// @Security BearerAuth
// @Router /banks/{id} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	bankID := c.Param("id")
	if err := h.bankService.DeleteBank(c.Request.Context(), bankID); err != nil {
		respondError(c, err, "Failed to delete bank")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bank deleted", slog.String("bank_id", bankID))
	respondOK(c, http.StatusOK, nil, "Bank deleted")
}
