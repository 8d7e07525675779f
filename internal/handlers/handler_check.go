package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/SscSPs/cheque_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// checkHandler handles HTTP requests related to checks and their reports.
type checkHandler struct {
	checkService  portssvc.CheckSvcFacade
	reportService portssvc.ReportService
}

func newCheckHandler(cs portssvc.CheckSvcFacade, rs portssvc.ReportService) *checkHandler {
	return &checkHandler{checkService: cs, reportService: rs}
}

// RegisterCheckRoutes registers routes related to checks.
func RegisterCheckRoutes(rg *gin.RouterGroup, checkService portssvc.CheckSvcFacade, reportService portssvc.ReportService) {
	h := newCheckHandler(checkService, reportService)

	checks := rg.Group("/checks")
	{
		checks.GET("", h.listChecks)
		checks.POST("", h.createCheck)
		checks.GET("/export", h.exportChecks)
		checks.GET("/cash-flow", h.cashFlow)
		checks.GET("/:id", h.getCheck)
		checks.PUT("/:id", h.updateCheck)
		checks.PATCH("/:id/cash", h.markCashed)
		checks.DELETE("/:id", h.deleteCheck)
	}
}

// listChecks godoc
// @Summary List checks
// @Description Paged, filtered list with per-status totals over the whole filtered set
// @Tags checks
// @Produce  json
// @Param   search query string false "Free text over number, payee and memo"
// @Param   checkbookID query string false "Checkbook ID"
// @Param   bankID query string false "Bank ID"
// @Param   status query string false "PENDING, CASHED or VOID"
// @Param   dueFrom query string false "Due date from (YYYY-MM-DD, inclusive)"
// @Param   dueTo query string false "Due date to (YYYY-MM-DD, inclusive)"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.Envelope{data=dto.ListChecksResponse}
// @Failure 400 {object} dto.Envelope "Invalid filters"
// @Security BearerAuth
// @Router /checks [get]
func (h *checkHandler) listChecks(c *gin.Context) {
	var params dto.ListChecksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	page, err := h.checkService.QueryChecks(c.Request.Context(), filter, params.Page, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list checks")
		return
	}
	respondOK(c, http.StatusOK, dto.ToListChecksResponse(page), "")
}

// getCheck godoc
// @Summary Get a check
// @Tags checks
// @Produce  json
// @Param   id path string true "Check ID"
// @Success 200 {object} dto.Envelope{data=dto.CheckResponse}
// @Failure 404 {object} dto.Envelope "Check not found"
// @Security BearerAuth
// @Router /checks/{id} [get]
func (h *checkHandler) getCheck(c *gin.Context) {
	check, err := h.checkService.GetCheckByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve check")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCheckResponse(check), "")
}

// createCheck godoc
// @Summary Issue a check
// @Tags checks
// @Accept  json
// @Produce  json
// @Param   check body dto.CreateCheckRequest true "Check details"
// @Success 201 {object} dto.Envelope{data=dto.CheckResponse}
// @Failure 400 {object} dto.Envelope "Invalid input, inactive checkbook or number out of range"
// @Failure 404 {object} dto.Envelope "Checkbook not found"
// @Failure 409 {object} dto.Envelope "Number already used in the checkbook"
// @Security BearerAuth
// @Router /checks [post]
func (h *checkHandler) createCheck(c *gin.Context) {
	var req dto.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create check")
		return
	}
	respondOK(c, http.StatusCreated, dto.ToCheckResponse(check), "Check created")
}

// updateCheck godoc
// @Summary Update a check
// @Description Status changes move the checkbook balance. Moving into CASHED requires a past due date.
// @Tags checks
// @Accept  json
// @Produce  json
// @Param   id path string true "Check ID"
// @Param   check body dto.UpdateCheckRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.CheckResponse}
// @Failure 400 {object} dto.Envelope "Invalid input or not yet cashable"
// @Failure 409 {object} dto.Envelope "Duplicate number or concurrent modification"
// @Security BearerAuth
// @Router /checks/{id} [put]
func (h *checkHandler) updateCheck(c *gin.Context) {
	var req dto.UpdateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	check, err := h.checkService.UpdateCheck(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update check")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCheckResponse(check), "Check updated")
}

// markCashed godoc
// @Summary Mark a check as cashed
// @Tags checks
// @Produce  json
// @Param   id path string true "Check ID"
// @Success 200 {object} dto.Envelope{data=dto.CheckResponse}
// @Failure 400 {object} dto.Envelope "Due date not yet passed"
// @Failure 409 {object} dto.Envelope "Already cashed"
// @Security BearerAuth
// @Router /checks/{id}/cash [patch]
func (h *checkHandler) markCashed(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	check, err := h.checkService.MarkCashed(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to cash check")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCheckResponse(check), "Check cashed")
}

// deleteCheck godoc
// @Summary Delete a check
// @Description A cashed check is credited back to its checkbook
// @Tags checks
// @Produce  json
// @Param   id path string true "Check ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Check not found"
// @Security BearerAuth
// @Router /checks/{id} [delete]
func (h *checkHandler) deleteCheck(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.checkService.DeleteCheck(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete check")
		return
	}
	respondOK(c, http.StatusOK, nil, "Check deleted")
}

// cashFlow godoc
// @Summary Cash-flow pivot
// @Description Sums of check amounts by due date and bank for the filtered set
// @Tags checks
// @Produce  json
// @Param   search query string false "Free text over number, payee and memo"
// @Param   checkbookID query string false "Checkbook ID"
// @Param   bankID query string false "Bank ID"
// @Param   status query string false "PENDING, CASHED or VOID"
// @Param   dueFrom query string false "Due date from (YYYY-MM-DD)"
// @Param   dueTo query string false "Due date to (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=dto.CashFlowResponse}
// @Security BearerAuth
// @Router /checks/cash-flow [get]
func (h *checkHandler) cashFlow(c *gin.Context) {
	var params dto.CheckFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	pivot, err := h.reportService.CashFlow(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to build cash flow")
		return
	}
	respondOK(c, http.StatusOK, dto.ToCashFlowResponse(pivot), "")
}

// exportChecks godoc
// @Summary Export checks as a spreadsheet
// @Description Detail sheet with per-due-date subtotals and a grand total, plus a cash-flow pivot sheet
// @Tags checks
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   search query string false "Free text over number, payee and memo"
// @Param   checkbookID query string false "Checkbook ID"
// @Param   bankID query string false "Bank ID"
// @Param   status query string false "PENDING, CASHED or VOID"
// @Param   dueFrom query string false "Due date from (YYYY-MM-DD)"
// @Param   dueTo query string false "Due date to (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /checks/export [get]
func (h *checkHandler) exportChecks(c *gin.Context) {
	var params dto.CheckFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Invalid filters")
		return
	}

	// Rendered in full before any byte is sent, so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.reportService.ExportCashFlow(c.Request.Context(), filter, &buf); err != nil {
		respondError(c, err, "Failed to export checks")
		return
	}

	filename := fmt.Sprintf("checks-cash-flow-%s.xlsx", time.Now().UTC().Format("20060102"))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Streaming checks export",
		slog.String("filename", filename), slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
