package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/report"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/export"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	ucReport "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/report"
)

const defaultTopN = 5

type ReportHandler struct {
	summaryUC *ucReport.GetSummary
}

func NewReportHandler(summaryUC *ucReport.GetSummary) *ReportHandler {
	return &ReportHandler{summaryUC: summaryUC}
}

func (h *ReportHandler) summaryInput(c *gin.Context) ucReport.GetSummaryInput {
	period := c.DefaultQuery("period", string(domain.PeriodMonth))

	topN := defaultTopN
	if v := c.Query("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			topN = n
		}
	}

	return ucReport.GetSummaryInput{
		Period:      domain.Period(period),
		CustomStart: c.Query("start"),
		CustomEnd:   c.Query("end"),
		TopN:        topN,
	}
}

// ======================================================
// SUMMARY
// ======================================================

func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.summaryUC.Execute(c.Request.Context(), h.summaryInput(c))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ======================================================
// EXPORT XLSX
// ======================================================

var periodLabels = map[domain.Period]string{
	domain.PeriodToday:  "Hoje",
	domain.PeriodWeek:   "Esta semana",
	domain.PeriodMonth:  "Este mês",
	domain.PeriodYear:   "Este ano",
	domain.PeriodAll:    "Todo o período",
	domain.PeriodCustom: "Período personalizado",
}

func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	in := h.summaryInput(c)

	summary, err := h.summaryUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	label := periodLabels[in.Period]
	if label == "" {
		label = string(in.Period)
	}

	f, err := export.SummaryWorkbook(summary, label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_build_workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="relatorio-financeiro.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_write_workbook"})
		return
	}
}
