package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	report "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/report"
)

const sheet = "Sheet1"

// SummaryWorkbook monta a planilha do resumo financeiro exportável
// pelo painel. O chamador é dono do arquivo e deve fechá-lo.
func SummaryWorkbook(s *report.Summary, periodLabel string) (*excelize.File, error) {
	f := excelize.NewFile()

	rows := [][2]any{
		{"Período", periodLabel},
		{"Receita", s.Revenue.StringFixed(2)},
		{"Despesas", s.Expenses.StringFixed(2)},
		{"Lucro líquido", s.NetProfit.StringFixed(2)},
		{"Receita crediário", s.CreditRevenue.StringFixed(2)},
		{"Receita agendada", s.ScheduledRevenue.StringFixed(2)},
		{"Receita walk-in", s.WalkInRevenue.StringFixed(2)},
		{"Receita produtos", s.ProductRevenue.StringFixed(2)},
		{"Transações", s.TransactionCount},
		{"Receita período anterior", s.PreviousRevenue.StringFixed(2)},
		{"Variação (%)", s.RevenueChangePct},
	}

	for i, row := range rows {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return nil, err
		}
	}

	base := len(rows) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Top serviços"); err != nil {
		return nil, err
	}
	for i, item := range s.TopServices {
		row := base + 1 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Count)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Total.StringFixed(2))
	}

	base += len(s.TopServices) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Top produtos"); err != nil {
		return nil, err
	}
	for i, item := range s.TopProducts {
		row := base + 1 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Count)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Total.StringFixed(2))
	}

	return f, nil
}
