package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ReceiptPDF gera o recibo de pagamento de uma parcela.
func ReceiptPDF(w io.Writer, sale *models.CreditSale, installment *models.Installment) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Recibo de Pagamento - Crediario", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Dados da venda", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Cliente: %s", sale.ClientName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Produtos: %s", sale.Products), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Total: R$ %s", sale.TotalAmount.StringFixed(2)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Restante: R$ %s", sale.RemainingAmount.StringFixed(2)), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Parcela", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Parcela: %d/%d", installment.InstallmentNumber, sale.NumberOfInstallments), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Valor: R$ %s", installment.Amount.StringFixed(2)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Vencimento: %s", installment.DueDate), "LB", 0, "L", false, 0, "")
	if installment.PaidDate != "" {
		pdf.CellFormat(95, 7, fmt.Sprintf("Pago em: %s (%s)", installment.PaidDate, installment.PaymentMethod), "RB", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(95, 7, "Pago em: -", "RB", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
