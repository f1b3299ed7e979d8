package documents

import (
	"bytes"
	"fmt"
	"log"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// QuotationPDFRenderer renders an inquiry record as a downloadable quotation
// request sheet. The built-in fonts only cover Latin glyphs, so a CJK TTF can
// be supplied through QUOTATION_FONT_PATH; without it the sheet falls back to
// the Latin core font.

type QuotationPDFRenderer struct {
	fontPath string
}

var _ interfaces.IQuotationRenderer = (*QuotationPDFRenderer)(nil)

func NewQuotationPDFRenderer(fontPath string) *QuotationPDFRenderer {
	return &QuotationPDFRenderer{fontPath: fontPath}
}

func (r *QuotationPDFRenderer) Render(q entities.Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Yuan Li Quotation Request %s", q.ID), true)
	pdf.SetAuthor("Yuan Li Transportation", true)

	family := "Helvetica"
	if r.fontPath != "" {
		family = "quotation"
		pdf.AddUTF8Font(family, "", r.fontPath)
		pdf.AddUTF8Font(family, "B", r.fontPath)
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 12, "Yuan Li Transportation Co., Ltd.", "", 1, "C", false, 0, "")

	pdf.SetFont(family, "B", 14)
	pdf.SetTextColor(74, 144, 226)
	pdf.CellFormat(0, 10, "QUOTATION REQUEST", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, fmt.Sprintf("Quote No: %s", q.ID), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Created: %s", q.CreatedAt.Format("2006-01-02")), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Customer", fmt.Sprintf("%s / %s", q.Customer.Company, q.Customer.Name)},
		{"Contact", fmt.Sprintf("%s / %s", q.Customer.Phone, q.Customer.Email)},
		{"Route", fmt.Sprintf("%s -> %s", q.Shipping.OriginCity, q.Shipping.DestCity)},
		{"Pickup", fmt.Sprintf("%s %s, %s", q.Shipping.OriginAddress, q.Shipping.PickupDate, q.Shipping.PickupTime)},
		{"Delivery", fmt.Sprintf("%s %s, %s", q.Shipping.DestAddress, q.Shipping.DeliveryDate, q.Shipping.DeliveryTime)},
		{"Cargo", fmt.Sprintf("%s / %s", q.Shipping.CargoType, q.Shipping.Weight)},
		{"Vehicle", q.Vehicle.Type},
		{"Status", string(q.Status)},
	}
	if q.Business.Price != nil {
		rows = append(rows, [2]string{"Price", fmt.Sprintf("NT$ %s", *q.Business.Price)})
	}
	if q.Business.Handler != nil {
		rows = append(rows, [2]string{"Handler", *q.Business.Handler})
	}

	for _, row := range rows {
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(35, 8, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		pdf.MultiCell(0, 8, row[1], "B", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont(family, "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "Yuan Li Transportation - Kaohsiung, Taiwan - Tel: 07-3757599", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[quote][pdf] render failed id=%s err=%v", q.ID, err)
		return nil, err
	}
	return buf.Bytes(), nil
}
