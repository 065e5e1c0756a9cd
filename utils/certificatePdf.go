package utils

import (
	"bytes"
	"fmt"
	"lms/config"
	"lms/services"

	"github.com/go-pdf/fpdf"
)

// RenderCertificatePdf renders a landscape A4 certificate from the resolved
// certificate details and returns the PDF bytes.
func RenderCertificatePdf(details *services.CertificateDetails) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	// Border
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(60, 90, 160)
	pdf.Rect(10, 10, pageW-20, 190, "D")

	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetY(35)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetY(60)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetY(72)
	pdf.CellFormat(0, 12, details.StudentName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetY(90)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetY(102)
	pdf.CellFormat(0, 10, details.CourseTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetY(120)
	pdf.CellFormat(0, 7, fmt.Sprintf("Instructor: %s", details.InstructorName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Completed on: %s", details.Certificate.CompletionDate.Format("January 2, 2006")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Issued on: %s", details.Certificate.IssuedAt.Format("January 2, 2006")), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetY(160)
	pdf.CellFormat(0, 6, config.AppConfig.CertificateIssuer, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate No: %s", details.Certificate.CertificateNumber), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
