package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
)

const (
	qrImageName = "itinerary-qr"
	qrSizePx    = 256
	qrSizeMM    = 35.0
)

// колонки таблицы визитов: заголовок и ширина в мм
var visitColumns = []struct {
	title string
	width float64
}{
	{"#", 8},
	{"Place", 58},
	{"Category", 28},
	{"Arrive", 16},
	{"Leave", 16},
	{"Km", 16},
	{"Transport", 22},
	{"Entry", 16},
}

// Renderer - печатная версия маршрута с QR-ссылкой на его JSON
type Renderer struct {
	publicBaseURL string
	logger        *zap.Logger
}

func NewRenderer(publicBaseURL string, logger *zap.Logger) *Renderer {
	return &Renderer{
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// ItineraryURL - адрес маршрута, зашитый в QR
func (r *Renderer) ItineraryURL(id string) string {
	return fmt.Sprintf("%s/api/v1/itinerary/%s", r.publicBaseURL, id)
}

// Render формирует PDF документ A4
func (r *Renderer) Render(it *domain.Itinerary) ([]byte, error) {
	qrPNG, err := qrcode.Encode(r.ItineraryURL(it.ID), qrcode.Medium, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(it.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(140, 10, tr(it.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Dates: %s - %s (%d days)", it.StartDate, it.EndDate, it.TotalDays),
		fmt.Sprintf("Travelers: %d", it.TotalPeople),
		fmt.Sprintf("Status: %s", it.Status),
		fmt.Sprintf("Estimated cost: %.2f", it.TotalEstimatedCost),
	}
	for _, line := range summary {
		pdf.CellFormat(140, 7, tr(line), "", 1, "L", false, 0, "")
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 165, 10, qrSizeMM, qrSizeMM, false, imageOpts, 0, "")
	pdf.Ln(6)

	for _, day := range it.Days {
		r.renderDay(pdf, tr, day)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to build PDF: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	r.logger.Debug("Itinerary PDF rendered",
		zap.String("id", it.ID),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (r *Renderer) renderDay(pdf *gofpdf.Fpdf, tr func(string) string, day domain.DayPlan) {
	pdf.SetFont("Helvetica", "B", 13)
	heading := fmt.Sprintf("Day %d", day.DayNumber)
	if day.Date != "" {
		heading += "  " + day.Date
	}
	pdf.CellFormat(0, 9, heading, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s %s - %s %s", day.StartLocation, day.StartTime, day.EndLocation, day.EndTime)), "", 1, "L", false, 0, "")

	if len(day.Places) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 7, "Free day, no visits planned", "", 1, "L", false, 0, "")
		pdf.Ln(3)
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 236, 245)
	for _, col := range visitColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, leg := range day.Places {
		cells := []string{
			fmt.Sprintf("%d", leg.VisitOrder),
			truncate(leg.PlaceName, 34),
			truncate(leg.Category, 16),
			leg.ArrivalTime,
			leg.DepartureTime,
			fmt.Sprintf("%.1f", leg.DistanceFromPreviousKm),
			fmt.Sprintf("%s %.0f", leg.TransportMode, leg.TransportCost),
			fmt.Sprintf("%.0f", leg.EntryCost),
		}
		for i, col := range visitColumns {
			align := "L"
			if i != 1 && i != 2 {
				align = "C"
			}
			pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 7, fmt.Sprintf("Distance %.2f km, travel %.2f h, budget %.2f",
		day.TotalDistanceKm, day.TotalTravelTimeHours, day.DayBudget), "", 1, "R", false, 0, "")
	pdf.Ln(3)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "..."
}
