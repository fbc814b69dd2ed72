// Package export renders trip plans as printable documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// ErrNoPlan is returned when there is nothing to render.
var ErrNoPlan = errors.New("no plan to export")

// Document is everything that goes into an exported trip.
type Document struct {
	Plan        *domain.Plan
	Origin      string
	StartDate   string
	EndDate     string
	Flights     []domain.Flight
	IsEstimated bool
	GeneratedAt time.Time
}

const (
	pageWidth    = 210.0
	marginX      = 20.0
	contentWidth = pageWidth - 2*marginX
	labelWidth   = 45.0
)

// PDF renders doc to an A4 document and returns the raw bytes.
func PDF(doc Document) ([]byte, error) {
	if doc.Plan == nil {
		return nil, ErrNoPlan
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(marginX, marginX, marginX)
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, fmt.Sprintf("Dream2Reality trip plan | Not a booking confirmation | Page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	plan := doc.Plan

	// Header bar
	pdf.SetFillColor(17, 94, 89)
	pdf.Rect(0, 0, pageWidth, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginX, 8)
	pdf.CellFormat(contentWidth, 10, tr("Dream2Reality: "+plan.ChosenDestination), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginX, 18)
	pdf.CellFormat(contentWidth, 6, tr(truncate(plan.UserQuery, 110)), "", 1, "L", false, 0, "")
	pdf.SetY(35)

	section := func(title string) {
		pdf.Ln(2)
		pdf.SetFillColor(17, 94, 89)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth-labelWidth, 7, tr(value), "", 1, "L", false, 0, "")
	}

	section("Trip Overview")
	row("Destination", plan.ChosenDestination)
	if doc.Origin != "" {
		row("From", doc.Origin)
	}
	if doc.StartDate != "" && doc.EndDate != "" {
		row("Dates", readableDate(doc.StartDate)+" to "+readableDate(doc.EndDate))
	}
	row("Duration", fmt.Sprintf("%d days", plan.DurationDays))
	row("Budget", string(plan.Budget))
	if len(plan.Themes) > 0 {
		row("Themes", strings.Join(plan.Themes, ", "))
	}
	row("Generated", doc.GeneratedAt.Format("02 Jan 2006, 15:04"))

	if len(plan.DestinationOptions) > 1 {
		section("Other Options")
		for _, opt := range plan.DestinationOptions {
			if strings.EqualFold(opt.Name, plan.ChosenDestination) {
				continue
			}
			row(opt.Name, opt.Summary)
		}
	}

	section("Itinerary")
	for _, day := range plan.Itinerary {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(17, 94, 89)
		pdf.CellFormat(contentWidth, 7, tr(fmt.Sprintf("Day %d: %s", day.Day, day.Title)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(22, 5, tr(a.Time), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			line := a.Name
			if a.Description != "" {
				line += ": " + a.Description
			}
			pdf.MultiCell(contentWidth-22, 5, tr(line), "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(doc.Flights) > 0 {
		title := "Flights"
		if doc.IsEstimated {
			title = "Flights (estimated)"
		}
		section(title)
		for _, f := range doc.Flights {
			row(fmt.Sprintf("%s %s", f.Airline, f.FlightNumber),
				fmt.Sprintf("%s-%s  %s -> %s  %s  %s", f.From, f.To, f.DepartTime, f.ArrivalTime, stopsLabel(f.Stops), money(f.Price, f.Currency)))
		}
	}

	if len(plan.Hotels) > 0 {
		section("Hotels")
		for _, h := range plan.Hotels {
			row(h.Name, fmt.Sprintf("%s, %s per night", h.Area, money(h.PricePerNight, "INR")))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns a download name for the plan.
func FileName(plan *domain.Plan) string {
	name := "trip"
	if plan != nil && plan.ChosenDestination != "" {
		name = strings.ToLower(strings.Join(strings.Fields(plan.ChosenDestination), "-"))
	}
	return "dream2reality-" + name + ".pdf"
}

func readableDate(iso string) string {
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func money(amount float64, currency string) string {
	return fmt.Sprintf("%s %.0f", domain.CoalesceStr(currency, "INR"), amount)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
