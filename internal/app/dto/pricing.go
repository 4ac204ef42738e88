package dto

import (
	"time"

	"rentdesk/internal/domain/pricing"
)

type AssignPrice struct {
	DateRange string  `json:"date_range" binding:"required"`
	Price     float64 `json:"price" binding:"min=0"`
}

type PriceAssignment struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	DateRange string    `json:"date_range"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func MapAssignment(a *pricing.Assignment) PriceAssignment {
	return PriceAssignment{
		ID:        a.ID,
		UnitID:    a.UnitID,
		DateRange: a.Range.WireLiteral(),
		Price:     a.Price,
		CreatedAt: a.CreatedAt,
	}
}

func MapAssignments(items []*pricing.Assignment) []PriceAssignment {
	out := make([]PriceAssignment, 0, len(items))
	for _, a := range items {
		out = append(out, MapAssignment(a))
	}
	return out
}

// ReportRow is one line of the yearly price report the PDF collaborator renders.
type ReportRow struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Nights int     `json:"nights"`
	Price  float64 `json:"price"`
}

type PriceReport struct {
	UnitID string      `json:"unit_id"`
	Year   int         `json:"year"`
	Rows   []ReportRow `json:"rows"`
}

func MapReport(unitID string, year int, entries []pricing.ReportEntry) PriceReport {
	report := PriceReport{UnitID: unitID, Year: year, Rows: make([]ReportRow, 0, len(entries))}
	for _, e := range entries {
		report.Rows = append(report.Rows, ReportRow{
			ID:     e.Assignment.ID,
			From:   e.Assignment.Range.Start.Format("2006-01-02"),
			To:     e.Assignment.Range.End.Format("2006-01-02"),
			Nights: e.Nights,
			Price:  e.Assignment.Price,
		})
	}
	return report
}

// Quote carries the remote pricing result. A null total means the price is
// unknown, which the caller must not render as zero.
type Quote struct {
	UnitID    string   `json:"unit_id"`
	DateRange string   `json:"date_range"`
	Total     *float64 `json:"total"`
}
