package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/domain/daterange"
)

type fixedQuoter struct {
	total *float64
}

func (q fixedQuoter) Quote(ctx context.Context, unitID string, r daterange.Interval) (*float64, error) {
	return q.total, nil
}

func pricingServiceFixture(q Quoter) (*PricingService, *fakePriceRepo) {
	repo := &fakePriceRepo{}
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := &PricingService{
		Prices: repo,
		Quotes: q,
		Events: &recordingPublisher{},
		Now:    func() time.Time { return created },
	}
	return svc, repo
}

func TestAssignPrice(t *testing.T) {
	svc, repo := pricingServiceFixture(nil)

	a, err := svc.Assign(context.Background(), "unit-1", dto.AssignPrice{
		DateRange: "[2024-06-10,2024-06-14]",
		Price:     120,
	})

	require.NoError(t, err)
	assert.Equal(t, "[2024-06-10,2024-06-15)", a.DateRange, "inclusive upper bound normalized on write")
	assert.Len(t, repo.items, 1)
}

func TestAssignPriceRejectsMalformedRange(t *testing.T) {
	svc, repo := pricingServiceFixture(nil)

	_, err := svc.Assign(context.Background(), "unit-1", dto.AssignPrice{DateRange: "nope", Price: 120})

	var pe *daterange.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Empty(t, repo.items)
}

func TestReportProjectsYear(t *testing.T) {
	svc, _ := pricingServiceFixture(nil)
	_, err := svc.Assign(context.Background(), "unit-1", dto.AssignPrice{DateRange: "[2024-06-10,2024-06-15)", Price: 120})
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), "unit-1", dto.AssignPrice{DateRange: "[2023-12-31,2024-01-05)", Price: 90})
	require.NoError(t, err)

	report, err := svc.Report(context.Background(), "unit-1", 2024)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1, "assignment starting in the prior year is excluded")
	assert.Equal(t, "2024-06-10", report.Rows[0].From)
	assert.Equal(t, 5, report.Rows[0].Nights)
}

func TestQuoteCarriesNullForUnknownPrice(t *testing.T) {
	svc, _ := pricingServiceFixture(fixedQuoter{total: nil})

	quote, err := svc.Quote(context.Background(), "unit-1", "[2024-06-10,2024-06-15)")

	require.NoError(t, err)
	assert.Nil(t, quote.Total, "unknown price stays null, never zero")
	assert.Equal(t, "[2024-06-10,2024-06-15)", quote.DateRange)
}
