package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/domain/daterange"
	"rentdesk/internal/domain/pricing"
	"rentdesk/internal/domain/reservation"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, literal string) daterange.Interval {
	t.Helper()
	iv, err := daterange.Parse(literal)
	require.NoError(t, err)
	return iv
}

func testReservation(t *testing.T, id, literal string) *reservation.Reservation {
	t.Helper()
	r, err := reservation.New(reservation.CreateParams{
		ID:     id,
		UnitID: "unit-1",
		Guest:  reservation.Guest{FirstName: "Ana", LastName: "Horvat", GuestCount: 2, Country: "HR"},
		Range:  mustInterval(t, literal),
		Type:   reservation.TypeCustom,
	})
	require.NoError(t, err)
	return r
}

func testAssignment(t *testing.T, id, literal string, price float64) *pricing.Assignment {
	t.Helper()
	a, err := pricing.NewAssignment(id, "unit-1", mustInterval(t, literal), price, day(2024, time.January, 1))
	require.NoError(t, err)
	return a
}

func TestStatusPrecedenceSoldBeatsPriced(t *testing.T) {
	res := testReservation(t, "res-1", "[2024-06-10,2024-06-13)")
	price := testAssignment(t, "price-1", "[2024-06-10,2024-06-15)", 100)

	ix := Build([]*reservation.Reservation{res}, []*pricing.Assignment{price}, false)

	for d := 10; d <= 12; d++ {
		entry := ix.Status(fmt.Sprintf("202406%02d", d))
		assert.Equal(t, StatusSold, entry.Status, "day %d", d)
		require.NotNil(t, entry.Price, "sold day keeps its price for display")
		assert.Equal(t, 100.0, *entry.Price)
	}
	for d := 13; d <= 14; d++ {
		entry := ix.Status(fmt.Sprintf("202406%02d", d))
		assert.Equal(t, StatusAvailable, entry.Status, "day %d", d)
		require.NotNil(t, entry.Price)
		assert.Equal(t, 100.0, *entry.Price)
	}
	assert.Equal(t, StatusUnset, ix.Status("20240615").Status, "departure day past the price range")
}

func TestReservationEdgeFlags(t *testing.T) {
	res := testReservation(t, "res-1", "[2024-06-10,2024-06-13)")
	ix := Build([]*reservation.Reservation{res}, nil, false)

	first := ix.Status("20240610")
	require.NotNil(t, first.Reservation)
	assert.True(t, first.Reservation.IsFirstDay)
	assert.False(t, first.Reservation.IsLastDay)
	assert.Equal(t, "Ana Horvat", first.Reservation.GuestLabel)

	middle := ix.Status("20240611")
	require.NotNil(t, middle.Reservation)
	assert.False(t, middle.Reservation.IsFirstDay)
	assert.False(t, middle.Reservation.IsLastDay)

	last := ix.Status("20240612")
	require.NotNil(t, last.Reservation)
	assert.True(t, last.Reservation.IsLastDay)

	departure := ix.Status("20240613")
	assert.Equal(t, StatusUnset, departure.Status, "departure day itself is not sold")
}

func TestLoadingOverridesEverything(t *testing.T) {
	res := testReservation(t, "res-1", "[2024-06-10,2024-06-13)")
	price := testAssignment(t, "price-1", "[2024-06-10,2024-06-15)", 100)

	loading := Build([]*reservation.Reservation{res}, []*pricing.Assignment{price}, true)
	assert.True(t, loading.Loading())
	assert.Equal(t, StatusLoading, loading.Status("20240610").Status)
	assert.Equal(t, StatusLoading, loading.Status("19990101").Status, "any key answers LOADING")

	settled := Build([]*reservation.Reservation{res}, []*pricing.Assignment{price}, false)
	assert.Equal(t, StatusSold, settled.Status("20240610").Status, "same inputs settle once loading clears")
}

func TestPriceOverlapLastInInputOrderWins(t *testing.T) {
	older := testAssignment(t, "price-old", "[2024-06-10,2024-06-15)", 80)
	newer := testAssignment(t, "price-new", "[2024-06-12,2024-06-14)", 120)

	ix := Build(nil, []*pricing.Assignment{older, newer}, false)

	require.NotNil(t, ix.Status("20240610").Price)
	assert.Equal(t, 80.0, *ix.Status("20240610").Price)
	require.NotNil(t, ix.Status("20240612").Price)
	assert.Equal(t, 120.0, *ix.Status("20240612").Price)
	require.NotNil(t, ix.Status("20240614").Price)
	assert.Equal(t, 80.0, *ix.Status("20240614").Price)
}

func TestBadRecordIsolation(t *testing.T) {
	prices := make([]*pricing.Assignment, 0, 50)
	start := day(2024, time.January, 1)
	for i := 0; i < 49; i++ {
		from := start.AddDate(0, 0, i*2)
		iv, err := daterange.New(from, from.AddDate(0, 0, 2))
		require.NoError(t, err)
		a, err := pricing.NewAssignment(fmt.Sprintf("price-%d", i), "unit-1", iv, 50, start)
		require.NoError(t, err)
		prices = append(prices, a)
	}
	// Inverted range, constructed directly to bypass constructor validation
	// the way a corrupt store row would.
	bad := &pricing.Assignment{
		ID:     "price-bad",
		UnitID: "unit-1",
		Range:  daterange.Interval{Start: day(2024, time.July, 5), End: day(2024, time.July, 1)},
		Price:  10,
	}
	prices = append(prices, bad)

	ix := Build(nil, prices, false)

	require.Len(t, ix.Warnings, 1)
	assert.Equal(t, RecordPrice, ix.Warnings[0].Kind)
	assert.Equal(t, "price-bad", ix.Warnings[0].ID)
	assert.ErrorIs(t, ix.Warnings[0].Reason, daterange.ErrInvalidRange)
	assert.Len(t, ix.Entries(), 49*2, "the other 49 assignments still contribute")
}

func TestWarningPrefersStoredParseFailure(t *testing.T) {
	_, parseErr := daterange.Parse("2024-06-10/2024-06-15")
	require.Error(t, parseErr)
	corrupt := &pricing.Assignment{ID: "price-corrupt", UnitID: "unit-1", RangeErr: parseErr}

	ix := Build(nil, []*pricing.Assignment{corrupt}, false)

	require.Len(t, ix.Warnings, 1)
	var pe *daterange.ParseError
	require.ErrorAs(t, ix.Warnings[0].Reason, &pe, "the warning names the actual parse failure, not the generic range check")
	assert.Contains(t, pe.Error(), "2024-06-10/2024-06-15")
}

func TestUnknownDayIsUnset(t *testing.T) {
	ix := Build(nil, nil, false)
	entry := ix.Status("20240610")
	assert.Equal(t, StatusUnset, entry.Status)
	assert.Nil(t, entry.Price)
	assert.Nil(t, entry.Reservation)
}
