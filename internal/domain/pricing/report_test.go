package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/domain/daterange"
)

func assignment(t *testing.T, id string, start, end time.Time, price float64) *Assignment {
	t.Helper()
	iv, err := daterange.New(start, end)
	require.NoError(t, err)
	a, err := NewAssignment(id, "unit-1", iv, price, start)
	require.NoError(t, err)
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearReportFiltersByStartYear(t *testing.T) {
	prior := assignment(t, "prior", date(2023, time.December, 31), date(2024, time.January, 3), 90)
	janFirst := assignment(t, "jan", date(2024, time.January, 1), date(2024, time.January, 5), 100)
	summer := assignment(t, "summer", date(2024, time.July, 1), date(2024, time.July, 15), 150)

	entries := YearReport([]*Assignment{summer, prior, janFirst}, 2024)

	require.Len(t, entries, 2)
	assert.Equal(t, "jan", entries[0].Assignment.ID, "sorted ascending by start date")
	assert.Equal(t, "summer", entries[1].Assignment.ID)
	assert.Equal(t, 4, entries[0].Nights)
	assert.Equal(t, 14, entries[1].Nights)
}

func TestYearReportEmptyYear(t *testing.T) {
	a := assignment(t, "a", date(2024, time.May, 1), date(2024, time.May, 3), 80)
	assert.Empty(t, YearReport([]*Assignment{a}, 2025))
}

func TestNewAssignmentRejectsNegativePrice(t *testing.T) {
	iv, err := daterange.New(date(2024, time.May, 1), date(2024, time.May, 3))
	require.NoError(t, err)
	_, err = NewAssignment("a", "unit-1", iv, -1, date(2024, time.May, 1))
	assert.ErrorIs(t, err, ErrNegativePrice)
}
