package ginserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/app/services"
	domainreservation "rentdesk/internal/domain/reservation"
	"rentdesk/internal/infra/config"
	"rentdesk/internal/infra/obs"
	"rentdesk/internal/infra/storage/memory"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	reservations := memory.NewReservationRepository()
	prices := memory.NewPriceRepository()
	units := memory.NewUnitRepository()

	handlers := Handlers{
		Calendar: CalendarHandler{Service: &services.CalendarService{
			Reservations: reservations,
			Prices:       prices,
			Events:       services.NopPublisher{},
		}},
		Reservation: ReservationHandler{Service: &services.ReservationService{
			Reservations: reservations,
			Units:        units,
			Events:       services.NopPublisher{},
		}},
		Pricing: PricingHandler{Service: &services.PricingService{
			Prices: prices,
			Quotes: memory.NewQuoteEngine(),
			Events: services.NopPublisher{},
		}},
		Unit: UnitHandler{Service: &services.UnitService{Units: units}},
	}
	server := NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{}, obs.HealthHandlers{}, handlers)
	return server.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCalendarEndToEnd(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/units", dto.SaveUnit{Name: "Sea View", Capacity: 4})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var createdUnit dto.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createdUnit))

	base := fmt.Sprintf("/api/v1/units/%s", createdUnit.ID)

	rec = doJSON(t, h, http.MethodPost, base+"/reservations", dto.CreateReservation{
		GuestFirstName: "Petra",
		GuestCount:     2,
		DateRange:      "[2030-06-10,2030-06-13)",
		TotalPrice:     360,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodPost, base+"/prices", dto.AssignPrice{
		DateRange: "[2030-06-10,2030-06-15)",
		Price:     120,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, base+"/calendar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cal dto.Calendar
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cal))
	assert.False(t, cal.Loading)
	assert.Equal(t, "SOLD", cal.Days["20300610"].Status)
	assert.Equal(t, "SOLD", cal.Days["20300612"].Status)
	assert.Equal(t, "AVAILABLE", cal.Days["20300613"].Status, "departure day is not sold")
	require.NotNil(t, cal.Days["20300613"].Price)
	assert.Equal(t, 120.0, *cal.Days["20300613"].Price)
}

// stalledReservationRepo blocks until the request context expires, standing
// in for a hung store.
type stalledReservationRepo struct {
	domainreservation.Repository
}

func (stalledReservationRepo) ListByUnit(ctx context.Context, unitID string) ([]*domainreservation.Reservation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCalendarFetchTimeoutAnswers504(t *testing.T) {
	handlers := Handlers{
		Calendar: CalendarHandler{
			Service: &services.CalendarService{
				Reservations: stalledReservationRepo{},
				Prices:       memory.NewPriceRepository(),
				Events:       services.NopPublisher{},
			},
			FetchTimeout: 20 * time.Millisecond,
		},
	}
	server := NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{}, obs.HealthHandlers{}, handlers)

	rec := doJSON(t, server.Handler, http.MethodGet, "/api/v1/units/unit-1/calendar", nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code, "a hung fetch must surface as an error, not an indefinite loading state")
}

func TestCreateReservationBadLiteralIs400(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/units", dto.SaveUnit{Name: "Sea View", Capacity: 4})
	require.Equal(t, http.StatusCreated, rec.Code)
	var createdUnit dto.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createdUnit))

	rec = doJSON(t, h, http.MethodPost, "/api/v1/units/"+createdUnit.ID+"/reservations", dto.CreateReservation{
		GuestFirstName: "Petra",
		GuestCount:     2,
		DateRange:      "June 10 to June 13",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/units", dto.SaveUnit{Name: "Sea View", Capacity: 4})
	require.Equal(t, http.StatusCreated, rec.Code)
	var createdUnit dto.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createdUnit))

	rec = doJSON(t, h, http.MethodPost, "/api/v1/units/"+createdUnit.ID+"/quote", map[string]string{
		"date_range": "[2030-06-10,2030-06-13)",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var quote dto.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	require.NotNil(t, quote.Total)
	assert.Equal(t, 300.0, *quote.Total, "three nights at the memory engine's nightly rate")
}

func TestPriceReportEndpoint(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/units", dto.SaveUnit{Name: "Sea View", Capacity: 4})
	require.Equal(t, http.StatusCreated, rec.Code)
	var createdUnit dto.Unit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createdUnit))
	base := "/api/v1/units/" + createdUnit.ID

	for _, literal := range []string{"[2030-07-01,2030-07-15)", "[2029-12-31,2030-01-05)"} {
		rec = doJSON(t, h, http.MethodPost, base+"/prices", dto.AssignPrice{DateRange: literal, Price: 100})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, base+"/price-report?year=2030", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report dto.PriceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2030-07-01", report.Rows[0].From)
	assert.Equal(t, 14, report.Rows[0].Nights)

	rec = doJSON(t, h, http.MethodGet, base+"/price-report?year=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
