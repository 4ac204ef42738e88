package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"rentdesk/internal/app/services"
	"rentdesk/internal/domain/daterange"
	domainpricing "rentdesk/internal/domain/pricing"
	domainreservation "rentdesk/internal/domain/reservation"
	domainunit "rentdesk/internal/domain/unit"
)

func respondError(c *gin.Context, err error) {
	var pe *daterange.ParseError
	switch {
	case errors.As(err, &pe):
		c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})
	case errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, domainreservation.ErrInvalidGuestCount),
		errors.Is(err, domainreservation.ErrGuestNameRequired),
		errors.Is(err, domainreservation.ErrInvalidPrepayment),
		errors.Is(err, domainpricing.ErrNegativePrice),
		errors.Is(err, services.ErrCapacityExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainreservation.ErrNotFound),
		errors.Is(err, domainpricing.ErrNotFound),
		errors.Is(err, domainunit.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
