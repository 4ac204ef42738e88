package ginserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"rentdesk/internal/app/dto"
	"rentdesk/internal/app/services"
)

type PricingHandler struct {
	Service *services.PricingService
}

func (h PricingHandler) List(c *gin.Context) {
	items, err := h.Service.ListByUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h PricingHandler) Assign(c *gin.Context) {
	var in dto.AssignPrice
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Assign(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h PricingHandler) Remove(c *gin.Context) {
	if err := h.Service.Remove(c.Request.Context(), c.Param("id"), c.Param("priceId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type quoteRequest struct {
	DateRange string `json:"date_range" binding:"required"`
}

func (h PricingHandler) Quote(c *gin.Context) {
	var in quoteRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quote, err := h.Service.Quote(c.Request.Context(), c.Param("id"), in.DateRange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h PricingHandler) Report(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter must be an integer"})
		return
	}
	report, err := h.Service.Report(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

var _ PricingHTTP = PricingHandler{}
