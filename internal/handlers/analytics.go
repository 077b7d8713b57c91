package handlers

import (
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/ysagp/attendance-analytics/internal/services"
)

type AnalyticsHandler struct {
  breakdownService services.BreakdownService
}

func NewAnalyticsHandler(breakdownService services.BreakdownService) *AnalyticsHandler {
  return &AnalyticsHandler{breakdownService: breakdownService}
}

type classBreakdownRequest struct {
  Month   string `json:"month" binding:"required"`
  ClassID string `json:"classId"`
}

// ClassBreakdown returns the per-class breakdown documents for a month,
// keyed by classId. Classes without a synthesized document are absent from
// the map; callers treat partial coverage as normal.
func (ah *AnalyticsHandler) ClassBreakdown(c *gin.Context) {
  var req classBreakdownRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid-argument", fmt.Errorf("month is required: %w", err))
    return
  }
  result, err := ah.breakdownService.Generate(c.Request.Context(), req.Month, req.ClassID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "internal", err)
    return
  }
  RespondOK(c, result)
}
