package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/ysagp/attendance-analytics/internal/logger"
  "github.com/ysagp/attendance-analytics/internal/services"
  "github.com/ysagp/attendance-analytics/internal/types"
)

// EventHandler is the thin adapter binding the pure event services to the
// platform's push delivery. Status codes drive redelivery: 204 acknowledges
// (including handled no-ops), 400 drops malformed envelopes for good, and
// 500 makes the at-least-once subscription redeliver. Redelivery after a
// partially applied increment reapplies the delta; that non-idempotence is
// the documented contract, not something this layer masks.
type EventHandler struct {
  log      *logger.Logger
  records  services.RecordEventService
  sessions services.SessionEventService
}

func NewEventHandler(log *logger.Logger, records services.RecordEventService, sessions services.SessionEventService) *EventHandler {
  return &EventHandler{
    log:      log.With("handler", "EventHandler"),
    records:  records,
    sessions: sessions,
  }
}

func (eh *EventHandler) RecordChanged(c *gin.Context) {
  var change types.RecordChange
  if err := c.ShouldBindJSON(&change); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid-argument", err)
    return
  }
  if err := eh.records.Handle(c.Request.Context(), change); err != nil {
    eh.log.Error("Record event failed", "record_id", change.RecordID, "error", err)
    RespondError(c, http.StatusInternalServerError, "internal", err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (eh *EventHandler) SessionChanged(c *gin.Context) {
  var change types.SessionChange
  if err := c.ShouldBindJSON(&change); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid-argument", err)
    return
  }
  if err := eh.sessions.Handle(c.Request.Context(), change); err != nil {
    eh.log.Error("Session event failed", "session_id", change.SessionID, "error", err)
    RespondError(c, http.StatusInternalServerError, "internal", err)
    return
  }
  c.Status(http.StatusNoContent)
}
