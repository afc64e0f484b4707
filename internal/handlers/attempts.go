package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"training_briefing/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List submit attempts
// @Description  Diagnostic log of submit calls. If 'to' is date-only it is treated as end-of-day inclusive.
// @Tags         diagnostics
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-10-01)
// @Param        to    query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-10-31)
// @Param        type  query   string  false  "Outcome"  Enums(SUCCESS,TRANSPORT_ERROR,SERVER_REJECTION)
// @Success      200   {object}  map[string]interface{}  "count, attempts"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/attempts [get]
func (h *Handler) getAttempts(c *gin.Context) {
	var (
		from    time.Time
		to      time.Time
		outcome = strings.ToUpper(strings.TrimSpace(c.Query("type")))
		err     error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}
	switch outcome {
	case "", service.OutcomeSuccess, service.OutcomeTransportError, service.OutcomeServerRejection:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'type'; use SUCCESS, TRANSPORT_ERROR or SERVER_REJECTION"})
		return
	}

	attempts, err := h.services.AttemptLog.List(c.Request.Context(), service.AttemptFilter{
		From:    from,
		To:      to,
		Outcome: outcome,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load attempts", "attempts_list_failed", err,
			"from", from, "to", to, "type", outcome)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(attempts),
		"attempts": attempts,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-10-29T09:30:00+09:00), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
