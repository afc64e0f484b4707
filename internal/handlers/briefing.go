package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errGetBriefing = "failed to load briefing"
	errGetSaved    = "failed to load saved lunch selection"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Event briefing
// @Description  Event copy, agenda, menu options and the countdown as of now
// @Tags         briefing
// @Produce      json
// @Success      200  {object}  models.Briefing
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/briefing [get]
func (h *Handler) getBriefing(c *gin.Context) {
	b, err := h.services.Briefing.GetBriefing(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetBriefing, "briefing_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Countdown snapshot
// @Tags         briefing
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "countdown, label"
// @Router       /api/v1/countdown [get]
func (h *Handler) getCountdown(c *gin.Context) {
	st := h.services.Countdown.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"countdown": st,
		"label":     st.Label(),
	})
}

// @Summary      Last saved lunch selection
// @Description  Reads the single-slot cache written after a successful submission
// @Tags         lunch
// @Produce      json
// @Success      200  {object}  models.SubmissionRecord
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/lunch/saved [get]
func (h *Handler) getSavedLunch(c *gin.Context) {
	rec, ok, err := h.services.Submission.LastSubmitted(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetSaved, "saved_lunch_get_failed", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing submitted yet"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
