package handlers

import (
	"errors"
	"net/http"

	"training_briefing/internal/service"
	"training_briefing/internal/webhook"

	"github.com/gin-gonic/gin"
)

// User-facing notifications, as shown on the page.
const (
	msgSubmitted    = "제출 완료! (Google 시트로 전송되었습니다)"
	msgSubmitFailed = "전송 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

	statusSubmitted = "submitted"
	statusClosed    = "closed"

	errOpenSession     = "failed to open session"
	errIssueToken      = "failed to issue session token"
	errSessionNotFound = "session not found"
	errInvalidBodyPref = "invalid body: "
)

// formUpdateRequest is a partial edit; absent fields are left unchanged and
// an empty menu resets the choice to the placeholder.
type formUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=64"`
	Menu *string `json:"menu,omitempty" validate:"omitempty,lunchmenu"`
}

// UpdateFormRequest is an exported model for Swagger docs of the form payload.
type UpdateFormRequest struct {
	// Real name of the attendee
	Name string `json:"name,omitempty" example:"홍길동"`
	// One of the configured menus, or "" to clear
	Menu string `json:"menu,omitempty" example:"김치찌개"`
}

// @Summary      Open a view session
// @Description  Creates an empty lunch form and returns a token for the session-scoped routes
// @Tags         session
// @Produce      json
// @Success      201  {object}  map[string]interface{}  "session_id, token, form"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Forms.Open(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errOpenSession, "session_open_failed", err)
		return
	}
	token, err := h.services.SessionTokens.IssueToken(st.SessionID)
	if err != nil {
		_ = h.services.Forms.Close(ctx, st.SessionID)
		h.logAndJSONError(c, http.StatusInternalServerError, errIssueToken, "session_token_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": st.SessionID,
		"token":      token,
		"form":       st,
	})
}

// @Summary      Close the view session
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/sessions [delete]
// @Security     BearerAuth
func (h *Handler) closeSession(c *gin.Context) {
	id := sessionIDFrom(c)
	if err := h.services.Forms.Close(c.Request.Context(), id); err != nil {
		h.respondFormError(c, err, "session_close_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusClosed})
}

// @Summary      Read the lunch form
// @Tags         form
// @Produce      json
// @Success      200  {object}  models.FormState
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/form [get]
// @Security     BearerAuth
func (h *Handler) getForm(c *gin.Context) {
	st, err := h.services.Forms.Get(c.Request.Context(), sessionIDFrom(c))
	if err != nil {
		h.respondFormError(c, err, "form_get_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Edit the lunch form
// @Description  Partial update; the response carries can_submit for gating the submit button
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateFormRequest  true  "Form fields"
// @Success      200   {object}  models.FormState
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/form [patch]
// @Security     BearerAuth
func (h *Handler) updateForm(c *gin.Context) {
	var req formUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if h.log != nil {
			h.log.Infow("form_update_invalid", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	st, err := h.services.Forms.Update(c.Request.Context(), sessionIDFrom(c), service.FormUpdate{
		Name: req.Name,
		Menu: req.Menu,
	})
	if err != nil {
		h.respondFormError(c, err, "form_update_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Submit the lunch form
// @Description  One POST to the sheet webhook. On success the selection is cached and the form cleared; on failure the form is kept for a manual retry.
// @Tags         form
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, message, record"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]interface{}  "error, form"
// @Router       /api/v1/form/submit [post]
// @Security     BearerAuth
func (h *Handler) submitForm(c *gin.Context) {
	ctx := c.Request.Context()
	id := sessionIDFrom(c)

	rec, err := h.services.Submission.Submit(ctx, id)
	if err != nil {
		if webhook.IsTransport(err) || webhook.IsRejection(err) {
			if h.log != nil {
				h.log.Errorw("form_submit_failed", "err", err, "session_id", id)
			}
			resp := gin.H{"error": msgSubmitFailed}
			if st, gerr := h.services.Forms.Get(ctx, id); gerr == nil {
				resp["form"] = st
			}
			c.JSON(http.StatusBadGateway, resp)
			return
		}
		h.respondFormError(c, err, "form_submit_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  statusSubmitted,
		"message": msgSubmitted,
		"record":  rec,
	})
}

// respondFormError maps workflow errors to HTTP statuses.
func (h *Handler) respondFormError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errSessionNotFound})
	case errors.Is(err, service.ErrUnknownMenu):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotSubmittable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err)
	}
}
