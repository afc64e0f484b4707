package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"training_briefing/internal/models"
	"training_briefing/internal/service"
	"training_briefing/internal/webhook"
)

var testMenus = []string{"김치찌개", "된장찌개", "안 먹겠음"}

func formService(forms *mockForms, sub *mockSubmission) *service.Service {
	if forms.menus == nil {
		forms.menus = testMenus
	}
	return &service.Service{
		Forms:         forms,
		Submission:    sub,
		SessionTokens: &mockTokens{parseID: "sess-1"},
	}
}

func doJSON(t *testing.T, s *service.Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(s)
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range authHeader("tok") {
		req.Header[k] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %s: %v", w.Body.String(), err)
	}
	return out
}

func TestOpenSession_ReturnsTokenAndEmptyForm(t *testing.T) {
	forms := &mockForms{state: models.FormState{SessionID: "sess-9"}}
	tokens := &mockTokens{token: "signed"}
	s := &service.Service{Forms: forms, SessionTokens: tokens}

	r := newTestRouter(s)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201; body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		SessionID string           `json:"session_id"`
		Token     string           `json:"token"`
		Form      models.FormState `json:"form"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.SessionID != "sess-9" || resp.Token != "signed" || resp.Form.CanSubmit {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if tokens.lastIssue != "sess-9" {
		t.Fatalf("IssueToken got %q", tokens.lastIssue)
	}
}

func TestOpenSession_TokenFailureClosesSession(t *testing.T) {
	forms := &mockForms{state: models.FormState{SessionID: "sess-9"}}
	s := &service.Service{Forms: forms, SessionTokens: &mockTokens{issueErr: errors.New("no key")}}

	r := newTestRouter(s)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
	if forms.closedID != "sess-9" {
		t.Fatalf("session not closed after token failure: %q", forms.closedID)
	}
}

func TestCloseSession(t *testing.T) {
	forms := &mockForms{}
	w := doJSON(t, formService(forms, &mockSubmission{}), http.MethodDelete, "/api/v1/sessions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if forms.closedID != "sess-1" {
		t.Fatalf("closed %q, want sess-1", forms.closedID)
	}

	forms = &mockForms{err: service.ErrSessionNotFound}
	w = doJSON(t, formService(forms, &mockSubmission{}), http.MethodDelete, "/api/v1/sessions", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
}

func TestGetForm(t *testing.T) {
	forms := &mockForms{state: models.FormState{
		SessionID: "sess-1",
		Selection: models.LunchSelection{Name: "홍길동", Menu: "김치찌개"},
		CanSubmit: true,
	}}
	w := doJSON(t, formService(forms, &mockSubmission{}), http.MethodGet, "/api/v1/form", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var st models.FormState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !st.CanSubmit || st.Selection.Name != "홍길동" {
		t.Fatalf("unexpected form: %+v", st)
	}
	if forms.lastID != "sess-1" {
		t.Fatalf("Get called with %q", forms.lastID)
	}
}

func TestUpdateForm(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		formsErr error
		code     int
		wantName *string
		wantMenu *string
	}{
		{name: "name only", body: `{"name":"홍길동"}`, code: http.StatusOK, wantName: strPtr("홍길동")},
		{name: "menu only", body: `{"menu":"된장찌개"}`, code: http.StatusOK, wantMenu: strPtr("된장찌개")},
		{name: "clear menu", body: `{"menu":""}`, code: http.StatusOK, wantMenu: strPtr("")},
		{name: "no meal option", body: `{"name":"a","menu":"안 먹겠음"}`, code: http.StatusOK, wantName: strPtr("a"), wantMenu: strPtr("안 먹겠음")},
		{name: "unknown menu", body: `{"menu":"pizza"}`, code: http.StatusBadRequest},
		{name: "malformed json", body: `{"name":`, code: http.StatusBadRequest},
		{name: "name too long", body: fmt.Sprintf(`{"name":%q}`, strings.Repeat("가", 65)), code: http.StatusBadRequest},
		{name: "session gone", body: `{"name":"a"}`, formsErr: service.ErrSessionNotFound, code: http.StatusNotFound},
		{name: "submit in flight", body: `{"name":"a"}`, formsErr: service.ErrSubmissionInFlight, code: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forms := &mockForms{err: tc.formsErr}
			w := doJSON(t, formService(forms, &mockSubmission{}), http.MethodPatch, "/api/v1/form", tc.body)
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d; body=%s", w.Code, tc.code, w.Body.String())
			}
			if tc.code != http.StatusOK {
				return
			}
			if !samePtr(forms.lastUpdate.Name, tc.wantName) || !samePtr(forms.lastUpdate.Menu, tc.wantMenu) {
				t.Fatalf("update: got %+v", forms.lastUpdate)
			}
		})
	}
}

func TestSubmitForm_Success(t *testing.T) {
	rec := models.SubmissionRecord{Name: "홍길동", Menu: "김치찌개", Timestamp: "2025-10-01T00:00:00.000Z"}
	sub := &mockSubmission{rec: rec}
	w := doJSON(t, formService(&mockForms{}, sub), http.MethodPost, "/api/v1/form/submit", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Status  string                  `json:"status"`
		Message string                  `json:"message"`
		Record  models.SubmissionRecord `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "submitted" || resp.Message != "제출 완료! (Google 시트로 전송되었습니다)" || resp.Record != rec {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if sub.lastID != "sess-1" {
		t.Fatalf("Submit called with %q", sub.lastID)
	}
}

func TestSubmitForm_Errors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		wantForm bool
	}{
		{"not submittable", service.ErrNotSubmittable, http.StatusUnprocessableEntity, false},
		{"in flight", service.ErrSubmissionInFlight, http.StatusConflict, false},
		{"session gone", service.ErrSessionNotFound, http.StatusNotFound, false},
		{"transport", fmt.Errorf("submit lunch: %w", &webhook.TransportError{Endpoint: "http://x", Err: errors.New("refused")}), http.StatusBadGateway, true},
		{"rejection", fmt.Errorf("submit lunch: %w", &webhook.ServerRejection{StatusCode: 500}), http.StatusBadGateway, true},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forms := &mockForms{state: models.FormState{
				SessionID: "sess-1",
				Selection: models.LunchSelection{Name: "홍길동", Menu: "김치찌개"},
				CanSubmit: true,
			}}
			w := doJSON(t, formService(forms, &mockSubmission{err: tc.err}), http.MethodPost, "/api/v1/form/submit", "")
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d; body=%s", w.Code, tc.code, w.Body.String())
			}
			body := decodeBody(t, w)
			if _, ok := body["form"]; ok != tc.wantForm {
				t.Fatalf("form present=%v, want %v; body=%s", ok, tc.wantForm, w.Body.String())
			}
			if !tc.wantForm {
				return
			}
			var msg string
			_ = json.Unmarshal(body["error"], &msg)
			if msg != "전송 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요." {
				t.Fatalf("error message: got %q", msg)
			}
			var st models.FormState
			_ = json.Unmarshal(body["form"], &st)
			if st.Selection.Name != "홍길동" || st.Selection.Menu != "김치찌개" {
				t.Fatalf("form not preserved: %+v", st)
			}
		})
	}
}

func TestSessionRoutesRequireToken(t *testing.T) {
	r := newTestRouter(formService(&mockForms{}, &mockSubmission{}))
	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/form"},
		{http.MethodPatch, "/api/v1/form"},
		{http.MethodPost, "/api/v1/form/submit"},
		{http.MethodDelete, "/api/v1/sessions"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: got %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}

func strPtr(s string) *string { return &s }

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
