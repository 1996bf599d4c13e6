package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

type mockAnswerer struct {
	answerFunc func(ctx context.Context, question string) (models.Answer, error)
	calls      []string
}

func (m *mockAnswerer) Answer(ctx context.Context, question string) (models.Answer, error) {
	m.calls = append(m.calls, question)
	if m.answerFunc != nil {
		return m.answerFunc(ctx, question)
	}
	return models.Answer{}, nil
}

func postAnswer(t *testing.T, h *AnswerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/answer", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Answer(rec, req)
	return rec
}

func TestAnswer_Success(t *testing.T) {
	mock := &mockAnswerer{
		answerFunc: func(_ context.Context, _ string) (models.Answer, error) {
			return models.Answer{
				Category: models.CategoryGeneric,
				Text:     "올 시즌 홈런 1위는 김도영이에요.",
				Rows:     []models.Row{{"name": "김도영", "hr": 35.0}},
			}, nil
		},
	}
	h := NewAnswerHandler(mock, zaptest.NewLogger(t))

	rec := postAnswer(t, h, `{"question": "홈런 1위 누구야?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AnswerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("request_id missing")
	}
	if resp.Category != "generic_query" {
		t.Errorf("category = %q", resp.Category)
	}
	if !strings.Contains(resp.Text, "김도영") {
		t.Errorf("text = %q", resp.Text)
	}
	if len(mock.calls) != 1 || mock.calls[0] != "홈런 1위 누구야?" {
		t.Errorf("calls = %v", mock.calls)
	}
}

func TestAnswer_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty question", `{"question": ""}`, http.StatusBadRequest, "missing_question"},
		{"not json", `question?`, http.StatusBadRequest, "invalid_request"},
		{"too long", `{"question": "` + strings.Repeat("아", maxQuestionLength+1) + `"}`, http.StatusBadRequest, "question_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAnswerer{}
			h := NewAnswerHandler(mock, zaptest.NewLogger(t))

			rec := postAnswer(t, h, tt.body)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			if resp["error"] != tt.wantCode {
				t.Errorf("error = %q, want %q", resp["error"], tt.wantCode)
			}
			if len(mock.calls) != 0 {
				t.Errorf("engine must not be called on invalid input")
			}
		})
	}
}

func TestAnswer_MethodNotAllowed(t *testing.T) {
	h := NewAnswerHandler(&mockAnswerer{}, zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/answer", nil)
	rec := httptest.NewRecorder()
	h.Answer(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestAnswer_EngineFailure(t *testing.T) {
	mock := &mockAnswerer{
		answerFunc: func(_ context.Context, _ string) (models.Answer, error) {
			return models.Answer{}, context.DeadlineExceeded
		},
	}
	h := NewAnswerHandler(mock, zaptest.NewLogger(t))

	rec := postAnswer(t, h, `{"question": "질문"}`)

	// Deadline errors mean the client is gone; no body is written.
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}
