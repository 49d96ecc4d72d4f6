package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/johndosdos/chirp/internal/mocks"
	"github.com/johndosdos/chirp/internal/model"
	"github.com/johndosdos/chirp/internal/service"
	"github.com/johndosdos/chirp/internal/storage"
	"github.com/johndosdos/chirp/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(service.New(memory.New(), nil), nil))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(raw)
}

func TestHandler_Flow(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"account_id":1,"username":"bob","password":"1234"}`, body)

	code, body = do(t, srv, http.MethodPost, "/messages", `{"posted_by":1,"message_text":"hi","time_posted_epoch":1000}`)
	require.Equal(t, http.StatusOK, code)
	created := `{"message_id":1,"posted_by":1,"message_text":"hi","time_posted_epoch":1000}`
	assert.JSONEq(t, created, body)

	code, body = do(t, srv, http.MethodGet, "/messages/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, created, body)

	code, body = do(t, srv, http.MethodGet, "/messages", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "["+created+"]", body)

	code, body = do(t, srv, http.MethodGet, "/accounts/1/messages", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, "["+created+"]", body)

	code, body = do(t, srv, http.MethodDelete, "/messages/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, created, body)

	code, body = do(t, srv, http.MethodGet, "/messages/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body)

	code, body = do(t, srv, http.MethodDelete, "/messages/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body)
}

func TestHandler_Register(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	require.Equal(t, http.StatusOK, code)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"duplicate username", `{"username":"bob","password":"5678"}`, http.StatusBadRequest},
		{"blank username", `{"username":"","password":"5678"}`, http.StatusBadRequest},
		{"short password", `{"username":"alice","password":"123"}`, http.StatusBadRequest},
		{"missing password", `{"username":"alice"}`, http.StatusBadRequest},
		{"malformed body", `{"username":`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, srv, http.MethodPost, "/register", tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, body)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	require.Equal(t, http.StatusOK, code)

	code, body := do(t, srv, http.MethodPost, "/login", `{"username":"bob","password":"1234"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"account_id":1,"username":"bob","password":"1234"}`, body)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"wrong password", `{"username":"bob","password":"4321"}`, http.StatusUnauthorized},
		{"unknown username", `{"username":"alice","password":"1234"}`, http.StatusUnauthorized},
		{"blank username", `{"username":"","password":"1234"}`, http.StatusUnauthorized},
		{"malformed body", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := do(t, srv, http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestHandler_CreateMessage(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	require.Equal(t, http.StatusOK, code)

	maxText := strings.Repeat("a", service.MaxMessageLength)
	tests := []struct {
		name     string
		msg      model.Message
		wantCode int
	}{
		{"max length", model.Message{PostedBy: 1, Text: maxText, PostedAt: 1}, http.StatusOK},
		{"too long", model.Message{PostedBy: 1, Text: maxText + "a", PostedAt: 1}, http.StatusBadRequest},
		{"blank", model.Message{PostedBy: 1, Text: " ", PostedAt: 1}, http.StatusBadRequest},
		{"unknown poster", model.Message{PostedBy: 42, Text: "hi", PostedAt: 1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.msg)
			require.NoError(t, err)

			code, _ := do(t, srv, http.MethodPost, "/messages", string(raw))
			assert.Equal(t, tt.wantCode, code)
		})
	}

	_, body := do(t, srv, http.MethodGet, "/messages", "")
	var all []model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Len(t, all, 1)
}

func TestHandler_UpdateMessage(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	code, _ := do(t, srv, http.MethodPost, "/messages", `{"posted_by":1,"message_text":"hi","time_posted_epoch":1000}`)
	require.Equal(t, http.StatusOK, code)

	code, body := do(t, srv, http.MethodPatch, "/messages/1", `{"message_text":"edited","posted_by":9,"time_posted_epoch":5}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message_id":1,"posted_by":1,"message_text":"edited","time_posted_epoch":1000}`, body)

	code, _ = do(t, srv, http.MethodPatch, "/messages/1", `{"message_text":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, srv, http.MethodPatch, "/messages/2", `{"message_text":"edited"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, srv, http.MethodPatch, "/messages/abc", `{"message_text":"edited"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandler_AccountMessagesEmpty(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/accounts/7/messages", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)

	code, body = do(t, srv, http.MethodGet, "/messages", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)
}

func TestHandler_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	srv := httptest.NewServer(NewRouter(service.New(store, nil), nil))
	defer srv.Close()

	boom := storage.Wrap("Messages", errors.New("connection refused"))
	store.EXPECT().Messages(gomock.Any()).Return(nil, boom)
	store.EXPECT().Message(gomock.Any(), int32(1)).Return(model.Message{}, false, boom)
	store.EXPECT().Ping(gomock.Any()).Return(boom)

	code, body := do(t, srv, http.MethodGet, "/messages", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Empty(t, body)

	code, body = do(t, srv, http.MethodGet, "/messages/1", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Empty(t, body)

	code, _ = do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestHandler_Panic(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	srv := httptest.NewServer(NewRouter(service.New(store, nil), nil))
	defer srv.Close()

	store.EXPECT().Messages(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Message, error) {
		panic("unexpected")
	})

	code, _ := do(t, srv, http.MethodGet, "/messages", "")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestHandler_BadInput(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, srv, http.MethodPost, "/register", `{"username":"bob","password":"1234"}`)
	require.Equal(t, http.StatusOK, code)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"id out of int32 range", http.MethodGet, "/messages/99999999999", ""},
		{"non integer id", http.MethodGet, "/messages/abc", ""},
		{"non integer account id", http.MethodGet, "/accounts/abc/messages", ""},
		{"delete non integer id", http.MethodDelete, "/messages/1.5", ""},
		{"unknown register field", http.MethodPost, "/register", `{"username":"alice","password":"1234","email":"a@b.c"}`},
		{"unknown login field", http.MethodPost, "/login", `{"username":"bob","password":"1234","remember":true}`},
		{"unknown message field", http.MethodPost, "/messages", `{"posted_by":1,"message_text":"hi","time_posted_epoch":1,"title":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Empty(t, body)
		})
	}

	// Rejected bodies must not have created anything.
	_, body := do(t, srv, http.MethodGet, "/messages", "")
	assert.JSONEq(t, `[]`, body)
	code, _ = do(t, srv, http.MethodPost, "/login", `{"username":"alice","password":"1234"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}
