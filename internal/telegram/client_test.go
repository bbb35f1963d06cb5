package telegram_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/dtek-notifier/internal/dal/testutil"
	"github.com/Roma7-7-7/dtek-notifier/internal/telegram"
)

const testToken = "123:test"

type apiCall struct {
	method string
	params map[string]interface{}
}

// fakeAPI answers Bot API calls with a fixed response per method
func fakeAPI(t *testing.T, responses map[string]string) (*httptest.Server, *[]apiCall) {
	t.Helper()

	calls := &[]apiCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := strings.TrimPrefix(r.URL.Path, "/bot"+testToken+"/")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		params := map[string]interface{}{}
		if len(body) > 0 {
			require.NoError(t, json.Unmarshal(body, &params))
		}
		*calls = append(*calls, apiCall{method: method, params: params})

		resp, ok := responses[method]
		if !ok {
			resp = `{"ok":false,"error_code":404,"description":"Not Found: method not found"}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func newTestClient(t *testing.T, srv *httptest.Server) *telegram.Client {
	t.Helper()
	c, err := telegram.NewClient(testToken, srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func TestClient_SendMessage(t *testing.T) {
	srv, calls := fakeAPI(t, map[string]string{
		"sendMessage": `{"ok":true,"result":{"message_id":321,"date":1763650000,"chat":{"id":42,"type":"private"},"text":"hi"}}`,
	})
	c := newTestClient(t, srv)

	id, err := c.SendMessage(context.Background(), 42, "<b>hi</b>")
	require.NoError(t, err)
	assert.Equal(t, 321, id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "sendMessage", call.method)
	assert.Equal(t, "42", call.params["chat_id"])
	assert.Equal(t, "<b>hi</b>", call.params["text"])
	assert.Equal(t, "HTML", call.params["parse_mode"])
}

func TestClient_SendMessage_Error(t *testing.T) {
	srv, _ := fakeAPI(t, map[string]string{
		"sendMessage": `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
	})
	c := newTestClient(t, srv)

	_, err := c.SendMessage(context.Background(), 42, "hi")
	assert.ErrorContains(t, err, "send message to chatID=42")
	assert.NotErrorIs(t, err, telegram.ErrMessageNotModified)
	assert.NotErrorIs(t, err, telegram.ErrMessageToEditNotFound)
}

func TestClient_EditMessage(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:     "success",
			response: `{"ok":true,"result":{"message_id":321,"date":1763650000,"chat":{"id":42,"type":"private"},"text":"hi"}}`,
			wantErr:  assert.NoError,
		},
		{
			name:     "not_modified",
			response: `{"ok":false,"error_code":400,"description":"Bad Request: message is not modified: specified new message content and reply markup are exactly the same as a current content and reply markup of the message"}`,
			wantErr:  testutil.AssertErrorIsAndContains(telegram.ErrMessageNotModified, "edit message=321 in chatID=42"),
		},
		{
			name:     "not_found",
			response: `{"ok":false,"error_code":400,"description":"Bad Request: message to edit not found"}`,
			wantErr:  testutil.AssertErrorIsAndContains(telegram.ErrMessageToEditNotFound, "edit message=321 in chatID=42"),
		},
		{
			name:     "other",
			response: `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "bot was blocked", i...) &&
					assert.NotErrorIs(t, err, telegram.ErrMessageNotModified, i...) &&
					assert.NotErrorIs(t, err, telegram.ErrMessageToEditNotFound, i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := fakeAPI(t, map[string]string{"editMessageText": tt.response})
			c := newTestClient(t, srv)

			err := c.EditMessage(context.Background(), 42, 321, "<b>hi</b>")
			tt.wantErr(t, err)

			require.Len(t, *calls, 1)
			call := (*calls)[0]
			assert.Equal(t, "editMessageText", call.method)
			assert.Equal(t, "42", call.params["chat_id"])
			assert.Equal(t, "321", call.params["message_id"])
			assert.Equal(t, "HTML", call.params["parse_mode"])
		})
	}
}
