package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/helpdesk-community/helpdesk-api/feed"
	"github.com/helpdesk-community/helpdesk-api/matching"
	"github.com/helpdesk-community/helpdesk-api/metrics"
	"github.com/helpdesk-community/helpdesk-api/mocks"
)

const testInviteCode = "ABC234"

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier accepts the tokens it knows
type stubVerifier map[string]*Identity

func (v stubVerifier) VerifyToken(_ context.Context, token string) (*Identity, error) {
	if id, ok := v[token]; ok {
		return id, nil
	}
	return nil, fmt.Errorf("invalid token")
}

var testVerifier = stubVerifier{
	"tok-alice": {UID: "alice", Email: "alice@example.com", Name: "Alice", EmailVerified: true},
	"tok-bob":   {UID: "bob", Email: "bob@example.com", Name: "Bob"},
}

type testServer struct {
	*Server
	core   *mocks.MockHelpDeskCore
	mongo  *mocks.MockMongoStore
	sender *mocks.MockTaskSender
	router *gin.Engine
}

func newTestServer(t *testing.T) (*testServer, *gomock.Controller) {
	ctl := gomock.NewController(t)

	core := mocks.NewMockHelpDeskCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	sender := mocks.NewMockTaskSender(ctl)

	s := &Server{
		store:      core,
		mongoStore: m,
		verifier:   testVerifier,
		background: sender,
		matcher:    matching.NewEngine(m),
		composer:   feed.NewComposer(m),
		metrics:    metrics.NewRecorder("test"),
		inviteCode: func() (string, error) { return testInviteCode, nil },
	}

	return &testServer{
		Server: s,
		core:   core,
		mongo:  m,
		sender: sender,
		router: s.setupRouter(),
	}, ctl
}

// do sends a request through the full router. token may be empty.
func (ts *testServer) do(method, path, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code      int64  `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	var e errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body: %s", err)
	}
	return e
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	var body struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %s", err)
	}
	if err := json.Unmarshal(body.Result, v); err != nil {
		t.Fatalf("decode result: %s", err)
	}
}
