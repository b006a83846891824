package notion_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/takak2166/notion-clipper/internal/notion"
)

const schemaJSON = `{
	"object": "database",
	"id": "test_db_id",
	"properties": {
		"Name": {"id": "title", "type": "title", "title": {}},
		"Date": {"id": "d1", "type": "date", "date": {}},
		"Description": {"id": "r1", "type": "rich_text", "rich_text": {}}
	}
}`

const pageJSON = `{"object": "page", "id": "page_1", "properties": {}}`

type stubResponse struct {
	status      int
	contentType string
	header      http.Header
	body        string
}

// stubTransport answers GET and POST with canned responses and records the
// requests it saw
type stubTransport struct {
	mu       sync.Mutex
	get      stubResponse
	post     stubResponse
	requests []*http.Request
	bodies   []string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.bodies = append(s.bodies, string(body))
	s.mu.Unlock()

	resp := s.get
	if req.Method == http.MethodPost {
		resp = s.post
	}

	header := http.Header{}
	for k, v := range resp.header {
		header[k] = v
	}
	if resp.contentType != "" {
		header.Set("Content-Type", resp.contentType)
	}

	return &http.Response{
		StatusCode: resp.status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}

func (s *stubTransport) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func rateLimited() stubResponse {
	return stubResponse{
		status:      http.StatusTooManyRequests,
		contentType: "application/json",
		header:      http.Header{"Retry-After": []string{"0"}},
		body:        `{"object":"error","status":429,"code":"rate_limited","message":"Rate limited"}`,
	}
}

func TestAddToNotionOverHTTP(t *testing.T) {
	ctx := context.Background()
	stub := &stubTransport{
		get:  stubResponse{status: http.StatusOK, contentType: "application/json", body: schemaJSON},
		post: stubResponse{status: http.StatusOK, contentType: "application/json", body: pageJSON},
	}
	creator := notion.New(configuredStore(t), notion.WithTransport(stub))

	page, err := creator.AddToNotion(ctx, models.PageRequest{
		Name:        "Buy milk",
		Date:        "2024-01-01",
		Description: "urgent",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if page.ID != "page_1" {
		t.Errorf("Expected page_1, got %s", page.ID)
	}

	if stub.calls() != 2 {
		t.Fatalf("Expected 2 HTTP calls, got %d", stub.calls())
	}

	get, post := stub.requests[0], stub.requests[1]
	if get.Method != http.MethodGet || get.URL.String() != "https://api.notion.com/v1/databases/"+testDatabaseID {
		t.Errorf("Unexpected schema request: %s %s", get.Method, get.URL)
	}
	if post.Method != http.MethodPost || get.URL.Host != post.URL.Host || post.URL.Path != "/v1/pages" {
		t.Errorf("Unexpected create request: %s %s", post.Method, post.URL)
	}
	for _, req := range stub.requests {
		if got := req.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("Expected bearer token, got %q", got)
		}
		if req.Header.Get("Notion-Version") == "" {
			t.Error("Expected Notion-Version header")
		}
	}

	var sent struct {
		Parent struct {
			DatabaseID string `json:"database_id"`
		} `json:"parent"`
		Properties struct {
			Date struct {
				Date struct {
					Start string `json:"start"`
				} `json:"date"`
			} `json:"Date"`
		} `json:"properties"`
	}
	if err := json.Unmarshal([]byte(stub.bodies[1]), &sent); err != nil {
		t.Fatalf("Failed to decode create body: %v", err)
	}
	if sent.Parent.DatabaseID != testDatabaseID {
		t.Errorf("Expected parent %s, got %s", testDatabaseID, sent.Parent.DatabaseID)
	}
	if sent.Properties.Date.Date.Start != "2024-01-01" {
		t.Errorf("Expected date.start 2024-01-01, got %q", sent.Properties.Date.Date.Start)
	}
}

func TestAddToNotionOverHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		get        stubResponse
		post       stubResponse
		wantCalls  int
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "Rate limited schema check is not retried",
			get:        rateLimited(),
			wantCalls:  1,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Failed to access database: 429 Too Many Requests",
		},
		{
			name:       "Rate limited create is not retried",
			get:        stubResponse{status: http.StatusOK, contentType: "application/json", body: schemaJSON},
			post:       rateLimited(),
			wantCalls:  2,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Failed to create page: Too Many Requests",
		},
		{
			name:       "Notion error object",
			get:        stubResponse{status: http.StatusNotFound, contentType: "application/json", body: `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database"}`},
			wantCalls:  1,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Failed to access database: 404 Not Found",
		},
		{
			name:       "HTML error page from a proxy",
			get:        stubResponse{status: http.StatusBadGateway, contentType: "text/html", body: "<html><body>502 Bad Gateway</body></html>"},
			wantCalls:  1,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Failed to access database: 502 Bad Gateway",
		},
		{
			name:       "Empty error body on create",
			get:        stubResponse{status: http.StatusOK, contentType: "application/json", body: schemaJSON},
			post:       stubResponse{status: http.StatusServiceUnavailable},
			wantCalls:  2,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Failed to create page: Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTransport{get: tt.get, post: tt.post}
			creator := notion.New(configuredStore(t), notion.WithTransport(stub))

			_, err := creator.AddToNotion(context.Background(), models.PageRequest{Name: "Buy milk"})

			if stub.calls() != tt.wantCalls {
				t.Errorf("Expected %d HTTP calls, got %d", tt.wantCalls, stub.calls())
			}

			var remoteErr *notion.RemoteError
			if !errors.As(err, &remoteErr) {
				t.Fatalf("Expected RemoteError, got %v", err)
			}
			if remoteErr.Status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, remoteErr.Status)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
