package notion

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jomei/notionapi"
)

type notionClientAdapter struct {
	client *notionapi.Client
}

func newNotionClientAdapter(client *notionapi.Client) NotionClient {
	return &notionClientAdapter{client: client}
}

func (a *notionClientAdapter) Page() PageService {
	return a.client.Page
}

func (a *notionClientAdapter) Database() DatabaseService {
	return a.client.Database
}

// httpClientFactory builds API clients on top of transport; nil means
// http.DefaultTransport
func httpClientFactory(transport http.RoundTripper) ClientFactory {
	return func(token string) NotionClient {
		return newAPIClient(token, transport)
	}
}

// newAPIClient talks to https://api.notion.com/v1 with the library's pinned
// Notion-Version. notionapi counts the first 429 as attempt 1, so a limit of 1
// returns RateLimitedError without retrying.
func newAPIClient(token string, transport http.RoundTripper) NotionClient {
	if transport == nil {
		transport = http.DefaultTransport
	}
	httpClient := &http.Client{Transport: &errorBodyTransport{base: transport}}

	return newNotionClientAdapter(notionapi.NewClient(
		notionapi.Token(token),
		notionapi.WithHTTPClient(httpClient),
		notionapi.WithRetry(1),
	))
}

// errorBodyTransport rewrites error bodies that are not a Notion error object
// (proxy HTML pages and the like) so the status survives decoding
type errorBodyTransport struct {
	base http.RoundTripper
}

func (t *errorBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.base.RoundTrip(req)
	if err != nil || res.StatusCode < 300 || res.StatusCode == http.StatusTooManyRequests {
		return res, err
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, err
	}

	var apiErr notionapi.Error
	if json.Unmarshal(body, &apiErr) != nil || apiErr.Status == 0 {
		body, err = json.Marshal(notionapi.Error{
			Object:  notionapi.ObjectTypeError,
			Status:  res.StatusCode,
			Message: http.StatusText(res.StatusCode),
		})
		if err != nil {
			return nil, err
		}
		if res.Header == nil {
			res.Header = http.Header{}
		}
		res.Header.Set("Content-Type", "application/json")
	}

	res.Body = io.NopCloser(bytes.NewReader(body))
	res.ContentLength = int64(len(body))
	return res, nil
}
