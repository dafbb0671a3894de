package http

import (
	"net/http"
	"time"
)

// Client is a thin HTTP client with a request timeout. The screening
// service uses it to fetch the fake-company list from a remote source.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Get(url string) (*http.Response, error) {
	return c.httpClient.Get(url)
}
