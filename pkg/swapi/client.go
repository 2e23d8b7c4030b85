package swapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
	"github.com/Adda-Baaj/swapi-client/pkg/httpclient"
)

// DefaultBaseURL is the public Star Wars API root.
const DefaultBaseURL = "https://swapi.info/api"

const defaultTimeout = 30 * time.Second

// Client fetches the fixed roster characters from the Star Wars API.
type Client struct {
	baseURL string
	http    httpclient.Client
}

// DefaultHTTPClient returns the resty-backed transport used when none is injected.
func DefaultHTTPClient() httpclient.Client {
	return httpclient.NewRestyClient(httpclient.Options{Timeout: defaultTimeout})
}

// NewClient builds a Client for baseURL. An empty baseURL selects DefaultBaseURL
// and a nil transport selects DefaultHTTPClient.
func NewClient(baseURL string, client httpclient.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = DefaultHTTPClient()
	}
	return &Client{baseURL: baseURL, http: client}
}

// LukeSkywalker fetches Luke Skywalker's record.
func (c *Client) LukeSkywalker(ctx context.Context) (domain.Character, error) {
	return c.Fetch(ctx, lukeSkywalker)
}

// DarthVader fetches Darth Vader's record.
func (c *Client) DarthVader(ctx context.Context) (domain.Character, error) {
	return c.Fetch(ctx, darthVader)
}

// Fetch retrieves the roster entry's record. Failures are *RequestError or *ParseError.
func (c *Client) Fetch(ctx context.Context, entry Entry) (domain.Character, error) {
	if entry.path == "" {
		return domain.Character{}, fmt.Errorf("character %q is not in the roster", entry.Name)
	}
	url := c.baseURL + "/" + entry.path

	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		return domain.Character{}, &RequestError{Character: entry.Name, URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return domain.Character{}, &RequestError{
			Character:  entry.Name,
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(responseSnippet(resp.Body())),
		}
	}

	character, field, err := decodeCharacter(resp.Body())
	if err != nil {
		return domain.Character{}, &ParseError{Character: entry.Name, URL: url, Field: field, Err: err}
	}
	return character, nil
}
