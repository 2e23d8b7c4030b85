package httpclient

import "context"

// Response is the part of an HTTP response the API client inspects.
type Response interface {
	Body() []byte
	StatusCode() int
	IsSuccess() bool
}

// Client abstracts HTTP GETs so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
