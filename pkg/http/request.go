package http

import "fmt"

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request accumulates the pieces of a single call through the fluent
// With* setters and fires it with Execute.
type Request struct {
	client      *Client
	method      RequestMethod
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
	backoff     *BackoffConfig
}

func newRequest(client *Client) *Request {
	return &Request{
		client: client,
		method: GET,
		path:   "/",
	}
}

// WithMethod sets the HTTP method for the request.
func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithHeaders sets the headers for the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

// WithBody sets the body for the request.
func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp sets the value the 2xx response body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the value a non-2xx response body is decoded into.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// WithBackoff overrides the client's default backoff configuration for this request.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request and returns the decoded success response, the
// decoded error response, the status code, and the transport error if any.
func (r *Request) Execute() (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.method == "" {
		return nil, nil, 0, fmt.Errorf("method is required")
	}
	if r.path == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	return r.client.doRequestWithBackoff(
		string(r.method),
		r.path,
		r.queryParams,
		r.headers,
		r.body,
		r.successResp,
		r.errorResp,
		r.backoff,
	)
}
