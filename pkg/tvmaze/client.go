// Package tvmaze is a client for the public TVmaze REST API (https://www.tvmaze.com/api).
package tvmaze

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_tvmaze_client.go github.com/kasuboski/showtrack/pkg/tvmaze ClientInterface

const DefaultServer = "https://api.tvmaze.com"

// EmbedEpisodes asks the show endpoint to inline the full episode list
const EmbedEpisodes = "episodes"

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// ClientInterface is the read-only surface of the provider used by the catalog.
type ClientInterface interface {
	// SearchShows runs a fuzzy show search (GET /search/shows)
	SearchShows(ctx context.Context, params *SearchShowsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
	// ShowDetails fetches a single show (GET /shows/{id})
	ShowDetails(ctx context.Context, id int, params *ShowDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error)
}

type SearchShowsParams struct {
	Q string `form:"q" json:"q"`
}

type ShowDetailsParams struct {
	Embed *string `form:"embed,omitempty" json:"embed,omitempty"`
}

// Client talks to a TVmaze compatible server
type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.tvmaze.com for example. This can contain a path relative
	// to the server, such as https://api.tvmaze.com/v1
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn
}

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}

	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}

	if client.Client == nil {
		client.Client = &http.Client{}
	}
	return &client, nil
}

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request. This can be used to mutate the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// SetUserAgent identifies this application to TVmaze and asks for JSON
func SetUserAgent(agent string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Set("User-Agent", agent)
		req.Header.Set("Accept", "application/json")
		return nil
	}
}

func (c *Client) SearchShows(ctx context.Context, params *SearchShowsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSearchShowsRequest(c.Server, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, reqEditors)
}

func (c *Client) ShowDetails(ctx context.Context, id int, params *ShowDetailsParams, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewShowDetailsRequest(c.Server, id, params)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, reqEditors)
}

func (c *Client) do(ctx context.Context, req *http.Request, reqEditors []RequestEditorFn) (*http.Response, error) {
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

// NewSearchShowsRequest generates requests for SearchShows
func NewSearchShowsRequest(server string, params *SearchShowsParams) (*http.Request, error) {
	if params == nil {
		return nil, fmt.Errorf("search params are required")
	}

	queryURL, err := resolve(server, "search/shows")
	if err != nil {
		return nil, err
	}

	queryValues := queryURL.Query()
	if err := addQueryParam(queryValues, "q", params.Q); err != nil {
		return nil, err
	}
	queryURL.RawQuery = queryValues.Encode()

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

// NewShowDetailsRequest generates requests for ShowDetails
func NewShowDetailsRequest(server string, id int, params *ShowDetailsParams) (*http.Request, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return nil, err
	}

	queryURL, err := resolve(server, fmt.Sprintf("shows/%s", pathParam))
	if err != nil {
		return nil, err
	}

	if params != nil && params.Embed != nil {
		queryValues := queryURL.Query()
		if err := addQueryParam(queryValues, "embed", *params.Embed); err != nil {
			return nil, err
		}
		queryURL.RawQuery = queryValues.Encode()
	}

	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

func resolve(server, operationPath string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	return serverURL.Parse(operationPath)
}

func addQueryParam(values url.Values, name string, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return err
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return err
	}

	for k, v := range parsed {
		for _, v2 := range v {
			values.Add(k, v2)
		}
	}
	return nil
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
