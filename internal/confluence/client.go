// Package confluence is a minimal client for the Confluence Server REST API:
// create, read, and delete pages with basic authentication.
package confluence

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// DefaultExpand is requested when reading page content.
var DefaultExpand = []string{"history", "space", "version", "body.storage"}

// Options configures a Client.
type Options struct {
	BaseURL  string `validate:"required,url"`
	User     string `validate:"required"`
	Password string
	Timeout  time.Duration
	Logger   *zap.SugaredLogger
}

// Client talks to one Confluence host.
type Client struct {
	rest *resty.Client
	host string
	log  *zap.SugaredLogger
}

// NewClient validates opts and builds a Client. Requests go to
// <BaseURL>/rest/api.
func NewClient(opts Options) (*Client, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid confluence client options: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	host := strings.TrimRight(opts.BaseURL, "/")
	rest := resty.New().
		SetLogger(log).
		SetBaseURL(host+"/rest/api").
		SetBasicAuth(opts.User, opts.Password).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		rest.SetTimeout(opts.Timeout)
	}

	return &Client{rest: rest, host: host, log: log}, nil
}

// Host returns the Confluence host the client was built for.
func (c *Client) Host() string {
	return c.host
}

// Authenticate probes the host with basic auth. Only a 200 counts as
// authenticated; transport failures are returned as errors.
func (c *Client) Authenticate(ctx context.Context) (bool, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(c.host)
	if err != nil {
		return false, &Error{Method: http.MethodGet, Path: c.host, Err: err}
	}
	c.log.Debugw("authentication probe", "host", c.host, "status", resp.StatusCode())
	return resp.StatusCode() == http.StatusOK, nil
}

type storage struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type ancestor struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type newContent struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Body struct {
		Storage storage `json:"storage"`
	} `json:"body"`
	Ancestors []ancestor `json:"ancestors,omitempty"`
}

// CreatePage creates a page in space under parentID. An empty parentID
// creates a top-level page.
func (c *Client) CreatePage(ctx context.Context, title, space, html, parentID string) (*Page, error) {
	var body newContent
	body.Type = "page"
	body.Title = title
	body.Space.Key = space
	body.Body.Storage = storage{Value: html, Representation: "storage"}
	if parentID != "" {
		body.Ancestors = []ancestor{{Type: "page", ID: parentID}}
	}

	resp, err := c.do(ctx, http.MethodPost, "content", func(r *resty.Request) {
		r.SetHeader("X-Atlassian-Token", "nocheck").
			SetHeader("Content-Type", "application/json").
			SetBody(body)
	})
	if err != nil {
		return nil, err
	}
	return ParsePage(resp.Body())
}

// DeleteContent deletes the content with the given id.
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "content/"+id, func(r *resty.Request) {
		r.SetHeader("X-Atlassian-Token", "nocheck").
			SetQueryParam("status", "current")
	})
	return err
}

// GetContent reads a page by id, including its storage body.
func (c *Client) GetContent(ctx context.Context, id string) (*Page, error) {
	resp, err := c.do(ctx, http.MethodGet, "content/"+id, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"status": "current",
			"expand": strings.Join(DefaultExpand, ","),
		})
	})
	if err != nil {
		return nil, err
	}
	return ParsePage(resp.Body())
}

// GetPageByTitle searches space for a page titled title.
func (c *Client) GetPageByTitle(ctx context.Context, title, space string) (*Page, error) {
	resp, err := c.do(ctx, http.MethodGet, "content", func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"title":    title,
			"spaceKey": space,
			"expand":   strings.Join(DefaultExpand, ","),
		})
	})
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(resp.Body())
	if errors.Is(err, ErrEmptyResults) {
		return nil, &Error{
			Method:  http.MethodGet,
			Path:    "content",
			Message: fmt.Sprintf("page with title %q in space %q could not be found", title, space),
			Err:     ErrNotFound,
		}
	}
	return page, err
}

func (c *Client) do(ctx context.Context, method, path string, build func(*resty.Request)) (*resty.Response, error) {
	req := c.rest.R().SetContext(ctx)
	if build != nil {
		build(req)
	}

	c.log.Debugw("confluence request", "method", method, "path", path)
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Err: err}
	}
	if err := statusError(method, path, resp.StatusCode(), resp.Body()); err != nil {
		c.log.Debugw("confluence request failed", "method", method, "path", path, "status", resp.StatusCode())
		return nil, err
	}
	return resp, nil
}
