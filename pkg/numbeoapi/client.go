/*
numbeoapi implements an API client for the Numbeo cost of living database
https://www.numbeo.com/api/doc.jsp
*/
package numbeoapi

import (
	"context"
	"net/url"
	"time"

	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

// request is any endpoint request which can be converted into query
// parameters carrying the credential
type request interface {
	Values(key string) (url.Values, error)
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint       = "https://www.numbeo.com/api"
	defaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(ApiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if ApiKey == "" {
		return nil, numbeo.ErrMissingCredential.With("missing API key")
	}

	// Create client with the default timeout, which can be overridden
	// by the caller's options
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint), client.OptTimeout(defaultTimeout)}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    ApiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do issues a single GET against the endpoint path with the request
// converted to query parameters, and decodes the JSON response into out.
// Request validation failures surface before any network call
func (c *Client) do(ctx context.Context, path string, req request, out any) error {
	query, err := req.Values(c.key)
	if err != nil {
		return err
	}
	return c.DoWithContext(ctx, nil, out, client.OptPath(path), client.OptQuery(query))
}
