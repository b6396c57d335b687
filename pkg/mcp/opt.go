package mcp

import (
	// Packages
	numbeo "github.com/DiTo97/numbeo-mcp"
	"github.com/DiTo97/numbeo-mcp/pkg/tool"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithToolKit(v *tool.Toolkit) Opt {
	return func(server *Server) error {
		server.toolkit = v
		return nil
	}
}

func WithResource(v *Resource) Opt {
	return func(server *Server) error {
		if v == nil || v.URI == "" {
			return numbeo.ErrBadParameter.With("resource requires a URI")
		}
		if _, exists := server.resources[v.URI]; exists {
			return numbeo.ErrConflict.Withf("duplicate resource URI: %q", v.URI)
		}
		server.resources[v.URI] = v
		return nil
	}
}
