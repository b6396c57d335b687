package main

import (
	"fmt"
	"os"

	// Packages
	mcp "github.com/DiTo97/numbeo-mcp/pkg/mcp"
	numbeoapi "github.com/DiTo97/numbeo-mcp/pkg/numbeoapi"
	version "github.com/DiTo97/numbeo-mcp/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCmd) Run(globals *Globals) error {
	server, err := mcp.New(execName(), version.Version(),
		mcp.WithToolKit(globals.toolkit),
		mcp.WithResource(mcp.NewTextResource(
			numbeoapi.VocabularyURI,
			"numbeo-terms",
			"Explanation of the terms used in Numbeo statistics",
			numbeoapi.Vocabulary,
		)),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Running MCP server...")
	defer fmt.Fprintln(os.Stderr, "MCP server stopped", globals.ctx.Err())
	return server.RunStdio(globals.ctx, os.Stdin, os.Stdout)
}
