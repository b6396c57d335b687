package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"

	numbeoapi "github.com/DiTo97/numbeo-mcp/pkg/numbeoapi"
	tool "github.com/DiTo97/numbeo-mcp/pkg/tool"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Credentials
	NumbeoKey string `env:"NUMBEO_API_KEY" help:"Numbeo API Key"`

	// Context
	ctx     context.Context
	toolkit *tool.Toolkit
}

type CLI struct {
	Globals

	// Commands
	Serve   ServeCmd     `cmd:"" default:"1" help:"Run the MCP server on stdin and stdout"`
	Tools   ListToolsCmd `cmd:"" help:"Return a list of tools"`
	Tool    ToolInfoCmd  `cmd:"" help:"Show detailed information about a tool"`
	Run     RunToolCmd   `cmd:"" help:"Run a tool with JSON input"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load environment from a .env file, if present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Numbeo statistics MCP server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Make a toolkit with the statistics tools. The API key may be empty,
	// in which case each tool call requires a per-request credential.
	toolkit, err := tool.NewToolkit(numbeoapi.NewTools(cli.NumbeoKey, clientopts...)...)
	cmd.FatalIfErrorf(err)
	cli.Globals.toolkit = toolkit

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
