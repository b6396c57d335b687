package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	assert "github.com/stretchr/testify/assert"

	numbeo "github.com/DiTo97/numbeo-mcp"
	tool "github.com/DiTo97/numbeo-mcp/pkg/tool"
)

type echoTool struct {
	lastCtx context.Context
}

func (e *echoTool) Name() string                        { return "echo" }
func (e *echoTool) Description() string                 { return "Echo the input back" }
func (e *echoTool) Schema() (*jsonschema.Schema, error) { return nil, nil }
func (e *echoTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	e.lastCtx = ctx
	return map[string]any{"input": string(input)}, nil
}

func Test_server_001(t *testing.T) {
	assert := assert.New(t)

	server, err := New("numbeo-mcp", "1.0.0")
	assert.NoError(err)

	// Initialize returns server info and protocol version
	data, err := server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	assert.NoError(err)

	var response Response
	assert.NoError(json.Unmarshal(data, &response))
	assert.Nil(response.Err)
	assert.Equal(RPCVersion, response.Version)

	result, err := json.Marshal(response.Result)
	assert.NoError(err)

	var initialize ResponseInitialize
	assert.NoError(json.Unmarshal(result, &initialize))
	assert.Equal(ProtocolVersion, initialize.Version)
	assert.Equal("numbeo-mcp", initialize.ServerInfo.Name)
}

func Test_server_002(t *testing.T) {
	assert := assert.New(t)

	server, err := New("numbeo-mcp", "1.0.0")
	assert.NoError(err)

	// Notifications produce no response
	data, err := server.processRequest(context.Background(), `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.NoError(err)
	assert.Nil(data)

	// Unknown methods produce a method not found error
	data, err = server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":2,"method":"bogus"}`)
	assert.NoError(err)

	var response Response
	assert.NoError(json.Unmarshal(data, &response))
	assert.NotNil(response.Err)
	assert.Equal(ErrorCodeMethodNotFound, response.Err.Code)
}

func Test_server_003(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echoTool{})
	assert.NoError(err)

	server, err := New("numbeo-mcp", "1.0.0", WithToolKit(toolkit))
	assert.NoError(err)

	// List tools
	data, err := server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":3,"method":"tools/list"}`)
	assert.NoError(err)

	var response Response
	assert.NoError(json.Unmarshal(data, &response))
	assert.Nil(response.Err)

	result, err := json.Marshal(response.Result)
	assert.NoError(err)

	var tools ResponseListTools
	assert.NoError(json.Unmarshal(result, &tools))
	assert.Len(tools.Tools, 1)
	assert.Equal("echo", tools.Tools[0].Name)
}

func Test_server_004(t *testing.T) {
	assert := assert.New(t)

	echo := new(echoTool)
	toolkit, err := tool.NewToolkit(echo)
	assert.NoError(err)

	server, err := New("numbeo-mcp", "1.0.0", WithToolKit(toolkit))
	assert.NoError(err)

	// Call a tool with a credential in the request metadata
	data, err := server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"echo","arguments":{"city":"London"},"_meta":{"api_key":"secret"}}}`)
	assert.NoError(err)

	var response Response
	assert.NoError(json.Unmarshal(data, &response))
	assert.Nil(response.Err)
	assert.NotNil(echo.lastCtx)
	assert.Equal("secret", numbeo.Credential(echo.lastCtx))
}

func Test_server_005(t *testing.T) {
	assert := assert.New(t)

	resource := NewTextResource("vocabulary://numbeo-terms", "numbeo-terms", "Glossary", "cpi_factor: a factor")
	server, err := New("numbeo-mcp", "1.0.0", WithResource(resource))
	assert.NoError(err)

	// List resources
	data, err := server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":5,"method":"resources/list"}`)
	assert.NoError(err)

	var response Response
	assert.NoError(json.Unmarshal(data, &response))
	assert.Nil(response.Err)

	result, err := json.Marshal(response.Result)
	assert.NoError(err)

	var resources ResponseListResources
	assert.NoError(json.Unmarshal(result, &resources))
	assert.Len(resources.Resources, 1)
	assert.Equal("vocabulary://numbeo-terms", resources.Resources[0].URI)

	// Read the resource
	data, err = server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":6,"method":"resources/read","params":{"uri":"vocabulary://numbeo-terms"}}`)
	assert.NoError(err)
	assert.NoError(json.Unmarshal(data, &response))
	assert.Nil(response.Err)

	result, err = json.Marshal(response.Result)
	assert.NoError(err)

	var contents ResponseReadResource
	assert.NoError(json.Unmarshal(result, &contents))
	assert.Len(contents.Contents, 1)
	assert.Equal("cpi_factor: a factor", contents.Contents[0].Text)

	// Reading an unknown URI is an error
	data, err = server.processRequest(context.Background(), `{"jsonrpc":"2.0","id":7,"method":"resources/read","params":{"uri":"vocabulary://missing"}}`)
	assert.NoError(err)
	assert.NoError(json.Unmarshal(data, &response))
	assert.NotNil(response.Err)
	assert.Equal(ErrorCodeInvalidParameters, response.Err.Code)
}

func Test_server_006(t *testing.T) {
	assert := assert.New(t)

	// Bearer token in the authorization metadata field
	assert.Equal("secret", credentialFromMeta(json.RawMessage(`{"authorization":"Bearer secret"}`)))
	assert.Equal("secret", credentialFromMeta(json.RawMessage(`{"api_key":"secret"}`)))
	assert.Equal("", credentialFromMeta(json.RawMessage(`{"authorization":"Basic abc"}`)))
	assert.Equal("", credentialFromMeta(nil))
}

func Test_server_007(t *testing.T) {
	assert := assert.New(t)

	server, err := New("numbeo-mcp", "1.0.0")
	assert.NoError(err)

	// Responses for all in-flight requests are written before shutdown
	var in strings.Builder
	for id := 1; id <= 20; id++ {
		fmt.Fprintf(&in, `{"jsonrpc":"2.0","id":%d,"method":"ping"}`+"\n", id)
	}
	in.WriteString(`{"jsonrpc":"2.0","id":21,"method":"bogus"}` + "\n")

	var out bytes.Buffer
	assert.NoError(server.RunStdio(context.Background(), strings.NewReader(in.String()), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, 21)

	// Error responses carry their JSON-RPC error code on the wire
	var methodNotFound bool
	for _, line := range lines {
		var response Response
		assert.NoError(json.Unmarshal([]byte(line), &response))
		if response.Err != nil {
			assert.Equal(ErrorCodeMethodNotFound, response.Err.Code)
			methodNotFound = true
		}
	}
	assert.True(methodNotFound)
}
