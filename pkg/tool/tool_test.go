package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	jsonschema "github.com/google/jsonschema-go/jsonschema"

	numbeo "github.com/DiTo97/numbeo-mcp"
	tool "github.com/DiTo97/numbeo-mcp/pkg/tool"
)

type stubTool struct {
	name   string
	schema *jsonschema.Schema
	run    func(ctx context.Context, input json.RawMessage) (any, error)
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) { return s.schema, nil }
func (s *stubTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if s.run != nil {
		return s.run(ctx, input)
	}
	return nil, nil
}

func TestRegister_NormalToolOK(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	if err := tk.Register(&stubTool{name: "my_tool"}); err != nil {
		t.Fatal("normal tool should register:", err)
	}
}

func TestRegister_InvalidName(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	err = tk.Register(&stubTool{name: "not a name"})
	if err == nil {
		t.Fatal("expected error when registering a tool with an invalid name")
	}
	t.Log("got expected error:", err)
}

func TestRegister_DuplicateName(t *testing.T) {
	_, err := tool.NewToolkit(
		&stubTool{name: "my_tool"},
		&stubTool{name: "my_tool"},
	)
	if err == nil {
		t.Fatal("expected error when registering two tools with the same name")
	}
	if !errors.Is(err, numbeo.ErrConflict) {
		t.Fatal("expected conflict error, got:", err)
	}
}

func TestRun_NotFound(t *testing.T) {
	tk, err := tool.NewToolkit()
	if err != nil {
		t.Fatal(err)
	}
	_, err = tk.Run(context.Background(), "missing", nil)
	if !errors.Is(err, numbeo.ErrNotFound) {
		t.Fatal("expected not found error, got:", err)
	}
}

func TestRun_PassesRawInput(t *testing.T) {
	var got json.RawMessage
	tk, err := tool.NewToolkit(&stubTool{
		name: "my_tool",
		run: func(_ context.Context, input json.RawMessage) (any, error) {
			got = input
			return "ok", nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := tk.Run(context.Background(), "my_tool", json.RawMessage(`{"city":"London"}`))
	if err != nil {
		t.Fatal(err)
	}
	if out != "ok" {
		t.Fatal("unexpected output:", out)
	}
	if string(got) != `{"city":"London"}` {
		t.Fatal("unexpected input:", string(got))
	}
}

func TestRun_ValidatesAgainstSchema(t *testing.T) {
	type input struct {
		City string `json:"city"`
	}
	schema, err := jsonschema.For[input](nil)
	if err != nil {
		t.Fatal(err)
	}
	tk, err := tool.NewToolkit(&stubTool{name: "my_tool", schema: schema})
	if err != nil {
		t.Fatal(err)
	}
	_, err = tk.Run(context.Background(), "my_tool", json.RawMessage(`{"city":123}`))
	if err == nil {
		t.Fatal("expected validation error for wrong type")
	}
	t.Log("got expected error:", err)
}
