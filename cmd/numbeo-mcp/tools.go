package main

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListToolsCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type ToolInfoCmd struct {
	Name string `arg:"" name:"name" help:"Tool name"`
	JSON bool   `name:"json" help:"Output as JSON"`
}

type RunToolCmd struct {
	Name  string          `arg:"" name:"name" help:"Tool name"`
	Input json.RawMessage `arg:"" name:"input" optional:"" help:"JSON input for the tool (optional)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCmd) Run(globals *Globals) error {
	tools := globals.toolkit.Tools()

	if cmd.JSON {
		// Output as JSON
		type toolInfo struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		output := make([]toolInfo, 0, len(tools))
		for _, tool := range tools {
			output = append(output, toolInfo{
				Name:        tool.Name(),
				Description: tool.Description(),
			})
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		// Output as text
		for _, tool := range tools {
			fmt.Printf("%-35s %s\n", tool.Name(), tool.Description())
		}
	}

	return nil
}

func (cmd *ToolInfoCmd) Run(globals *Globals) error {
	// Lookup the tool
	tool := globals.toolkit.Lookup(cmd.Name)
	if tool == nil {
		return fmt.Errorf("tool not found: %q", cmd.Name)
	}

	// Get the schema
	schema, err := tool.Schema()
	if err != nil {
		return fmt.Errorf("failed to get schema: %w", err)
	}

	if cmd.JSON {
		// Output as JSON
		type toolDetail struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Schema      any    `json:"schema,omitempty"`
		}
		output := toolDetail{
			Name:        tool.Name(),
			Description: tool.Description(),
			Schema:      schema,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		// Output as text
		fmt.Printf("Name: %s\n", tool.Name())
		fmt.Printf("Description: %s\n", tool.Description())
		if schema != nil {
			fmt.Println("\nSchema:")
			data, err := json.MarshalIndent(schema, "  ", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("  %s\n", string(data))
		}
	}

	return nil
}

func (cmd *RunToolCmd) Run(globals *Globals) error {
	// Prepare input (nil if not provided)
	var input any
	if len(cmd.Input) > 0 {
		input = cmd.Input
	}

	// Run the tool using the toolkit (which handles JSON unmarshaling and validation)
	result, err := globals.toolkit.Run(globals.ctx, cmd.Name, input)
	if err != nil {
		return err
	}

	// Output the result as JSON
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))

	return nil
}
