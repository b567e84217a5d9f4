package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "convert_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Content is one item of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the MCP result of a tools/call request.
//
// Conversion failures are reported in-band with IsError set, so the client
// sees "Error: <message>" as the tool output instead of a protocol error.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

func textResult(text string) *ToolResult {
	return &ToolResult{Content: []Content{{Type: "text", Text: text}}}
}

func errorResult(err error) *ToolResult {
	return &ToolResult{
		Content: []Content{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "#ff0080"}]
//	}
//
// Unknown tools and malformed arguments return a JSON-RPC error response;
// conversion failures return a result with isError set.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Calls the color converter
//  3. Wraps the output, or the conversion error, in a ToolResult
func (s *Server) executeTool(name string, args json.RawMessage) (*ToolResult, error) {
	switch name {
	case "convert_color":
		return s.handleConvertColor(args)
	case "convert_color_all":
		return s.handleConvertColorAll(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type convertColorArgs struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color"`
}

func (s *Server) handleConvertColor(args json.RawMessage) (*ToolResult, error) {
	var a convertColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	out, err := colorconv.Convert(a.From, a.To, a.Color)
	if err != nil {
		s.log.Debug().Err(err).Str("from", a.From).Str("to", a.To).Str("color", a.Color).Msg("conversion failed")
		return errorResult(err), nil
	}

	s.log.Debug().Str("from", a.From).Str("to", a.To).Str("result", out).Msg("converted color")
	return textResult(out), nil
}

type convertColorAllArgs struct {
	From  string `json:"from"`
	Color string `json:"color"`
}

// convertColorAllResult lists the color in every output format.
type convertColorAllResult struct {
	Input   string            `json:"input"`
	From    string            `json:"from"`
	Formats map[string]string `json:"formats"`
}

func (s *Server) handleConvertColorAll(args json.RawMessage) (*ToolResult, error) {
	var a convertColorAllArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	all, err := colorconv.ConvertAll(a.From, a.Color)
	if err != nil {
		s.log.Debug().Err(err).Str("from", a.From).Str("color", a.Color).Msg("conversion failed")
		return errorResult(err), nil
	}

	formats := make(map[string]string, len(all))
	for f, v := range all {
		formats[string(f)] = v
	}
	return textResult(mustMarshalJSON(convertColorAllResult{
		Input:   a.Color,
		From:    a.From,
		Formats: formats,
	})), nil
}
