package server

import "github.com/ironsheep/color-convert-mcp/internal/colorconv"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// formatNames lists the output format tags for schema enums.
func formatNames() []string {
	formats := colorconv.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "convert_color",
			Description: "A tool that converts colors from one format to another. " +
				"It supports the following formats: RGB, RGBA, HEX, HEX8, HSL, OKLCH, LAB and CMYK.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": map[string]interface{}{
						"type":        "string",
						"description": "The format to convert from (rgb, rgba, hex, hex8, hsl, lab, oklch, cmyk). Other values parse common CSS color syntax such as named colors.",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        formatNames(),
						"description": "The format to convert to",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "The color to convert, e.g. \"rgb(255, 0, 128)\", \"#ff0080\" or \"cmyk(0%, 100%, 50%, 0%)\"",
					},
				},
				"required": []string{"from", "to", "color"},
			},
		},
		{
			Name:        "convert_color_all",
			Description: "Convert a color into every supported format in a single call. Returns a JSON object keyed by format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": map[string]interface{}{
						"type":        "string",
						"description": "The format to convert from",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "The color to convert",
					},
				},
				"required": []string{"from", "color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
