// Package server implements the MCP (Model Context Protocol) server for color conversion.
//
// This package provides a JSON-RPC 2.0 server that exposes the colorconv
// package through the MCP protocol, so Claude and other MCP-compatible clients
// can translate colors between notations without doing the math themselves.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - convert_color: Convert a color string from one format to another
//   - convert_color_all: Convert a color string into every supported format
//
// Supported target formats are rgb, rgba, hex, hex8, hsl, lab, oklch and cmyk.
//
// # Error Handling
//
// Conversion failures are part of the tool result, not protocol errors. The
// result carries isError: true and a single text item:
//
//	Error: Unable to parse color: rgb(1,2)
//
// Protocol-level problems are returned as JSON-RPC error responses:
//   - -32700: the request line is not valid JSON
//   - -32601: unknown method
//   - -32602: tools/call params are malformed
//   - -32000: unknown tool or undecodable tool arguments
//
// # State
//
// Each request is handled independently; nothing is cached between calls.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.WithLogger(log), server.WithVersion(version))
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server error")
//	}
package server
