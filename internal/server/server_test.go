package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.version != "dev" {
		t.Errorf("version: got %s, want dev", s.version)
	}

	s = New(WithVersion("1.2.3"), WithLogger(zerolog.Nop()))
	if s.version != "1.2.3" {
		t.Errorf("version: got %s, want 1.2.3", s.version)
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestMCPResponse_ErrorOmitsEmptyData(t *testing.T) {
	s := New()
	resp := s.errorResponse(1, codeMethodNotFound, "Method not found: x", "")

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("empty data should be omitted: %s", data)
	}
	if strings.Contains(string(data), `"result"`) {
		t.Errorf("error response should not carry a result: %s", data)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(WithVersion("1.0.0"))
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != 1 {
		t.Errorf("ID: got %v, want 1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "color-convert-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "1.0.0" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}

	instructions, _ := result["instructions"].(string)
	if !strings.Contains(instructions, "CMYK") {
		t.Errorf("instructions should list formats, got %q", instructions)
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != 2 {
		t.Errorf("Expected 2 tools, got %d", len(toolsList))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	resp := s.handleRequest(req)

	// Notifications don't get responses
	if resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "nonexistent/method",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("Error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestServe_Session(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"convert_color","arguments":{"from":"rgb","to":"hex","color":"rgb(255, 0, 128)"}}}`,
		`not json`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	var logs bytes.Buffer
	s := New(WithLogger(zerolog.New(&logs)))
	if err := s.Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []map[string]interface{}
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("response is not JSON: %v (%q)", err, scanner.Text())
		}
		responses = append(responses, resp)
	}

	// initialize, tools/call, parse error, ping; the notification is silent.
	if len(responses) != 4 {
		t.Fatalf("got %d responses, want 4: %s", len(responses), out.String())
	}

	if responses[0]["id"] != float64(1) {
		t.Errorf("first response id: got %v, want 1", responses[0]["id"])
	}

	result, ok := responses[1]["result"].(map[string]interface{})
	if !ok {
		t.Fatalf("tools/call response has no result: %v", responses[1])
	}
	content := result["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"]
	if text != "#ff0080" {
		t.Errorf("converted color: got %v, want #ff0080", text)
	}

	errObj, ok := responses[2]["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("malformed line should produce an error response: %v", responses[2])
	}
	if errObj["code"] != float64(-32700) {
		t.Errorf("parse error code: got %v, want -32700", errObj["code"])
	}

	if responses[3]["id"] != float64(3) {
		t.Errorf("ping response id: got %v, want 3", responses[3]["id"])
	}

	if !strings.Contains(logs.String(), "failed to parse request") {
		t.Errorf("malformed request should be logged, got %q", logs.String())
	}
}
