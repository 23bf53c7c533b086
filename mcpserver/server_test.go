// ABOUTME: Tests for the MCP conversion tools using in-memory client/server transports.
// ABOUTME: Covers both conversions, default and explicit base, the table tool, and base rejection.
package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connect starts the server on an in-memory transport and returns a client session.
func connect(t *testing.T, opts Options) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := New(opts).Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

// callTool invokes name and decodes its structured result into out.
func callTool(t *testing.T, s *mcp.ClientSession, name string, args map[string]any, out any) *mcp.CallToolResult {
	t.Helper()
	res, err := s.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if out != nil && !res.IsError {
		raw, err := json.Marshal(res.StructuredContent)
		if err != nil {
			t.Fatalf("marshal structured content: %v", err)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode structured content: %v", err)
		}
	}
	return res
}

func TestListTools(t *testing.T) {
	s := connect(t, Options{})
	res, err := s.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"px_to_rem", "rem_to_px", "conversion_table"} {
		if !names[want] {
			t.Errorf("missing tool %q", want)
		}
	}
}

func TestPxToRemDefaultBase(t *testing.T) {
	s := connect(t, Options{BaseSize: 16})
	var got Conversion
	res := callTool(t, s, "px_to_rem", map[string]any{"px": 24}, &got)
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if got.Rem != 1.5 || got.Base != 16 || got.Text != "1.5rem" {
		t.Errorf("got %+v", got)
	}
}

func TestRemToPxExplicitBase(t *testing.T) {
	s := connect(t, Options{BaseSize: 16})
	var got Conversion
	res := callTool(t, s, "rem_to_px", map[string]any{"rem": 2, "base": 10}, &got)
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if got.Px != 20 || got.Base != 10 || got.Text != "20px" {
		t.Errorf("got %+v", got)
	}
}

func TestConversionTable(t *testing.T) {
	s := connect(t, Options{BaseSize: 10})
	var got Table
	res := callTool(t, s, "conversion_table", map[string]any{}, &got)
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if got.Base != 10 || len(got.Rows) != 18 {
		t.Fatalf("got base=%v rows=%d", got.Base, len(got.Rows))
	}
	if got.Rows[6].Px != 20 || got.Rows[6].Label != "2rem" {
		t.Errorf("row for 20px = %+v", got.Rows[6])
	}
}

func TestInvalidBaseIsToolError(t *testing.T) {
	s := connect(t, Options{})
	res := callTool(t, s, "px_to_rem", map[string]any{"px": 10, "base": 0}, nil)
	if !res.IsError {
		t.Error("expected base 0 to produce a tool error")
	}
}

func TestNewFallsBackToDefaultBase(t *testing.T) {
	s := connect(t, Options{BaseSize: -3})
	var got Conversion
	callTool(t, s, "px_to_rem", map[string]any{"px": 32}, &got)
	if got.Base != 16 || got.Rem != 2 {
		t.Errorf("got %+v, want default base 16", got)
	}
}
