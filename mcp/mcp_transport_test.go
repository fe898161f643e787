package mcp

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	tclient "github.com/ElijahRus250/twitch-api/client"
	"github.com/ElijahRus250/twitch-api/internal/krakentest"
)

var expectedTools = []string{
	"resolve_user_id",
	"get_user_stream",
	"get_playback_url",
	"list_featured_streams",
	"list_top_streams",
	"list_streams_by_game",
	"list_top_games",
	"search_channels",
	"search_streams",
	"search_games",
}

func initialize(ctx context.Context, t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "test-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to initialize MCP client: %v", err)
	}
}

// TestMCPServerTransports verifies that the MCP server serves the Twitch
// tools over both in-process (stdio-like) and HTTP transports.
func TestMCPServerTransports(t *testing.T) {
	kraken := krakentest.New(map[string]string{"lirik": "23161357"})
	defer kraken.Close()

	sdk, err := tclient.New("mcp-transport-test", "",
		tclient.WithBaseURL(kraken.BaseURL()),
		tclient.WithAPIURL(kraken.APIURL()),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	mcpServer, err := NewServer("test-mcp-server", "1.0.0", sdk)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	t.Run("InProcessTransport", func(t *testing.T) {
		inProcessTransport := transport.NewInProcessTransport(mcpServer)
		if err := inProcessTransport.Start(context.Background()); err != nil {
			t.Fatalf("failed to start in-process transport: %v", err)
		}
		defer inProcessTransport.Close()

		mcpClient := client.NewClient(inProcessTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		initialize(ctx, t, mcpClient)

		tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			t.Fatalf("tools/list failed over in-process transport: %v", err)
		}
		toolNames := make(map[string]bool)
		for _, tool := range tools.Tools {
			toolNames[tool.Name] = true
		}
		for _, expected := range expectedTools {
			if !toolNames[expected] {
				t.Errorf("expected tool %q not found in tools list", expected)
			}
		}

		res, err := mcpClient.CallTool(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "resolve_user_id",
				Arguments: map[string]any{"username": "lirik"},
			},
		})
		if err != nil {
			t.Fatalf("tools/call failed: %v", err)
		}
		if res.IsError || len(res.Content) == 0 {
			t.Fatalf("unexpected tool result: %+v", res)
		}
		if txt := res.Content[0].(mcp.TextContent).Text; txt != "23161357" {
			t.Fatalf("resolve_user_id = %q", txt)
		}
	})

	t.Run("HTTPTransport", func(t *testing.T) {
		streamSrv := server.NewStreamableHTTPServer(
			mcpServer,
			server.WithEndpointPath("/mcp"),
			server.WithHeartbeatInterval(30*time.Second),
		)
		httpSrv := httptest.NewServer(streamSrv)
		defer httpSrv.Close()

		httpTransport, err := transport.NewStreamableHTTP(httpSrv.URL + "/mcp")
		if err != nil {
			t.Fatalf("failed to create HTTP transport: %v", err)
		}
		if err := httpTransport.Start(context.Background()); err != nil {
			t.Fatalf("failed to start HTTP transport: %v", err)
		}
		defer httpTransport.Close()

		mcpClient := client.NewClient(httpTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		initialize(ctx, t, mcpClient)

		res, err := mcpClient.CallTool(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_top_games",
				Arguments: map[string]any{"limit": 1},
			},
		})
		if err != nil {
			t.Fatalf("tools/call failed over HTTP transport: %v", err)
		}
		if res.IsError || !strings.Contains(res.Content[0].(mcp.TextContent).Text, "Dota 2") {
			t.Fatalf("unexpected tool result: %+v", res)
		}
		if q := kraken.LastRequest().RawQuery; q != "limit=1" {
			t.Fatalf("upstream query = %q", q)
		}
	})
}

func TestShouldUseStdio_EnvOverrides(t *testing.T) {
	t.Setenv("MCP_HTTP", "")
	t.Setenv("MCP_STDIO", "true")
	if !shouldUseStdio() {
		t.Fatal("MCP_STDIO=true should force stdio")
	}
	t.Setenv("MCP_STDIO", "")
	t.Setenv("MCP_HTTP", "true")
	if shouldUseStdio() {
		t.Fatal("MCP_HTTP=true should force HTTP")
	}
}
