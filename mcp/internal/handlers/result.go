package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ElijahRus250/twitch-api/client"
)

// objectResult renders an API payload as indented JSON text.
func objectResult(obj client.Object) *mcp.CallToolResult {
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// intArg reads an optional numeric argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, name string) int {
	if v, ok := req.GetArguments()[name].(float64); ok {
		return int(v)
	}
	return 0
}

func stringArg(req mcp.CallToolRequest, name string) string {
	v, _ := req.GetArguments()[name].(string)
	return v
}

func boolArg(req mcp.CallToolRequest, name string) bool {
	v, _ := req.GetArguments()[name].(bool)
	return v
}

// queryOptions collects the list filters. It returns nil when none was
// given so no query string is sent.
func queryOptions(req mcp.CallToolRequest) *client.QueryOptions {
	o := client.QueryOptions{
		Limit:      intArg(req, "limit"),
		Offset:     intArg(req, "offset"),
		Channel:    stringArg(req, "channel"),
		Game:       stringArg(req, "game"),
		Language:   stringArg(req, "language"),
		StreamType: stringArg(req, "stream_type"),
	}
	if o == (client.QueryOptions{}) {
		return nil
	}
	return &o
}

func listOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (server caps at 100)")),
		mcp.WithNumber("offset", mcp.Description("Offset for pagination")),
	}
}
