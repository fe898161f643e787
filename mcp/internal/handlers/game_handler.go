package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ElijahRus250/twitch-api/client"
)

// GameHandler exposes the list_top_games tool.
type GameHandler struct {
	client *client.Client
}

func NewGameHandler(c *client.Client) *GameHandler {
	return &GameHandler{client: c}
}

func (gh *GameHandler) RegisterTools(s *server.MCPServer) error {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("List games ordered by current viewers"),
	}, listOptions()...)
	s.AddTool(mcp.NewTool("list_top_games", opts...), gh.handleTopGames)
	return nil
}

func (gh *GameHandler) handleTopGames(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	obj, err := gh.client.FetchTopGames(ctx, queryOptions(req))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("top games failed: %v", err)), nil
	}
	return objectResult(obj), nil
}
