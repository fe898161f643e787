package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/ElijahRus250/twitch-api/client"
)

// UserHandler provides the per-user tools: id lookup, current stream and
// playback URL.
type UserHandler struct {
	client *client.Client
}

// NewUserHandler creates a new user handler instance.
func NewUserHandler(client *client.Client) *UserHandler {
	return &UserHandler{
		client: client,
	}
}

// RegisterTools registers all user tools with the MCP server.
func (uh *UserHandler) RegisterTools(s *server.MCPServer) error {
	resolveTool := mcp.NewTool("resolve_user_id",
		mcp.WithDescription("Resolve a Twitch login name to its numeric user id"),
		mcp.WithString("username", mcp.Required(), mcp.Description("Login name, e.g. lirik")),
	)
	s.AddTool(resolveTool, uh.handleResolveUserID)

	streamTool := mcp.NewTool("get_user_stream",
		mcp.WithDescription("Get the live stream of a user. The stream field is null while the user is offline."),
		mcp.WithString("username", mcp.Required(), mcp.Description("Login name")),
	)
	s.AddTool(streamTool, uh.handleGetUserStream)

	playbackTool := mcp.NewTool("get_playback_url",
		mcp.WithDescription("Build the HLS playback manifest URL for a channel"),
		mcp.WithString("username", mcp.Required(), mcp.Description("Channel name (case-insensitive)")),
	)
	s.AddTool(playbackTool, uh.handleGetPlaybackURL)

	return nil
}

func (uh *UserHandler) handleResolveUserID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := request.RequireString("username")
	if err != nil {
		log.Error().Err(err).Msg("username parameter validation failed")
		return mcp.NewToolResultError("username parameter is required"), nil
	}

	start := time.Now()
	id, err := uh.client.ResolveUserID(ctx, username)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().
			Err(err).
			Str("username", username).
			Dur("elapsed", elapsed).
			Msg("resolve_user_id failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve %s: %v", username, err)), nil
	}

	log.Debug().
		Str("username", username).
		Str("user_id", id).
		Dur("elapsed", elapsed).
		Msg("resolve_user_id completed")
	return mcp.NewToolResultText(id), nil
}

func (uh *UserHandler) handleGetUserStream(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := request.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}

	obj, err := uh.client.FetchUserStream(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("get_user_stream failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get stream of %s: %v", username, err)), nil
	}
	return objectResult(obj), nil
}

func (uh *UserHandler) handleGetPlaybackURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := request.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}

	u, err := uh.client.ResolvePlaybackURL(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("get_playback_url failed")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get playback url of %s: %v", username, err)), nil
	}
	return mcp.NewToolResultText(u), nil
}
