package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/ElijahRus250/twitch-api/client"
)

// StreamHandler exposes the stream list tools.
type StreamHandler struct {
	client *client.Client
}

func NewStreamHandler(c *client.Client) *StreamHandler {
	return &StreamHandler{client: c}
}

// RegisterTools registers list_featured_streams, list_top_streams and
// list_streams_by_game.
func (sh *StreamHandler) RegisterTools(s *server.MCPServer) error {
	featured := append([]mcp.ToolOption{
		mcp.WithDescription("List the streams currently featured on the front page"),
	}, listOptions()...)
	s.AddTool(mcp.NewTool("list_featured_streams", featured...), sh.handleFeatured)

	top := append([]mcp.ToolOption{
		mcp.WithDescription("List live streams ordered by viewer count, optionally filtered"),
		mcp.WithString("channel", mcp.Description("Comma-separated channel names")),
		mcp.WithString("game", mcp.Description("Game name")),
		mcp.WithString("language", mcp.Description("Broadcaster language, e.g. en")),
		mcp.WithString("stream_type", mcp.Description("live, playlist or all")),
	}, listOptions()...)
	s.AddTool(mcp.NewTool("list_top_streams", top...), sh.handleTop)

	byGame := mcp.NewTool("list_streams_by_game",
		mcp.WithDescription("List live streams of a single game"),
		mcp.WithString("game", mcp.Required(), mcp.Description("Exact game name, e.g. Halo 3")),
	)
	s.AddTool(byGame, sh.handleByGame)
	return nil
}

func (sh *StreamHandler) handleFeatured(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	obj, err := sh.client.FetchFeaturedStreams(ctx, queryOptions(req))
	if err != nil {
		log.Error().Err(err).Msg("list_featured_streams failed")
		return mcp.NewToolResultError(fmt.Sprintf("featured streams failed: %v", err)), nil
	}
	return objectResult(obj), nil
}

func (sh *StreamHandler) handleTop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	obj, err := sh.client.FetchTopStreams(ctx, queryOptions(req))
	if err != nil {
		log.Error().Err(err).Msg("list_top_streams failed")
		return mcp.NewToolResultError(fmt.Sprintf("top streams failed: %v", err)), nil
	}
	return objectResult(obj), nil
}

func (sh *StreamHandler) handleByGame(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	game, err := req.RequireString("game")
	if err != nil {
		return mcp.NewToolResultError("game parameter is required"), nil
	}
	obj, err := sh.client.FetchStreamsByGame(ctx, game)
	if err != nil {
		log.Error().Err(err).Str("game", game).Msg("list_streams_by_game failed")
		return mcp.NewToolResultError(fmt.Sprintf("streams by game failed: %v", err)), nil
	}
	return objectResult(obj), nil
}
