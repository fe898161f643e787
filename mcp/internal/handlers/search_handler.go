package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/ElijahRus250/twitch-api/client"
)

// SearchHandler exposes the search_channels, search_streams and
// search_games tools.
type SearchHandler struct {
	client *client.Client
}

func NewSearchHandler(c *client.Client) *SearchHandler {
	return &SearchHandler{client: c}
}

// RegisterTools registers the search tools.
func (sh *SearchHandler) RegisterTools(s *server.MCPServer) error {
	paged := func(name, what string) mcp.Tool {
		return mcp.NewTool(name,
			mcp.WithDescription("Search "+what+" by free text"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query text")),
			mcp.WithNumber("limit", mcp.Description("Number of results (default 25, max 100)")),
			mcp.WithNumber("offset", mcp.Description("Offset for pagination (default 0)")),
		)
	}
	s.AddTool(paged("search_channels", "channels"), sh.handleSearchChannels)
	s.AddTool(paged("search_streams", "live streams"), sh.handleSearchStreams)

	gamesTool := mcp.NewTool("search_games",
		mcp.WithDescription("Search games by name"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query text")),
		mcp.WithBoolean("live", mcp.Description("Only return games that are being streamed now")),
	)
	s.AddTool(gamesTool, sh.handleSearchGames)
	return nil
}

func page(req mcp.CallToolRequest) *client.Page {
	return &client.Page{Limit: intArg(req, "limit"), Offset: intArg(req, "offset")}
}

func (sh *SearchHandler) handleSearchChannels(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	obj, err := sh.client.SearchChannels(ctx, query, page(req))
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search_channels failed")
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	return objectResult(obj), nil
}

func (sh *SearchHandler) handleSearchStreams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	obj, err := sh.client.SearchStreams(ctx, query, page(req))
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search_streams failed")
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	return objectResult(obj), nil
}

func (sh *SearchHandler) handleSearchGames(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	obj, err := sh.client.SearchGames(ctx, query, boolArg(req, "live"))
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search_games failed")
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	return objectResult(obj), nil
}
