package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/geoloco/mappazzone/game/config"
	"github.com/geoloco/mappazzone/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Mappazzone",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mappazzone - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Empty your hand of cities by placing them on the board so that columns go
west to east and rows go north to south. A wrong placement discards the
city and makes you draw more. Fewest cities in hand wins.

AVAILABLE TOOLS:
- match_state: Get current match state
- place: Place a hand city on a board cell - requires intent explanation
- swap: Exchange a hand city for a fresh draw
- match_results: Get the ranking, best player first
- create_match: Create a new match
- get_match: Get match details
- list_matches: List all active matches
- list_presets: List available option presets
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on the place tool serves as rubber duck
debugging - explain your geographic reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Match management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_match",
		Description: "Create a new match with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"preset_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the preset to use (optional)",
				},
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seating order",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"EN", "IT"},
					"description": "Language for game messages (default EN)",
				},
			},
			Required: []string{"players"},
		},
	}, c.handleCreateMatch)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_matches",
		Description: "List all active matches",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListMatches)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_match",
		Description: "Get details of a specific match",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"match_id": map[string]interface{}{
					"type":        "string",
					"description": "Match ID to retrieve",
				},
			},
			Required: []string{"match_id"},
		},
	}, c.handleGetMatch)

	// Turn operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "match_state",
		Description: "Get the current match state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"match_id": map[string]interface{}{
					"type":        "string",
					"description": "Match ID",
				},
			},
			Required: []string{"match_id"},
		},
	}, c.handleMatchState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place",
		Description: "Place a hand city on a board cell. Columns must respect longitudes (west to east) and rows latitudes (north to south); a wrong placement discards the city and draws replacements.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"match_id": map[string]interface{}{
					"type":        "string",
					"description": "Match ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Name of the player taking the turn",
				},
				"city": map[string]interface{}{
					"type":        "string",
					"description": "Name of the hand city to place",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the target cell (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the target cell (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the geographic reasoning behind this placement (serves as a rubber duck)",
				},
			},
			Required: []string{"match_id", "player", "city", "x", "y"},
		},
	}, c.handlePlace)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "swap",
		Description: "Exchange a hand city for a fresh draw instead of placing",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"match_id": map[string]interface{}{
					"type":        "string",
					"description": "Match ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"description": "Name of the player taking the turn",
				},
				"city": map[string]interface{}{
					"type":        "string",
					"description": "Name of the hand city to swap away",
				},
			},
			Required: []string{"match_id", "player", "city"},
		},
	}, c.handleSwap)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "match_results",
		Description: "Get the match ranking, best player first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"match_id": map[string]interface{}{
					"type":        "string",
					"description": "Match ID",
				},
			},
			Required: []string{"match_id"},
		},
	}, c.handleMatchResults)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_presets",
		Description: "List available option presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListPresets)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	presetID, _ := args["preset_id"].(string)
	language, _ := args["language"].(string)
	playersRaw, _ := args["players"].([]interface{})

	players := make([]string, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, name)
		}
	}

	body := map[string]interface{}{
		"players": players,
	}
	if presetID != "" {
		body["preset_id"] = presetID
	}
	if language != "" {
		body["language"] = language
	}

	var match service.MatchInfo
	err := c.apiCall("POST", "/api/matches", body, &match)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created match: %s\nPreset: %s\nPlayers: %s\n\n%s",
		match.ID, match.PresetID, strings.Join(match.Players, ", "), formatMatchState(match.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListMatches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count   int                 `json:"count"`
		Matches []service.MatchInfo `json:"matches"`
	}

	err := c.apiCall("GET", "/api/matches", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Matches (%d):\n\n", response.Count)
	for _, m := range response.Matches {
		result += fmt.Sprintf("- %s (Preset: %s, Players: %s, Created: %s)\n",
			m.ID, m.PresetID, strings.Join(m.Players, ", "), m.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	matchID, _ := args["match_id"].(string)

	var match service.MatchInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/matches/%s", matchID), nil, &match)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatMatchInfo(&match)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMatchState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	matchID, _ := args["match_id"].(string)

	var state service.MatchState
	err := c.apiCall("GET", fmt.Sprintf("/api/matches/%s/state", matchID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatMatchState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	matchID, _ := args["match_id"].(string)
	player, _ := args["player"].(string)
	city, _ := args["city"].(string)
	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"player": player,
		"city":   city,
		"x":      int(x),
		"y":      int(y),
	}

	var result service.PlaceResult
	err := c.apiCall("POST", fmt.Sprintf("/api/matches/%s/place", matchID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatPlaceResult(city, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleSwap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	matchID, _ := args["match_id"].(string)
	player, _ := args["player"].(string)
	city, _ := args["city"].(string)

	body := map[string]interface{}{
		"player": player,
		"city":   city,
	}

	var result service.SwapResult
	err := c.apiCall("POST", fmt.Sprintf("/api/matches/%s/swap", matchID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Swapped away %s.\n\n%s", result.Discarded, formatMatchState(result.State))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleMatchResults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	matchID, _ := args["match_id"].(string)

	var results service.MatchResults
	err := c.apiCall("GET", fmt.Sprintf("/api/matches/%s/results", matchID), nil, &results)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatResults(&results)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListPresets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var presets []config.PresetInfo
	err := c.apiCall("GET", "/api/presets", nil, &presets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, preset := range presets {
		result += fmt.Sprintf("• %s (%s)\n  %s\n\n", preset.Name, preset.PresetID, preset.Description)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Mappazzone - Complete Instructions

GAME OBJECTIVE:
Be the first to empty your hand of cities by placing them correctly on the
board, or hold the fewest cities when the game ends.

GAME MECHANICS:
• The board starts with one city at the center.
• Columns order cities by longitude: west on the left, east on the right.
• Rows order cities by latitude: north at the top, south at the bottom.
• Two cities whose coordinates differ less than the tolerance may sit in
  any order; the default tolerance is 5 degrees.
• A correct placement commits the city to the board.
• A wrong placement discards the city AND makes you draw new cities, so
  mistakes grow your hand.
• Instead of placing you may swap a hand city for a fresh draw.

TURN FLOW:
1. It is one player's turn at a time, in seating order.
2. The player either places a hand city at a cell (x, y) or swaps one.
3. The turn passes to the next player.

COORDINATES:
• x is the column (0-based, west side is lower than the center column only
  if the city is west of the center city).
• y is the row (0-based, north is lower y).
• Compare each city's longitude and latitude against every city already in
  the same row and column, including the center.

AI AGENTS - SUCCESS STRATEGIES:
• Before placing, list every placed city in the target row and column with
  its longitude and latitude, then verify the ordering constraint cell by
  cell.
• Prefer cells adjacent to cities whose coordinates you are sure about.
• Remember the tolerance: near-ties are safe in either order.
• A failed placement tells you which axis was wrong (longitude means the
  column was wrong, latitude means the row); use it to re-estimate the
  city's position.
• Swap cities you cannot confidently place instead of guessing.

END CONDITIONS (depending on the preset):
• A player places their last city (they win).
• A player's hand grows past the limit.
• The round or placement limits are reached.
• The deck runs out.

SCORING:
Fewest cities in hand wins; ties break by most cities placed.

MATCH MANAGEMENT:
• Multiple matches can run simultaneously.
• Each match has a unique 4-character ID.
• Use match-specific tools for multi-match play.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatters

func formatMatchInfo(match *service.MatchInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %s\n", match.ID))
	sb.WriteString(fmt.Sprintf("Preset: %s\n", match.PresetID))
	sb.WriteString(fmt.Sprintf("Players: %s\n", strings.Join(match.Players, ", ")))
	sb.WriteString(fmt.Sprintf("Created: %s\n\n", match.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(formatMatchState(match.State))
	return sb.String()
}

func formatMatchState(state *service.MatchState) string {
	if state == nil {
		return ""
	}

	var sb strings.Builder
	if state.Over {
		sb.WriteString(fmt.Sprintf("GAME OVER (%s)\n%s\n\n", state.Reason, state.Message))
	} else {
		sb.WriteString(fmt.Sprintf("Current player: %s (round %d)\n\n", state.CurrentPlayer, state.Rounds))
	}

	sb.WriteString(fmt.Sprintf("Board %dx%d (tolerance %.1f):\n", state.Board.Size, state.Board.Size, state.Board.Tolerance))
	for _, cell := range state.Board.Cells {
		sb.WriteString(fmt.Sprintf("  (%d,%d) %s [lng %.2f, lat %.2f]\n",
			cell.X, cell.Y, cell.Location.City, cell.Location.Longitude, cell.Location.Latitude))
	}
	sb.WriteString("\n")

	for _, player := range state.Players {
		cities := make([]string, 0, len(player.Hand))
		for _, loc := range player.Hand {
			cities = append(cities, loc.City)
		}
		sb.WriteString(fmt.Sprintf("%s (score %d, placed %d): %s\n",
			player.Name, player.Score, player.Placed, strings.Join(cities, ", ")))
	}

	sb.WriteString(fmt.Sprintf("\nDeck: %d cities left\n", state.DeckSize))
	return sb.String()
}

func formatPlaceResult(city string, result *service.PlaceResult) string {
	var sb strings.Builder
	if result.Committed {
		sb.WriteString(fmt.Sprintf("Placed %s correctly.\n", city))
	} else {
		sb.WriteString(fmt.Sprintf("Wrong placement of %s: violated %s. The city was discarded and %d replacements drawn.\n",
			city, strings.Join(result.Violations, " and "), result.Drawn))
	}
	if result.Message != "" {
		sb.WriteString(result.Message + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(formatMatchState(result.State))
	return sb.String()
}

func formatResults(results *service.MatchResults) string {
	var sb strings.Builder
	if results.Over {
		sb.WriteString(fmt.Sprintf("Final results (%s):\n", results.Reason))
		if results.Message != "" {
			sb.WriteString(results.Message + "\n")
		}
	} else {
		sb.WriteString("Current standings (match still running):\n")
	}
	sb.WriteString("\n")
	for _, entry := range results.Ranking {
		sb.WriteString(fmt.Sprintf("%d. %s - %d in hand, %d placed\n",
			entry.Position, entry.Name, entry.Score, entry.Placed))
	}
	return sb.String()
}
