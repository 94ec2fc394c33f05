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
	"github.com/mtmal/snake-server/game/engine"
	"github.com/mtmal/snake-server/game/leaderboard"
	"github.com/mtmal/snake-server/game/service"
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
		"Snake Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Snake Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Steer the snake (@ head, o body) onto food (*) to grow and score. Hitting
a wall or your own body ends the game.

AVAILABLE TOOLS:
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- delete_session: Delete a session
- game_state: Get current game state with board rendering
- set_direction: Point the snake up/down/left/right (applies on next tick)
- tick: Advance the game by one step
- ai_move: Let the built-in heuristic play one or more steps
- reset_game: Reset the board to a fresh single-segment snake
- leaderboard: Show the top scores
- submit_score: Submit a score to the leaderboard
- list_configs: List available board configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: set_direction only turns the snake; nothing moves until tick is called.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the board config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to delete",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleDeleteSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with a board rendering",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_direction",
		Description: "Point the snake in a direction. The snake does not move until tick is called.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to face",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleSetDirection)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "tick",
		Description: "Advance the game by one step in the current direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleTick)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "ai_move",
		Description: "Let the built-in greedy heuristic play one or more steps",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"steps": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Number of AI steps to play (default 1, max %d); stops early on game over", engine.MaxAIMoves),
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAIMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to a fresh board with a single-segment snake",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	// Leaderboard
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "Show the top scores",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleLeaderboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_score",
		Description: "Submit a score to the leaderboard",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Player name",
				},
				"score": map[string]interface{}{
					"type":        "integer",
					"description": "Score to submit",
				},
			},
			Required: []string{"name", "score"},
		},
	}, c.handleSubmitScore)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

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

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	err := c.apiCall("DELETE", fmt.Sprintf("/api/sessions/%s", sessionID), nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Session %s deleted", sessionID)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSetDirection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)

	body := map[string]string{
		"direction": direction,
	}

	var state engine.GameState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/direction", sessionID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Direction set to %s (takes effect on next tick)\n\n%s",
		direction, formatGameState(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.TickResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/tick", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(result.GameState)), nil
}

func (c *Client) handleAIMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	steps := 1
	if raw, ok := args["steps"].(float64); ok && int(raw) > 0 {
		steps = int(raw)
	}
	if steps > engine.MaxAIMoves {
		steps = engine.MaxAIMoves
	}

	var result service.AIMoveResult
	var chosen []string
	for i := 0; i < steps; i++ {
		err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/ai-move", sessionID), nil, &result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		chosen = append(chosen, string(result.Direction))
		if result.GameOver {
			break
		}
	}

	response := fmt.Sprintf("AI played %d step(s): %s\n\n%s",
		len(chosen), strings.Join(chosen, ", "), formatGameState(result.GameState))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var entries []leaderboard.Entry
	err := c.apiCall("GET", "/api/leaderboard", nil, &entries)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText("Leaderboard is empty"), nil
	}

	result := "Leaderboard:\n\n"
	for i, e := range entries {
		result += fmt.Sprintf("%d. %s — %d\n", i+1, e.Name, e.Score)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSubmitScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	name, _ := args["name"].(string)
	scoreRaw, _ := args["score"].(float64)

	body := map[string]interface{}{
		"name":  name,
		"score": int(scoreRaw),
	}

	var entries []leaderboard.Entry
	err := c.apiCall("POST", "/api/leaderboard", body, &entries)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Submitted %s: %d\n\nLeaderboard:\n", name, int(scoreRaw))
	for i, e := range entries {
		result += fmt.Sprintf("%d. %s — %d\n", i+1, e.Name, e.Score)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count   int                  `json:"count"`
		Configs []service.ConfigInfo `json:"configs"`
	}

	err := c.apiCall("GET", "/api/configs", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range response.Configs {
		result += fmt.Sprintf("• %s\n  %s\n  Board: %dx%d\n\n",
			config.Name, config.Description, config.Width, config.Height)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Snake Game Server - Complete Instructions

GAME OBJECTIVE:
Steer the snake onto food to grow and score. The game ends when the snake
hits a wall or its own body.

GAME MECHANICS:
• The board is a Width x Height grid. (0,0) is the top-left corner; x grows
  right, y grows down.
• Each tick, the snake advances one cell in its current direction.
• Eating food grows the snake by one segment and adds one point. A new food
  cell is placed on a free cell immediately.
• Moving outside the board or into any body cell ends the game. A game-over
  board no longer changes; further ticks are no-ops.
• set_direction only turns the snake. Nothing moves until the next tick.
  Reversing straight into your own neck on a snake of length 2 or more is
  fatal on the following tick.

BOARD LEGEND:
• @ - Snake head
• o - Snake body
• * - Food
• . - Empty cell

AI MOVES:
The ai_move tool uses a greedy heuristic: among the directions that do not
immediately hit a wall or the body, it picks the one whose next cell is
closest to the food (evaluation order: up, down, left, right). If every
direction is fatal, it keeps the current direction and the next tick ends
the game. The heuristic does not plan ahead, so it can trap itself inside
its own body on longer snakes.

LEADERBOARD:
Scores submitted via submit_score are ranked descending. Only the top 10
are kept; earlier submissions win ties.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique UUID
- Sessions maintain independent state and configuration
- All tools except leaderboard and list_configs take a session_id

TYPICAL FLOW:
1. create_session (optionally with config_id)
2. set_direction + tick, or ai_move, repeatedly
3. When game_over, submit_score and reset_game to play again`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	head := state.Head()
	result.WriteString(fmt.Sprintf("Head: (%d,%d) | Length: %d | Direction: %s | Score: %d\n",
		head.X, head.Y, len(state.Snake), state.Direction, state.Score))
	result.WriteString(fmt.Sprintf("Food: (%d,%d) | Board: %dx%d\n\n",
		state.Food.X, state.Food.Y, state.Width, state.Height))

	// Body cells for O(1) lookup while rendering
	body := make(map[engine.Point]bool, len(state.Snake))
	for _, p := range state.Snake[1:] {
		body[p] = true
	}

	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := engine.Point{X: x, Y: y}
			switch {
			case p == head:
				result.WriteString("@")
			case body[p]:
				result.WriteString("o")
			case p == state.Food:
				result.WriteString("*")
			default:
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
	}

	if state.GameOver {
		result.WriteString("\nGAME OVER")
	}

	return result.String()
}
