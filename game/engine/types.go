package engine

// Direction represents the snake's current heading
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// Validation constants
	MinBoardSize        = 2
	MaxBoardSize        = 100
	DefaultBoardWidth   = 20
	DefaultBoardHeight  = 20
	MaxFoodAttempts     = 1000
	MaxAIMoves          = 100
	WebSocketBufferSize = 256
)

// Directions lists all headings in their canonical evaluation order.
// The AI heuristic depends on this order for its tie-break.
var Directions = [4]Direction{Up, Down, Left, Right}

// Point represents x,y coordinates on the board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the point one cell away from p in direction d.
func (d Direction) Offset(p Point) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: p.Y - 1}
	case Down:
		return Point{X: p.X, Y: p.Y + 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// ParseDirection converts a wire tag into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), true
	}
	return "", false
}

// GameConfig represents a board configuration loaded from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// GameState represents the complete simulation state.
//
// The field names and the head-first ordering of Snake are part of the wire
// contract with the browser client and must not change.
type GameState struct {
	Snake     []Point   `json:"snake"` // head at index 0, tail at the end
	Food      Point     `json:"food"`
	Direction Direction `json:"direction"`
	Score     int       `json:"score"`
	GameOver  bool      `json:"game_over"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

// Head returns the snake's head segment. The snake is never empty.
func (gs *GameState) Head() Point {
	return gs.Snake[0]
}

// InBounds reports whether p lies inside [0,width) x [0,height).
func (gs *GameState) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gs.Width && p.Y >= 0 && p.Y < gs.Height
}

// OnSnake reports whether p is occupied by any body segment.
func (gs *GameState) OnSnake(p Point) bool {
	for _, seg := range gs.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state. Transports serialize clones so a
// concurrent tick cannot mutate the body slice mid-encode.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.Snake = make([]Point, len(gs.Snake))
	copy(c.Snake, gs.Snake)
	return &c
}
