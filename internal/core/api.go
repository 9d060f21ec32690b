package core

// Request types

type CreateGameRequest struct {
	FEN       string `json:"fen,omitempty" validate:"omitempty,max=100"`
	CheckMode string `json:"checkMode,omitempty" validate:"omitempty,oneof=legacy strict"`
}

type MoveRequest struct {
	From string `json:"from" validate:"required,len=2"`
	To   string `json:"to" validate:"required,len=2"`
}

type PromotionRequest struct {
	Square string `json:"square" validate:"required,len=2"`
	Piece  string `json:"piece" validate:"required,min=1,max=6"`
}

// Response types

type GameResponse struct {
	GameID    string    `json:"gameId"`
	FEN       string    `json:"fen"`
	Turn      string    `json:"turn"`  // "w" or "b"
	State     string    `json:"state"` // "in_progress", "check", "game_over"
	CheckMode string    `json:"checkMode"`
	MoveCount int       `json:"moveCount"`
	LastMove  *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	From        string `json:"from"`
	To          string `json:"to"`
	PlayerColor string `json:"playerColor"` // "w" or "b"
}

type MovesResponse struct {
	Square string   `json:"square"`
	Legal  bool     `json:"legal"`
	Moves  []string `json:"moves"`
}

type BoardResponse struct {
	FEN   string `json:"fen"`
	Board string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeNoPiece           = "NO_PIECE"
	CodeWrongColor        = "WRONG_COLOR"
	CodeIllegalMove       = "ILLEGAL_MOVE"
	CodeSelfCheck         = "SELF_CHECK"
	CodeInvalidNotation   = "INVALID_NOTATION"
	CodeGameOver          = "GAME_OVER"
	CodeInvalidFEN        = "INVALID_FEN"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInvalidContent    = "INVALID_CONTENT_TYPE"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInternalError     = "INTERNAL_ERROR"
)
