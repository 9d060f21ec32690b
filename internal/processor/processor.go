package processor

import (
	"errors"
	"strings"
	"unicode"

	"chessrules/internal/core"
	"chessrules/internal/service"
)

// Processor validates commands and translates service results into API
// responses.
type Processor struct {
	svc *service.Service
}

// New creates a processor backed by svc
func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdPossibleMoves:
		return p.handlePossibleMoves(cmd)
	case CmdPromote:
		return p.handlePromote(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	default:
		return p.errorResponse("unknown command", core.CodeInvalidRequest, "")
	}
}

// hasControlChars rejects input that could corrupt logs or stored rows
func hasControlChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsControl(r)
	})
}

func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.CodeInvalidRequest, "")
	}

	if hasControlChars(args.FEN) {
		return p.errorResponse("invalid FEN characters", core.CodeInvalidFEN, "")
	}

	mode, err := core.ParseCheckMode(args.CheckMode)
	if err != nil {
		return p.errorResponse("invalid check mode", core.CodeInvalidRequest, err.Error())
	}

	v, err := p.svc.CreateGame(strings.TrimSpace(args.FEN), mode)
	if err != nil {
		return p.failure(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(v),
	}
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	v, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.failure(err)
	}
	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(v),
	}
}

func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.CodeInvalidRequest, "")
	}

	v, err := p.svc.MakeMove(cmd.GameID, strings.TrimSpace(args.From), strings.TrimSpace(args.To))
	if err != nil {
		return p.failure(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(v),
	}
}

func (p *Processor) handlePossibleMoves(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(MovesArgs)
	if !ok {
		return p.errorResponse("invalid arguments", core.CodeInvalidRequest, "")
	}

	moves, err := p.svc.PossibleMoves(cmd.GameID, args.Square, args.Legal)
	if err != nil {
		return p.failure(err)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.MovesResponse{
			Square: strings.ToLower(args.Square),
			Legal:  args.Legal,
			Moves:  moves,
		},
	}
}

func (p *Processor) handlePromote(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.PromotionRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.CodeInvalidRequest, "")
	}

	pieceType, err := core.ParsePieceType(args.Piece)
	if err != nil {
		return p.errorResponse("invalid piece type", core.CodeInvalidRequest, err.Error())
	}

	v, err := p.svc.Promote(cmd.GameID, args.Square, pieceType)
	if err != nil {
		return p.failure(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(v),
	}
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.failure(err)
	}
	return ProcessorResponse{
		Success: true,
	}
}

// handleGetBoard returns board visualization
func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	v, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.failure(err)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			FEN:   v.FEN,
			Board: v.Board.ToASCII(),
		},
	}
}

// buildGameResponse constructs standard game response
func buildGameResponse(v service.GameView) core.GameResponse {
	resp := core.GameResponse{
		GameID:    v.ID,
		FEN:       v.FEN,
		Turn:      v.Turn.String(),
		State:     v.State.String(),
		CheckMode: v.CheckMode.String(),
		MoveCount: v.MoveCount,
	}

	if v.LastMove != nil {
		resp.LastMove = &core.MoveInfo{
			From:        v.LastMove.From.String(),
			To:          v.LastMove.To.String(),
			PlayerColor: v.LastMove.Player.String(),
		}
	}

	return resp
}

// failure maps a service error to its API code. The wrapped rejection kind
// becomes the message and the full error text the details.
func (p *Processor) failure(err error) ProcessorResponse {
	msg := err.Error()
	if kind := errors.Unwrap(err); kind != nil {
		for errors.Unwrap(kind) != nil {
			kind = errors.Unwrap(kind)
		}
		msg = kind.Error()
	}
	return p.errorResponse(msg, core.ErrorCode(err), err.Error())
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code, details string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error:   message,
			Code:    code,
			Details: details,
		},
	}
}
