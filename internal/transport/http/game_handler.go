package http

import (
	"context"
	"strconv"

	"chessrules/internal/core"
	"chessrules/internal/processor"
	"chessrules/internal/service"

	"github.com/gofiber/fiber/v2"
)

var errInvalidGameID = core.ErrorResponse{
	Error:   "invalid game ID format",
	Code:    core.CodeInvalidRequest,
	Details: "game ID must be a valid UUID",
}

var errValidationBypass = core.ErrorResponse{
	Error: "validation data missing",
	Code:  core.CodeInternalError,
}

// respond writes a processor result as JSON with the given success status
func respond(c *fiber.Ctx, resp processor.ProcessorResponse, okStatus int) error {
	if !resp.Success {
		return c.Status(statusFor(resp.Error)).JSON(resp.Error)
	}
	if resp.Data == nil {
		return c.SendStatus(okStatus)
	}
	return c.Status(okStatus).JSON(resp.Data)
}

// CreateGame starts a game from the standard position or a FEN
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := validatedBody[core.CreateGameRequest](c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(errValidationBypass)
	}

	resp := h.proc.Execute(processor.NewCreateGameCommand(req))
	return respond(c, resp, fiber.StatusCreated)
}

// GetGame retrieves current game state. With wait=true the request blocks
// until the move count differs from moveCount or the wait times out.
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	if c.Query("wait", "false") != "true" {
		return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
	}

	moveCount, err := strconv.Atoi(c.Query("moveCount", "-1"))
	if err != nil {
		moveCount = -1
	}

	v, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "game not found",
			Code:  core.CodeGameNotFound,
		})
	}

	// Already stale, answer immediately
	if moveCount != v.MoveCount {
		return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
	}

	ctx, cancel := context.WithTimeout(context.Background(), service.WaitTimeout)
	defer cancel()
	notify := h.svc.RegisterWait(ctx, gameID, moveCount)

	select {
	case <-notify:
	case <-ctx.Done():
	}

	// The game may have been deleted while waiting
	return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
}

// MakeMove submits a move given as from/to squares
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	req, ok := validatedBody[core.MoveRequest](c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(errValidationBypass)
	}

	resp := h.proc.Execute(processor.NewMakeMoveCommand(gameID, req))
	return respond(c, resp, fiber.StatusOK)
}

// GetMoves lists destinations for the piece on a square. legal=true removes
// moves that fail the self-check test.
func (h *HTTPHandler) GetMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	legal := c.QueryBool("legal", false)
	resp := h.proc.Execute(processor.NewPossibleMovesCommand(gameID, c.Params("square"), legal))
	return respond(c, resp, fiber.StatusOK)
}

// Promote replaces the piece type on a square
func (h *HTTPHandler) Promote(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	req, ok := validatedBody[core.PromotionRequest](c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(errValidationBypass)
	}

	resp := h.proc.Execute(processor.NewPromoteCommand(gameID, req))
	return respond(c, resp, fiber.StatusOK)
}

// DeleteGame removes a game and releases its waiters
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	return respond(c, h.proc.Execute(processor.NewDeleteGameCommand(gameID)), fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidGameID)
	}

	return respond(c, h.proc.Execute(processor.NewGetBoardCommand(gameID)), fiber.StatusOK)
}
