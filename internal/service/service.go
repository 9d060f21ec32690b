package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/game"
	"chessrules/internal/storage"

	"github.com/google/uuid"
)

// Service owns every live game and serializes access to them, with optional
// persistence of a per-game summary.
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	store  *storage.Store // nil if persistence disabled
	waiter *WaitRegistry
}

// GameView is a consistent copy of a game's observable state
type GameView struct {
	ID        string
	FEN       string
	Board     board.Board
	Turn      core.Color
	State     core.GameState
	CheckMode core.CheckMode
	MoveCount int
	LastMove  *game.Move
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		store:  store,
		waiter: NewWaitRegistry(),
	}
}

// CreateGame starts a game from fen, or the standard position when fen is
// empty, and returns its view.
func (s *Service) CreateGame(fen string, mode core.CheckMode) (GameView, error) {
	var (
		g   *game.Game
		err error
	)
	if fen == "" {
		g = game.New(game.WithCheckMode(mode))
	} else if g, err = game.FromFEN(fen, game.WithCheckMode(mode)); err != nil {
		return GameView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateGameID()
	s.games[id] = g

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:     id,
			CheckMode:  mode.String(),
			InitialFEN: g.FEN(),
			State:      g.State().String(),
			Turn:       g.Turn().String(),
			CreatedUTC: time.Now().UTC(),
		})
	}

	return view(id, g), nil
}

// generateGameID creates a new unique game ID. Caller holds the lock.
func (s *Service) generateGameID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GetGame retrieves a view of a game by ID
func (s *Service) GetGame(gameID string) (GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return GameView{}, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}
	return view(gameID, g), nil
}

// MakeMove applies a move and notifies long-polling clients. Rejections are
// logged and returned unchanged.
func (s *Service) MakeMove(gameID, from, to string) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return GameView{}, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	if _, err := g.MakeMove(from, to); err != nil {
		log.Printf("Game %s: %v", gameID, err)
		return view(gameID, g), err
	}

	s.waiter.NotifyGame(gameID, g.MoveCount())

	if s.store != nil {
		s.store.UpdateGame(gameID, g.State().String(), g.Turn().String(), g.MoveCount(), time.Now().UTC())
	}

	return view(gameID, g), nil
}

// PossibleMoves lists destinations from square. With legal set, moves that
// fail the game's self-check test are removed.
func (s *Service) PossibleMoves(gameID, square string, legal bool) ([]string, error) {
	if legal {
		// Legal move filtering applies moves to the board and reverts them.
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	if legal {
		return g.LegalMoves(square)
	}
	return g.PossibleMoves(square)
}

// Promote changes the type of the piece on square, keeping its color
func (s *Service) Promote(gameID, square string, pieceType core.PieceType) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return GameView{}, fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	if err := g.SetPromotion(square, pieceType); err != nil {
		return view(gameID, g), err
	}
	return view(gameID, g), nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", core.ErrGameNotFound, gameID)
	}

	// Release waiters before the game disappears
	s.waiter.RemoveGame(gameID)

	delete(s.games, gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// RegisterWait registers a client to wait for game state changes. The
// returned channel is already signalled when the game is gone or its move
// count no longer matches moveCount. The read lock keeps a concurrent
// MakeMove from notifying between the check and the registration.
func (s *Service) RegisterWait(ctx context.Context, gameID string, moveCount int) <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok || g.MoveCount() != moveCount {
		return signalled()
	}
	return s.waiter.RegisterWait(ctx, gameID, moveCount)
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Shutdown releases waiters, drops all games and closes storage
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error
	if err := s.waiter.Shutdown(timeout); err != nil {
		errs = append(errs, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage close: %w", err))
		}
	}

	return errors.Join(errs...)
}

func view(id string, g *game.Game) GameView {
	v := GameView{
		ID:        id,
		FEN:       g.FEN(),
		Board:     g.Board(),
		Turn:      g.Turn(),
		State:     g.State(),
		CheckMode: g.CheckMode(),
		MoveCount: g.MoveCount(),
	}
	if m, ok := g.LastMove(); ok {
		v.LastMove = &m
	}
	return v
}
