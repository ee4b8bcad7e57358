package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tianjibian/tianji-server-go/internal/engine"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS game_results (
    id           BIGSERIAL PRIMARY KEY,
    game_id      TEXT NOT NULL,
    winner       TEXT NOT NULL DEFAULT '',
    victory_type TEXT NOT NULL,
    resource     TEXT NOT NULL DEFAULT '',
    turns        INT NOT NULL,
    players      JSONB NOT NULL DEFAULT '[]',
    finished_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_game_results_finished_at ON game_results (finished_at DESC);
`

// PlayerSummary is a player's final standing in a finished game.
type PlayerSummary struct {
	Name      string `json:"name"`
	Energy    int    `json:"energy"`
	Insight   int    `json:"insight"`
	Sincerity int    `json:"sincerity"`
}

// GameResult is one persisted terminal verdict.
type GameResult struct {
	GameID      string
	Winner      string
	VictoryType string
	Resource    string
	Turns       int
	Players     []PlayerSummary
	FinishedAt  time.Time
}

// ResultRepository stores finished-game verdicts.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates the repository and ensures the schema exists.
func NewResultRepository(ctx context.Context, pool *pgxpool.Pool) (*ResultRepository, error) {
	if _, err := pool.Exec(ctx, resultsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure results schema: %w", err)
	}
	return &ResultRepository{pool: pool}, nil
}

// SaveResult records a terminal verdict together with each player's final
// standing.
func (r *ResultRepository) SaveResult(ctx context.Context, gameID string, final engine.StateView, verdict *engine.VictoryResult) error {
	summaries := make([]PlayerSummary, len(final.Players))
	for i, p := range final.Players {
		summaries[i] = PlayerSummary{
			Name:      p.Name,
			Energy:    p.Energy,
			Insight:   p.Insight,
			Sincerity: p.Sincerity,
		}
	}
	players, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal player summaries: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO game_results (game_id, winner, victory_type, resource, turns, players)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		gameID, verdict.Winner, string(verdict.Type), string(verdict.Resource), final.Turn, players,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}
	return nil
}

// Recent returns the most recently finished games, newest first.
func (r *ResultRepository) Recent(ctx context.Context, limit int) ([]GameResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT game_id, winner, victory_type, resource, turns, players, finished_at
		 FROM game_results ORDER BY finished_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var gr GameResult
		var players []byte
		if err := rows.Scan(&gr.GameID, &gr.Winner, &gr.VictoryType, &gr.Resource, &gr.Turns, &players, &gr.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		if err := json.Unmarshal(players, &gr.Players); err != nil {
			return nil, fmt.Errorf("failed to decode player summaries: %w", err)
		}
		results = append(results, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game results: %w", err)
	}
	return results, nil
}
