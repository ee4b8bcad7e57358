package engine

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
)

// CanonicalString renders the state as a deterministic string: players in
// list order, zones in canonical order, zone markers in player-list order.
// Map iteration order never leaks into the output.
func CanonicalString(gs *GameState) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%d|%d|%s\n", gs.Turn, gs.CurrentPlayer, gs.ActiveEvent)

	for _, p := range gs.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%s|%s|%d|%d|%d|%d|%d|%d|%d|%t|%t\n",
			p.Name,
			p.Avatar,
			p.Position,
			p.Resources.Energy,
			p.Resources.Insight,
			p.Resources.Sincerity,
			p.InfluencePool,
			p.Balance.Yin,
			p.Balance.Yang,
			len(p.Hand),
			p.PlacedInfluenceThisTurn,
			p.UsedFreeStudy,
		)
		for _, card := range p.Hand {
			fmt.Fprintf(&buf, "CARD:%s\n", card.Name)
		}
	}

	for _, zone := range board.AllZones {
		fmt.Fprintf(&buf, "ZONE:%s|%s", zone, gs.Board.Controller(zone))
		for _, p := range gs.Players {
			fmt.Fprintf(&buf, "|%s=%d", p.Name, gs.Board.Markers(zone, p.Name))
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}

// Checksum computes a SHA-256 hex digest of the canonical rendering. Used to
// detect divergent states across batch simulation runs.
func Checksum(gs *GameState) string {
	sum := sha256.Sum256([]byte(CanonicalString(gs)))
	return hex.EncodeToString(sum[:])
}
