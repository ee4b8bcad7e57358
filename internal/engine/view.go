package engine

import "github.com/tianjibian/tianji-server-go/internal/engine/board"

// View structs are the JSON shape handed to presentation clients. They carry
// no engine invariants; everything here is derived.

type StateView struct {
	Turn          int          `json:"turn"`
	CurrentPlayer string       `json:"current_player"`
	ActiveEvent   string       `json:"active_event,omitempty"`
	Players       []PlayerView `json:"players"`
	Zones         []ZoneView   `json:"zones"`
	Checksum      string       `json:"checksum"`
}

type PlayerView struct {
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar"`
	Position      string     `json:"position"`
	Energy        int        `json:"energy"`
	Insight       int        `json:"insight"`
	Sincerity     int        `json:"sincerity"`
	InfluencePool int        `json:"influence_pool"`
	Yin           int        `json:"yin"`
	Yang          int        `json:"yang"`
	Hand          []CardView `json:"hand"`
}

type CardView struct {
	Name     string   `json:"name"`
	Zones    []string `json:"zones"`
	Rarity   string   `json:"rarity"`
	Polarity string   `json:"polarity"`
}

type ZoneView struct {
	Name       string         `json:"name"`
	Controller string         `json:"controller,omitempty"`
	Markers    map[string]int `json:"markers"`
}

type ActionView struct {
	ID          int    `json:"id"`
	Kind        string `json:"kind"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
	Menu        bool   `json:"menu"`
}

// ToView renders the state for clients.
func ToView(gs *GameState) StateView {
	players := make([]PlayerView, len(gs.Players))
	for i, p := range gs.Players {
		hand := make([]CardView, len(p.Hand))
		for j, c := range p.Hand {
			zones := make([]string, len(c.Zones))
			for k, z := range c.Zones {
				zones[k] = string(z)
			}
			hand[j] = CardView{
				Name:     c.Name,
				Zones:    zones,
				Rarity:   string(c.Rarity),
				Polarity: c.Polarity.String(),
			}
		}
		players[i] = PlayerView{
			Name:          p.Name,
			Avatar:        string(p.Avatar),
			Position:      string(p.Position),
			Energy:        p.Resources.Energy,
			Insight:       p.Resources.Insight,
			Sincerity:     p.Resources.Sincerity,
			InfluencePool: p.InfluencePool,
			Yin:           p.Balance.Yin,
			Yang:          p.Balance.Yang,
			Hand:          hand,
		}
	}

	zones := make([]ZoneView, 0, len(board.AllZones))
	for _, name := range board.AllZones {
		zones = append(zones, ZoneView{
			Name:       string(name),
			Controller: gs.Board.Controller(name),
			Markers:    gs.Board.ZoneMarkers(name),
		})
	}

	return StateView{
		Turn:          gs.Turn,
		CurrentPlayer: gs.Current().Name,
		ActiveEvent:   gs.ActiveEvent,
		Players:       players,
		Zones:         zones,
		Checksum:      Checksum(gs),
	}
}

// ActionsToView renders a catalog for clients, ids in ascending order.
func ActionsToView(actions map[int]ActionDescriptor) []ActionView {
	views := make([]ActionView, 0, len(actions))
	for id := 1; id <= len(actions); id++ {
		action, ok := actions[id]
		if !ok {
			continue
		}
		views = append(views, ActionView{
			ID:          id,
			Kind:        action.Kind.String(),
			Cost:        action.Cost,
			Description: action.Description,
			Menu:        action.Kind.IsMenu(),
		})
	}
	return views
}
