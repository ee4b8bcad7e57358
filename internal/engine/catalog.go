package engine

import (
	"fmt"

	"github.com/tianjibian/tianji-server-go/internal/engine/resources"
)

// ActionKind is the tagged variant over the engine's action space. Game
// actions mutate state; menu actions are informational hooks for the
// presentation layer and never change gameplay state.
type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionPlayCard
	ActionMove
	ActionStudy
	ActionMeditate
	ActionTransform
	ActionDivine
	ActionConsult

	MenuWisdomProgress
	MenuTutorial
	MenuLearningProgress
	MenuAchievements
)

var actionKindNames = map[ActionKind]string{
	ActionPass:           "PASS",
	ActionPlayCard:       "PLAY_CARD",
	ActionMove:           "MOVE",
	ActionStudy:          "STUDY",
	ActionMeditate:       "MEDITATE",
	ActionTransform:      "TRANSFORM",
	ActionDivine:         "DIVINE",
	ActionConsult:        "CONSULT",
	MenuWisdomProgress:   "MENU_WISDOM_PROGRESS",
	MenuTutorial:         "MENU_TUTORIAL",
	MenuLearningProgress: "MENU_LEARNING_PROGRESS",
	MenuAchievements:     "MENU_ACHIEVEMENTS",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ACTION_%d", int(k))
}

// IsMenu reports whether the kind is an informational menu action.
func (k ActionKind) IsMenu() bool {
	return k >= MenuWisdomProgress
}

// ActionDescriptor is one catalog entry: a kind, its AP cost, and the
// arguments the resolver needs.
type ActionDescriptor struct {
	Kind        ActionKind
	Cost        int
	Description string

	// Arguments, populated per kind.
	CardIndex int
	Zone      string // play-card target zone
	Target    Location
	Template  string // transform template name
}

// Resource gates for the stochastic actions.
const (
	transformSincerityGate = 3
	divineEnergyGate       = 3
	consultInsightGate     = 2
)

// ValidActions enumerates the legal actions for player given remaining AP and
// the current modifiers. Ids are assigned in a fixed enumeration order, so the
// same inputs always produce the same mapping. The numbering is cosmetic;
// semantics live entirely in the descriptors.
func ValidActions(gs *GameState, player *Player, ap int, mods ModifierSet) map[int]ActionDescriptor {
	actions := make(map[int]ActionDescriptor)
	id := 1
	add := func(d ActionDescriptor) {
		actions[id] = d
		id++
	}

	add(ActionDescriptor{Kind: ActionPass, Cost: 0, Description: "Pass turn"})

	if ap >= 1 {
		for i, card := range player.Hand {
			for _, zone := range card.Zones {
				add(ActionDescriptor{
					Kind:        ActionPlayCard,
					Cost:        1,
					Description: fmt.Sprintf("Play %s to %s", card.Name, zone),
					CardIndex:   i,
					Zone:        string(zone),
				})
			}
		}
	}

	if ap >= 1 && player.Resources.CanAfford(resources.Energy, mods.MoveCost()) {
		for _, loc := range AllLocations {
			if loc == player.Position {
				continue
			}
			add(ActionDescriptor{
				Kind:        ActionMove,
				Cost:        1,
				Description: fmt.Sprintf("Move to %s", loc),
				Target:      loc,
			})
		}
	}

	if ap >= 1 {
		studyCost := 1
		if mods.FreeStudy && !player.UsedFreeStudy {
			studyCost = 0
		}
		add(ActionDescriptor{Kind: ActionStudy, Cost: studyCost, Description: "Study (draw cards, gain wisdom)"})
		add(ActionDescriptor{Kind: ActionMeditate, Cost: 1, Description: "Meditate (cultivate qi, balance yin-yang)"})
	}

	if ap >= 1 && player.Resources.CanAfford(resources.Sincerity, transformSincerityGate) {
		for _, tmpl := range transformTemplates {
			if tmpl.affordable(player) {
				add(ActionDescriptor{
					Kind:        ActionTransform,
					Cost:        1,
					Description: fmt.Sprintf("Biangua %s (risk %s)", tmpl.Name, tmpl.Risk),
					Template:    tmpl.Name,
				})
			}
		}
	}

	if ap >= 1 && player.Resources.CanAfford(resources.Energy, divineEnergyGate) {
		add(ActionDescriptor{Kind: ActionDivine, Cost: 1, Description: "Divine fortune"})
	}

	if ap >= 1 && player.Resources.CanAfford(resources.Insight, consultInsightGate) {
		add(ActionDescriptor{Kind: ActionConsult, Cost: 1, Description: "Consult the Yijing"})
	}

	add(ActionDescriptor{Kind: MenuWisdomProgress, Cost: 0, Description: "View wisdom progress"})
	add(ActionDescriptor{Kind: MenuTutorial, Cost: 0, Description: "Tutorial menu"})
	add(ActionDescriptor{Kind: MenuLearningProgress, Cost: 0, Description: "Learning progress"})
	add(ActionDescriptor{Kind: MenuAchievements, Cost: 0, Description: "Achievement progress"})

	return actions
}
