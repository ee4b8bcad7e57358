package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(actions map[int]ActionDescriptor) map[ActionKind]int {
	counts := make(map[ActionKind]int)
	for _, a := range actions {
		counts[a.Kind]++
	}
	return counts
}

func TestCatalogAlwaysOffersPassAndMenus(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))

	actions := ValidActions(gs, p, 0, ModifierSet{})
	counts := kinds(actions)

	assert.Equal(t, 1, counts[ActionPass])
	assert.Equal(t, 1, counts[MenuWisdomProgress])
	assert.Equal(t, 1, counts[MenuTutorial])
	assert.Equal(t, 1, counts[MenuLearningProgress])
	assert.Equal(t, 1, counts[MenuAchievements])

	// With zero AP nothing else is offered.
	assert.Len(t, actions, 5)
}

func TestCatalogPlayCardPerZoneTag(t *testing.T) {
	p := testPlayer("A", 5, 0, 0)
	p.Hand = []Card{cardNamed("乾为天"), cardNamed("水火既济")}
	gs := testState(p, testPlayer("B", 0, 0, 0))

	actions := ValidActions(gs, p, 2, ModifierSet{})

	// One entry for the single-zone card, two for the two-zone card.
	assert.Equal(t, 3, kinds(actions)[ActionPlayCard])
}

func TestCatalogMoveRequiresEnergy(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))

	// energy=0, qi_discount=0: move must never be offered.
	actions := ValidActions(gs, p, 2, ModifierSet{})
	assert.Zero(t, kinds(actions)[ActionMove])

	// A full discount floors the cost at zero, so moves come back.
	actions = ValidActions(gs, p, 2, ModifierSet{QiDiscount: 1})
	assert.Equal(t, len(AllLocations)-1, kinds(actions)[ActionMove])
}

func TestCatalogMoveExcludesCurrentLocation(t *testing.T) {
	p := testPlayer("A", 5, 0, 0)
	p.Position = LocationTian
	gs := testState(p, testPlayer("B", 0, 0, 0))

	for _, a := range ValidActions(gs, p, 2, ModifierSet{}) {
		if a.Kind == ActionMove {
			assert.NotEqual(t, LocationTian, a.Target)
		}
	}
}

func TestCatalogGatedActions(t *testing.T) {
	tests := []struct {
		name      string
		energy    int
		insight   int
		sincerity int
		kind      ActionKind
		offered   bool
	}{
		{"transform below sincerity gate", 9, 9, 2, ActionTransform, false},
		{"transform at sincerity gate", 9, 9, 3, ActionTransform, true},
		{"divine below energy gate", 2, 0, 0, ActionDivine, false},
		{"divine at energy gate", 3, 0, 0, ActionDivine, true},
		{"consult below insight gate", 0, 1, 0, ActionConsult, false},
		{"consult at insight gate", 0, 2, 0, ActionConsult, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer("A", tt.energy, tt.insight, tt.sincerity)
			gs := testState(p, testPlayer("B", 0, 0, 0))
			offered := kinds(ValidActions(gs, p, 2, ModifierSet{}))[tt.kind] > 0
			assert.Equal(t, tt.offered, offered)
		})
	}
}

func TestCatalogTransformOnlyAffordableTemplates(t *testing.T) {
	// Sincerity gate met, but only templates whose costs fit are offered.
	p := testPlayer("A", 2, 0, 3)
	gs := testState(p, testPlayer("B", 0, 0, 0))

	for _, a := range ValidActions(gs, p, 2, ModifierSet{}) {
		if a.Kind != ActionTransform {
			continue
		}
		tmpl, ok := templateByName(a.Template)
		require.True(t, ok)
		assert.LessOrEqual(t, tmpl.CostEnergy, 2)
		assert.LessOrEqual(t, tmpl.CostInsight, 0)
	}
}

func TestCatalogFreeStudyCost(t *testing.T) {
	p := testPlayer("A", 0, 0, 0)
	gs := testState(p, testPlayer("B", 0, 0, 0))

	findStudy := func(actions map[int]ActionDescriptor) ActionDescriptor {
		for _, a := range actions {
			if a.Kind == ActionStudy {
				return a
			}
		}
		t.Fatal("study not offered")
		return ActionDescriptor{}
	}

	assert.Equal(t, 1, findStudy(ValidActions(gs, p, 2, ModifierSet{})).Cost)
	assert.Equal(t, 0, findStudy(ValidActions(gs, p, 2, ModifierSet{FreeStudy: true})).Cost)

	p.UsedFreeStudy = true
	assert.Equal(t, 1, findStudy(ValidActions(gs, p, 2, ModifierSet{FreeStudy: true})).Cost)
}

func TestCatalogDeterministic(t *testing.T) {
	p := testPlayer("A", 8, 3, 3)
	p.Hand = []Card{cardNamed("坎为水"), cardNamed("天地否")}
	gs := testState(p, testPlayer("B", 0, 0, 0))
	mods := ModifierSet{QiDiscount: 1, ExtraInfluence: 1}

	first := ValidActions(gs, p, 2, mods)
	second := ValidActions(gs, p, 2, mods)
	assert.Equal(t, first, second)
}

func TestCatalogNeverOffersUnaffordableResolution(t *testing.T) {
	// Property: resolving any offered game action never trips a resource
	// precondition.
	p := testPlayer("A", 1, 2, 3)
	p.Hand = []Card{cardNamed("兑为泽")}
	gs := testState(p, testPlayer("B", 0, 0, 0))
	mods := ComputeModifiers(gs, p)

	for id := range ValidActions(gs, p, 2, mods) {
		action := ValidActions(gs, p, 2, mods)[id]
		_, err := ResolveAction(gs, "A", action, mods, testRNG())
		if err != nil {
			assert.False(t, IsInsufficientResource(err),
				"catalog offered %s but resolution failed on resources: %v", action.Kind, err)
		}
	}
}
