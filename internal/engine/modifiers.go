package engine

import "github.com/tianjibian/tianji-server-go/internal/engine/board"

// BonusType is the kind of bonus a controlled zone grants.
type BonusType int

const (
	BonusExtraAP BonusType = iota
	BonusHandLimit
	BonusExtraInfluence
	BonusQiDiscount
	BonusFreeStudy
	BonusInsightOnTask
)

// zoneBonuses is the static zone → bonus table. Eight zones over six bonus
// types, so two types repeat; repeats stack additively like everything else.
var zoneBonuses = map[board.ZoneName]BonusType{
	board.ZoneQian: BonusExtraAP,
	board.ZoneKun:  BonusHandLimit,
	board.ZoneZhen: BonusExtraAP,
	board.ZoneXun:  BonusQiDiscount,
	board.ZoneKan:  BonusFreeStudy,
	board.ZoneLi:   BonusInsightOnTask,
	board.ZoneGen:  BonusHandLimit,
	board.ZoneDui:  BonusExtraInfluence,
}

// ModifierSet is the per-turn bundle of bonuses derived from zone control.
// It is a pure derived value with no identity of its own: recompute it from
// the board whenever the board may have changed.
type ModifierSet struct {
	ExtraAP        int
	HandLimitBonus int
	ExtraInfluence int
	QiDiscount     int
	FreeStudy      bool
	InsightOnTask  int

	// ExtraDraw feeds study's draw count on top of the base 2. No zone grants
	// it in the reference table; stricter variants hook avatars or events in
	// here.
	ExtraDraw int
}

// MoveCost returns the energy cost of a move under these modifiers,
// floor-clamped at zero.
func (m ModifierSet) MoveCost() int {
	cost := 1 - m.QiDiscount
	if cost < 0 {
		return 0
	}
	return cost
}

// ComputeModifiers derives the modifier set for player from the zones they
// currently control. Multiple qualifying zones stack additively with no caps.
func ComputeModifiers(gs *GameState, player *Player) ModifierSet {
	var mods ModifierSet
	for _, zone := range gs.Board.ControlledBy(player.Name) {
		switch zoneBonuses[zone] {
		case BonusExtraAP:
			mods.ExtraAP++
		case BonusHandLimit:
			mods.HandLimitBonus += 2
		case BonusExtraInfluence:
			mods.ExtraInfluence++
		case BonusQiDiscount:
			mods.QiDiscount++
		case BonusFreeStudy:
			mods.FreeStudy = true
		case BonusInsightOnTask:
			mods.InsightOnTask++
		}
	}
	return mods
}
