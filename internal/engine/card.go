package engine

import (
	"math/rand"

	"github.com/tianjibian/tianji-server-go/internal/engine/board"
)

// Polarity is a card's yin/yang aspect. Playing a card accrues a balance
// point on the matching side.
type Polarity int

const (
	Yin Polarity = iota
	Yang
)

func (p Polarity) String() string {
	if p == Yang {
		return "阳"
	}
	return "阴"
}

// Rarity tags a card template.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
)

// Card is an immutable template. Cards are drawn from the shared pool by
// value, not by instance id; duplicates in a hand are legal.
type Card struct {
	Name     string
	Zones    []board.ZoneName
	Rarity   Rarity
	Polarity Polarity
}

// SupportsZone reports whether the card can be played into the given zone.
func (c Card) SupportsZone(zone board.ZoneName) bool {
	for _, z := range c.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// cardPool is the shared card pool: one pure card per trigram plus paired
// cards spanning complementary trigrams.
var cardPool = []Card{
	{Name: "乾为天", Zones: []board.ZoneName{board.ZoneQian}, Rarity: RarityRare, Polarity: Yang},
	{Name: "坤为地", Zones: []board.ZoneName{board.ZoneKun}, Rarity: RarityRare, Polarity: Yin},
	{Name: "震为雷", Zones: []board.ZoneName{board.ZoneZhen}, Rarity: RarityCommon, Polarity: Yang},
	{Name: "巽为风", Zones: []board.ZoneName{board.ZoneXun}, Rarity: RarityCommon, Polarity: Yin},
	{Name: "坎为水", Zones: []board.ZoneName{board.ZoneKan}, Rarity: RarityCommon, Polarity: Yang},
	{Name: "离为火", Zones: []board.ZoneName{board.ZoneLi}, Rarity: RarityCommon, Polarity: Yin},
	{Name: "艮为山", Zones: []board.ZoneName{board.ZoneGen}, Rarity: RarityCommon, Polarity: Yang},
	{Name: "兑为泽", Zones: []board.ZoneName{board.ZoneDui}, Rarity: RarityCommon, Polarity: Yin},
	{Name: "天地否", Zones: []board.ZoneName{board.ZoneQian, board.ZoneKun}, Rarity: RarityCommon, Polarity: Yang},
	{Name: "地天泰", Zones: []board.ZoneName{board.ZoneKun, board.ZoneQian}, Rarity: RarityCommon, Polarity: Yin},
	{Name: "水火既济", Zones: []board.ZoneName{board.ZoneKan, board.ZoneLi}, Rarity: RarityRare, Polarity: Yang},
	{Name: "火水未济", Zones: []board.ZoneName{board.ZoneLi, board.ZoneKan}, Rarity: RarityRare, Polarity: Yin},
	{Name: "雷风恒", Zones: []board.ZoneName{board.ZoneZhen, board.ZoneXun}, Rarity: RarityCommon, Polarity: Yang},
	{Name: "山泽损", Zones: []board.ZoneName{board.ZoneGen, board.ZoneDui}, Rarity: RarityCommon, Polarity: Yin},
}

// CardPool returns a copy of the shared pool.
func CardPool() []Card {
	pool := make([]Card, len(cardPool))
	copy(pool, cardPool)
	return pool
}

// drawCard draws one card by value from the pool, with replacement.
func drawCard(rng *rand.Rand) Card {
	return cardPool[rng.Intn(len(cardPool))]
}
