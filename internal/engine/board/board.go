// Package board holds the fixed set of influence zones and the control
// arbitration rule: a zone is controlled only by a single strict leader whose
// marker count meets the majority threshold. Ties and sub-threshold leads
// always leave the zone uncontrolled.
package board

import "fmt"

// ZoneName identifies one of the eight trigram zones.
type ZoneName string

const (
	ZoneQian ZoneName = "乾"
	ZoneKun  ZoneName = "坤"
	ZoneZhen ZoneName = "震"
	ZoneXun  ZoneName = "巽"
	ZoneKan  ZoneName = "坎"
	ZoneLi   ZoneName = "离"
	ZoneGen  ZoneName = "艮"
	ZoneDui  ZoneName = "兑"
)

// AllZones lists the zones in their canonical order. Iteration over zones
// always follows this slice so results are deterministic.
var AllZones = []ZoneName{
	ZoneQian, ZoneKun, ZoneZhen, ZoneXun,
	ZoneKan, ZoneLi, ZoneGen, ZoneDui,
}

// Zone tracks per-player influence markers and the current controller.
// An empty controller string means the zone is uncontrolled.
type Zone struct {
	Markers    map[string]int
	Controller string
}

func newZone() *Zone {
	return &Zone{Markers: make(map[string]int)}
}

func (z *Zone) copy() *Zone {
	c := newZone()
	for player, count := range z.Markers {
		c.Markers[player] = count
	}
	c.Controller = z.Controller
	return c
}

// Board is the full zone board. Capacity is fixed at setup from the player
// count and drives the control threshold.
type Board struct {
	Capacity int
	zones    map[ZoneName]*Zone
}

// CapacityFor returns the marker capacity for a given player count.
func CapacityFor(numPlayers int) int {
	switch numPlayers {
	case 2:
		return 5
	case 3:
		return 6
	default:
		return 7
	}
}

// New creates a board sized for the given player count.
func New(numPlayers int) *Board {
	zones := make(map[ZoneName]*Zone, len(AllZones))
	for _, name := range AllZones {
		zones[name] = newZone()
	}
	return &Board{
		Capacity: CapacityFor(numPlayers),
		zones:    zones,
	}
}

// ControlThreshold returns the marker count required to control a zone.
func (b *Board) ControlThreshold() int {
	return b.Capacity/2 + 1
}

// TotalZones returns the number of zones on the board.
func (b *Board) TotalZones() int {
	return len(b.zones)
}

// AddInfluence places amount markers for player in the named zone and
// re-evaluates control. Control changes only ever happen here or through
// ClaimUncontrolledZone.
func (b *Board) AddInfluence(zone ZoneName, player string, amount int) error {
	z, ok := b.zones[zone]
	if !ok {
		return fmt.Errorf("unknown zone %q", zone)
	}
	if amount <= 0 {
		return fmt.Errorf("influence amount must be positive, got %d", amount)
	}
	z.Markers[player] += amount
	b.evaluateControl(z)
	return nil
}

// evaluateControl applies the control rule: the single strict leader gets
// control iff their count meets the threshold; everything else clears it.
func (b *Board) evaluateControl(z *Zone) {
	if len(z.Markers) == 0 {
		z.Controller = ""
		return
	}
	max := 0
	for _, count := range z.Markers {
		if count > max {
			max = count
		}
	}
	leaders := 0
	leader := ""
	for player, count := range z.Markers {
		if count == max {
			leaders++
			leader = player
		}
	}
	if leaders == 1 && max >= b.ControlThreshold() {
		z.Controller = leader
	} else {
		z.Controller = ""
	}
}

// ClaimUncontrolledZone grants control of a completely empty zone without
// going through the majority rule. It is a distinct exploration move, not a
// shortcut around evaluateControl: any markers or an existing controller
// make the claim illegal.
func (b *Board) ClaimUncontrolledZone(zone ZoneName, player string) error {
	z, ok := b.zones[zone]
	if !ok {
		return fmt.Errorf("unknown zone %q", zone)
	}
	if len(z.Markers) > 0 {
		return fmt.Errorf("zone %q is contested and cannot be claimed", zone)
	}
	if z.Controller != "" {
		return fmt.Errorf("zone %q already controlled by %s", zone, z.Controller)
	}
	z.Controller = player
	return nil
}

// Controller returns the controlling player of a zone, or "" when
// uncontrolled or unknown.
func (b *Board) Controller(zone ZoneName) string {
	if z, ok := b.zones[zone]; ok {
		return z.Controller
	}
	return ""
}

// Markers returns player's marker count in a zone.
func (b *Board) Markers(zone ZoneName, player string) int {
	if z, ok := b.zones[zone]; ok {
		return z.Markers[player]
	}
	return 0
}

// ZoneMarkers returns a copy of the marker map for a zone.
func (b *Board) ZoneMarkers(zone ZoneName) map[string]int {
	z, ok := b.zones[zone]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(z.Markers))
	for player, count := range z.Markers {
		out[player] = count
	}
	return out
}

// ControlledBy returns the zones controlled by player in canonical order.
func (b *Board) ControlledBy(player string) []ZoneName {
	var controlled []ZoneName
	for _, name := range AllZones {
		if b.zones[name].Controller == player {
			controlled = append(controlled, name)
		}
	}
	return controlled
}

// ControlledCount returns how many zones player controls.
func (b *Board) ControlledCount(player string) int {
	return len(b.ControlledBy(player))
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	zones := make(map[ZoneName]*Zone, len(b.zones))
	for name, z := range b.zones {
		zones[name] = z.copy()
	}
	return &Board{Capacity: b.Capacity, zones: zones}
}
