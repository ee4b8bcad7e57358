package resources

import "fmt"

// Kind identifies one of the three tracked player resources.
type Kind string

const (
	Energy    Kind = "ENERGY"    // qi: fuels movement and divination
	Insight   Kind = "INSIGHT"   // dao xing: cultivation depth
	Sincerity Kind = "SINCERITY" // cheng yi: gates transformation
)

// Kinds lists all resource kinds in a stable order.
var Kinds = []Kind{Energy, Insight, Sincerity}

// InsufficientError reports a spend that would drive a resource below zero.
// The ledger never clamps silently; callers that want a floored cost must
// compute it before spending.
type InsufficientError struct {
	Kind Kind
	Need int
	Have int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient %s: need %d, have %d", e.Kind, e.Need, e.Have)
}

// Ledger holds a player's resources. All values are non-negative; increments
// have no upper bound (ceilings are a caller concern).
type Ledger struct {
	Energy    int
	Insight   int
	Sincerity int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Get returns the current amount of the given kind.
func (l *Ledger) Get(kind Kind) int {
	switch kind {
	case Energy:
		return l.Energy
	case Insight:
		return l.Insight
	case Sincerity:
		return l.Sincerity
	default:
		return 0
	}
}

// Gain adds amount to the given resource. Non-positive amounts are ignored.
func (l *Ledger) Gain(kind Kind, amount int) {
	if amount <= 0 {
		return
	}
	switch kind {
	case Energy:
		l.Energy += amount
	case Insight:
		l.Insight += amount
	case Sincerity:
		l.Sincerity += amount
	}
}

// CanAfford reports whether the ledger holds at least amount of kind.
func (l *Ledger) CanAfford(kind Kind, amount int) bool {
	return l.Get(kind) >= amount
}

// Spend deducts amount from the given resource. Returns an InsufficientError
// and leaves the ledger untouched if the balance would go negative.
func (l *Ledger) Spend(kind Kind, amount int) error {
	if amount <= 0 {
		return nil
	}
	have := l.Get(kind)
	if have < amount {
		return &InsufficientError{Kind: kind, Need: amount, Have: have}
	}
	switch kind {
	case Energy:
		l.Energy -= amount
	case Insight:
		l.Insight -= amount
	case Sincerity:
		l.Sincerity -= amount
	}
	return nil
}

// Total returns the sum across all resources, used for victory tiebreaks.
func (l *Ledger) Total() int {
	return l.Energy + l.Insight + l.Sincerity
}

// Copy creates a deep copy of the ledger.
func (l *Ledger) Copy() *Ledger {
	c := *l
	return &c
}
