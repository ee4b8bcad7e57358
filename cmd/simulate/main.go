// Command simulate runs batches of random self-play games and reports how
// they end. Useful for balance sweeps and for exercising the engine under
// concurrency.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tianjibian/tianji-server-go/internal/engine"
)

var (
	numGames   = flag.Int("games", 100, "number of games to simulate")
	numWorkers = flag.Int("workers", 4, "number of concurrent workers")
	numPlayers = flag.Int("players", 2, "players per game")
	seed       = flag.Int64("seed", 0, "base RNG seed (0 picks one from the clock)")
)

type outcome struct {
	victory engine.VictoryType
	winner  string
	turns   int
}

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	logger.Info("starting simulation",
		zap.Int("games", *numGames),
		zap.Int("workers", *numWorkers),
		zap.Int("players", *numPlayers),
		zap.Int64("seed", base),
	)

	eng := engine.NewEngine(engine.DefaultConfig(), zap.NewNop())

	jobs := make(chan int64)
	outcomes := make(chan outcome, *numGames)

	var wg sync.WaitGroup
	for w := 0; w < *numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gameSeed := range jobs {
				result, err := playGame(eng, *numPlayers, gameSeed)
				if err != nil {
					logger.Error("game failed", zap.Int64("seed", gameSeed), zap.Error(err))
					continue
				}
				outcomes <- result
			}
		}()
	}

	start := time.Now()
	go func() {
		for i := 0; i < *numGames; i++ {
			jobs <- base + int64(i)
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	byVictory := make(map[engine.VictoryType]int)
	byWinner := make(map[string]int)
	totalTurns, played := 0, 0
	for o := range outcomes {
		byVictory[o.victory]++
		byWinner[o.winner]++
		totalTurns += o.turns
		played++
	}

	logger.Info("simulation finished",
		zap.Int("games", played),
		zap.Duration("elapsed", time.Since(start)),
	)
	if played == 0 {
		return
	}

	for _, vt := range sortedVictoryTypes(byVictory) {
		logger.Info("victory path",
			zap.String("type", string(vt)),
			zap.Int("games", byVictory[vt]),
			zap.Float64("share", float64(byVictory[vt])/float64(played)),
		)
	}
	for _, name := range sortedWinners(byWinner) {
		logger.Info("winner",
			zap.String("player", name),
			zap.Int("games", byWinner[name]),
		)
	}
	logger.Info("average game length",
		zap.Float64("turns", float64(totalTurns)/float64(played)),
	)
}

// playGame runs one game with a uniformly random policy over the non-menu
// catalog until a verdict is reached.
func playGame(eng *engine.Engine, players int, seed int64) (outcome, error) {
	rng := rand.New(rand.NewSource(seed))

	state, err := eng.SetupGame(players, rng)
	if err != nil {
		return outcome{}, err
	}
	ctrl := eng.NewTurnController(state, rng)

	for ctrl.Verdict() == nil {
		for ctrl.RemainingAP() > 0 {
			id, ok := pickAction(ctrl.ValidActions(), rng)
			if !ok {
				break
			}
			if _, err := ctrl.Apply(id); err != nil {
				return outcome{}, fmt.Errorf("apply action %d: %w", id, err)
			}
		}
		if verdict := ctrl.EndTurn(); verdict != nil {
			return outcome{
				victory: verdict.Type,
				winner:  verdict.Winner,
				turns:   ctrl.State().Turn,
			}, nil
		}
	}
	return outcome{}, fmt.Errorf("controller stopped without a verdict")
}

// pickAction chooses uniformly among the playable (non-menu) catalog entries.
func pickAction(actions map[int]engine.ActionDescriptor, rng *rand.Rand) (int, bool) {
	ids := make([]int, 0, len(actions))
	for id, action := range actions {
		if action.Kind.IsMenu() {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, false
	}
	sort.Ints(ids)
	return ids[rng.Intn(len(ids))], true
}

func sortedVictoryTypes(m map[engine.VictoryType]int) []engine.VictoryType {
	types := make([]engine.VictoryType, 0, len(m))
	for vt := range m {
		types = append(types, vt)
	}
	sort.Slice(types, func(i, j int) bool { return m[types[i]] > m[types[j]] })
	return types
}

func sortedWinners(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
