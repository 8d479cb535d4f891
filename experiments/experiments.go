package experiments

import (
	"fmt"
	"shogi/agent"
	"shogi/engine"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/meta"
	"shogi/searcher"

	"github.com/rs/zerolog/log"
)

const baselineID = 0

type Config struct {
	Games    int // Per match up
	Depths   []int
	MaxTurns int
	Seed     uint64
	OutDir   string
}

func DefaultConfig() Config {
	return Config{
		Games:    meta.GAMES,
		Depths:   []int{1, 2, meta.DEPTH},
		MaxTurns: meta.MAX_TURNS,
		Seed:     meta.SEED,
		OutDir:   "experiments",
	}
}

// RunDepthExperiment pairs a random Home baseline against the minimax Away
// agent at each configured depth and stores the records as CSV. It returns
// the directory the records were written to.
func RunDepthExperiment(config Config) (string, error) {
	baseline := metrics.AgentConfig{ID: baselineID, Kind: "random", Seed: config.Seed}
	configs := []metrics.AgentConfig{baseline}
	for i, depth := range config.Depths {
		if depth <= 0 {
			return "", fmt.Errorf("invalid search depth %d", depth)
		}
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: "minimax", Depth: depth, Seed: config.Seed})
	}

	// Each matchup pairs the baseline against one minimax agent
	matchUps := [][2]metrics.AgentConfig{}
	for _, c := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, c})
	}

	return runExperiment("depth", config, configs, matchUps)
}

func runExperiment(name string, config Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		home, away := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between home=%+v and away=%+v...", mi+1, len(matchUps), home, away)

		for i := 0; i < config.Games; i++ {
			count++
			gameMetric, moveMetrics := runGame(home, away, uint64(count), config.MaxTurns)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Home:       home.ID,
				Away:       away.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d after %d moves with score %.1f",
				mi+1, len(matchUps), i+1, gameMetric.TotalMoves, gameMetric.FinalScore)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	return storeRecords(name, config.OutDir, configs, gameRecords, moveRecords)
}

func storeRecords(name, outDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord,
	moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one headless game. salt varies the seeds between games so a
// matchup does not replay the same game.
func runGame(home, away metrics.AgentConfig, salt uint64, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric) {
	var e engine.Engine = engine.LocalEngine(createAgent(home, salt), createAgent(away, salt), game.NewStandardBoard(), maxTurns)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, salt uint64) agent.Agent {
	seed := config.Seed + salt
	if config.Kind == "random" {
		return agent.NewRandomAgent(seed)
	}
	minimax := searcher.NewMinimax(searcher.WithSeed(seed), searcher.WithMetrics())
	return agent.NewMinimaxAgent(minimax, config.Depth)
}
