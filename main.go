package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"shogi/communication/server"
	"shogi/experiments"
	"shogi/game"
	"shogi/gamemaster"
	"shogi/meta"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := experiments.DefaultConfig()

	games := flag.Int("games", defaults.Games, "Number of games per depth")
	depths := flag.String("depths", joinInts(defaults.Depths), "Comma-separated search depths to evaluate")
	turns := flag.Int("turns", defaults.MaxTurns, "Maximum number of moves per game")
	seed := flag.Uint64("seed", defaults.Seed, "Seed for random agents and tie-breaks")
	out := flag.String("out", defaults.OutDir, "Directory for experiment records")
	play := flag.Bool("play", false, "Play as home against the minimax agent on the terminal")
	depth := flag.Int("depth", meta.DEPTH, "Search depth of the minimax agent in play mode")
	serve := flag.String("serve", "", "Serve the match API on this address, e.g. :8080")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *serve != "" {
		if err := server.Start(*serve, gamemaster.NewManager()); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if *play {
		if err := runPlay(os.Stdin, os.Stdout, *depth); err != nil {
			log.Fatal().Err(err).Msg("play aborted")
		}
		return
	}

	parsed, err := parseInts(*depths)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -depths")
	}

	dir, err := experiments.RunDepthExperiment(experiments.Config{
		Games:    *games,
		Depths:   parsed,
		MaxTurns: *turns,
		Seed:     *seed,
		OutDir:   *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("depth experiment failed")
	}
	log.Info().Msgf("records written to %s", dir)
}

// runPlay reads moves such as "e9e8" from in until EOF or "quit".
func runPlay(in io.Reader, out io.Writer, depth int) error {
	match := gamemaster.NewMatch(gamemaster.WithDepth(depth))
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "%s\n%s> ", match.Board(), match.Turn())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return nil
		}

		move, err := game.ParseMove(line)
		if err == nil {
			err = match.Play(move)
		}
		if err != nil {
			if errors.Is(err, gamemaster.ErrIllegalMove) {
				if targets, selErr := match.Select(move.From); selErr == nil {
					fmt.Fprintf(out, "legal destinations: %v\n", targets)
				}
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		res, err := match.AITurn()
		if err != nil {
			return err
		}
		if res.Found {
			fmt.Fprintf(out, "away plays %s (%.1f)\n", res.Move, res.Score)
		} else {
			fmt.Fprintln(out, "away passes")
		}
	}
}

func parseInts(s string) ([]int, error) {
	var values []int
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func joinInts(values []int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, ",")
}
