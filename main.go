package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sudorace/board"
	"github.com/domino14/sudorace/config"
	"github.com/domino14/sudorace/racer"
	"github.com/domino14/sudorace/report"
)

func run(args []string) error {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		return err
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	rest := cfg.Args()
	if len(rest) != board.CellCount+1 {
		return fmt.Errorf("%w: expected %d cell values plus a worker count, got %d arguments",
			board.ErrInvalidInput, board.CellCount, len(rest))
	}
	b, err := board.Parse(rest[:board.CellCount])
	if err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	threads, err := strconv.Atoi(rest[board.CellCount])
	if err != nil || threads < 1 {
		return fmt.Errorf("%w: worker count %q must be a positive integer",
			board.ErrInvalidInput, rest[board.CellCount])
	}

	// Connect before spawning any worker so connection failures surface
	// immediately.
	var reporter report.Reporter
	if cfg.NatsURL != "" {
		reporter, err = report.DialNATS(cfg.NatsURL, cfg.NatsSubject)
	} else {
		reporter, err = report.DialTCP(net.JoinHostPort(cfg.ServerAddr, strconv.Itoa(cfg.ServerPort)))
	}
	if err != nil {
		return err
	}
	defer reporter.Close()

	log.Debug().Int("givens", board.CellCount-b.EmptyCount()).Msg(b.ToDisplayText())

	r := racer.New(threads, cfg.CheckCadence, reporter)
	solution, elapsed, err := r.Run(context.Background(), b)
	if err != nil {
		return err
	}
	log.Info().Float64("elapsed-sec", elapsed.Seconds()).Msg(solution.ToDisplayText())
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("sudorace-failed")
	}
}
