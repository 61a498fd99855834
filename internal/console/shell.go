// Package console is the line-oriented I/O shell around the game core:
// prompts, re-prompts on bad input, and the replay loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"example.com/bullscows/internal/game"
)

// errInputClosed ends the session when the player closes stdin.
var errInputClosed = errors.New("input closed")

type Shell struct {
	in   *bufio.Scanner
	out  io.Writer
	msgs Messages
	rng  game.Rand
	log  *slog.Logger

	// строки читает отдельная горутина, чтобы ожидание ввода можно было прервать
	lines     chan inputLine
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

type inputLine struct {
	text string
	err  error
}

type Option func(*Shell)

func WithMessages(m Messages) Option {
	return func(s *Shell) { s.msgs = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

func New(in io.Reader, out io.Writer, rng game.Rand, opts ...Option) *Shell {
	s := &Shell{
		in:   bufio.NewScanner(in),
		out:  out,
		msgs: DefaultMessages(),
		rng:  rng,
		log:  slog.Default(),

		lines: make(chan inputLine),
		done:  make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run plays rounds until the player declines a replay or input ends.
// Cancelling ctx interrupts a pending read; Run then returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	defer s.stop()

	for _, line := range s.msgs.Intro {
		s.println(line)
	}

	for round := 1; ; round++ {
		err := s.playOnce(ctx, fmt.Sprintf("console-%d", round))
		if errors.Is(err, errInputClosed) {
			s.log.Debug("input closed, session over", "rounds", round)
			return nil
		}
		if err != nil {
			return err
		}

		s.print(s.msgs.ReplayPrompt)
		line, err := s.readLine(ctx)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if line != "y" {
			return nil
		}
	}
}

func (s *Shell) playOnce(ctx context.Context, id string) error {
	length, err := s.AskLength(ctx)
	if err != nil {
		return err
	}

	round, err := game.NewRound(id, length, s.rng)
	if err != nil {
		// AskLength уже проверил диапазон
		return fmt.Errorf("start round: %w", err)
	}
	s.log.Debug("round started", "round", id, "length", length)

	return s.PlayRound(ctx, round)
}

// AskLength re-prompts until the player enters an integer in 1..9.
func (s *Shell) AskLength(ctx context.Context) (int, error) {
	for {
		s.print(s.msgs.LengthPrompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			s.println(s.msgs.NotANumber)
			continue
		}
		if n < game.MinLength || n > game.MaxLength {
			s.println(s.msgs.LengthOutOfRange)
			continue
		}
		return n, nil
	}
}

// AskGuess re-prompts until the player enters length distinct digits.
func (s *Shell) AskGuess(ctx context.Context, length int) (game.Number, error) {
	for {
		s.print(s.msgs.GuessPrompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return nil, err
		}

		guess, err := game.CheckGuess(line, length)
		switch {
		case errors.Is(err, game.ErrMalformedGuess):
			s.println(s.msgs.BadGuess)
		case errors.Is(err, game.ErrRepeatedDigits):
			s.println(s.msgs.RepeatedDigits)
		case err != nil:
			return nil, err
		default:
			return guess, nil
		}
	}
}

// PlayRound drives round until it is won.
func (s *Shell) PlayRound(ctx context.Context, round *game.Round) error {
	for {
		guess, err := s.AskGuess(ctx, round.Length())
		if err != nil {
			return err
		}

		a, err := round.Submit(guess)
		if err != nil {
			return fmt.Errorf("submit guess: %w", err)
		}

		if round.Phase() == game.PhaseWon {
			s.println(s.msgs.Won)
			s.println(fmt.Sprintf(s.msgs.Attempts, round.Attempts()))
			return nil
		}
		s.println(fmt.Sprintf(s.msgs.Bulls, a.Bulls))
		s.println(fmt.Sprintf(s.msgs.Cows, a.Cows))
	}
}

// readLine returns the next trimmed line, or ctx.Err() once ctx is done.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.startOnce.Do(func() { go s.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-s.lines:
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// scan feeds s.lines until input ends or the shell stops. A Scan already
// blocked on the reader finishes only when the reader yields.
func (s *Shell) scan() {
	for s.in.Scan() {
		select {
		case s.lines <- inputLine{text: s.in.Text()}:
		case <-s.done:
			return
		}
	}

	err := errInputClosed
	if serr := s.in.Err(); serr != nil {
		err = fmt.Errorf("read input: %w", serr)
	}
	for {
		select {
		case s.lines <- inputLine{err: err}:
		case <-s.done:
			return
		}
	}
}

func (s *Shell) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Shell) print(str string) {
	_, _ = io.WriteString(s.out, str)
}

func (s *Shell) println(str string) {
	_, _ = io.WriteString(s.out, str+"\n")
}
