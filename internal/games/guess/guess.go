// Package guess implements the terminal number-guessing game: guess a target
// between 1 and 100 with too-high/too-low hints.
package guess

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"zahra/dld-analytics/internal/parsererror"
)

// Outcome classifies one guess against the target.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Game holds one game session. The target is fixed at construction so tests
// can play deterministic rounds.
type Game struct {
	target int
	in     *bufio.Scanner
	out    io.Writer
}

// NewGame creates a game with an explicit target.
func NewGame(target int, in io.Reader, out io.Writer) *Game {
	return &Game{
		target: target,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// NewRandomGame creates a game with a target drawn uniformly from [1, 100].
func NewRandomGame(rng *rand.Rand, in io.Reader, out io.Writer) *Game {
	return NewGame(rng.Intn(100)+1, in, out)
}

// Evaluate classifies a guess against the target.
func (g *Game) Evaluate(guess int) Outcome {
	switch {
	case guess > g.target:
		return TooHigh
	case guess < g.target:
		return TooLow
	}
	return Correct
}

// Run prompts for guesses until the target is hit, printing a hint after each
// wrong answer. Non-integer input re-prompts without counting as a guess. It
// returns the number of valid guesses made.
func (g *Game) Run() (int, error) {
	attempts := 0

	for {
		guess, err := g.promptGuess()
		if err != nil {
			var invalid *parsererror.InvalidInputError
			if errors.As(err, &invalid) {
				fmt.Fprintln(g.out, "Please enter a valid number")
				continue
			}
			return attempts, err
		}

		attempts++
		switch g.Evaluate(guess) {
		case TooHigh:
			fmt.Fprintln(g.out, "Too high")
		case TooLow:
			fmt.Fprintln(g.out, "Too low")
		case Correct:
			fmt.Fprintln(g.out, "Bravo, you did it right!")
			return attempts, nil
		}
	}
}

// promptGuess prints the prompt and reads one integer guess.
func (g *Game) promptGuess() (int, error) {
	fmt.Fprint(g.out, "Guess the number between 1 and 100: ")
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	line := strings.TrimSpace(g.in.Text())
	guess, err := strconv.Atoi(line)
	if err != nil {
		return 0, &parsererror.InvalidInputError{Input: line, Err: err}
	}
	return guess, nil
}
