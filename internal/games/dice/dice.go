// Package dice implements the terminal dice-rolling game: roll any number of
// six-sided dice per round until the player quits.
package dice

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

// Game holds the wiring for one game session. The random source and streams
// are injected so rounds are reproducible in tests.
type Game struct {
	rng *rand.Rand
	in  *bufio.Scanner
	out io.Writer
}

// NewGame creates a game reading prompts from in and writing to out.
func NewGame(rng *rand.Rand, in io.Reader, out io.Writer) *Game {
	return &Game{
		rng: rng,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Roll rolls n six-sided dice and returns each result. Every value is in
// [1, 6].
func (g *Game) Roll(n int) []int {
	results := make([]int, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, g.rng.Intn(6)+1)
	}
	return results
}

// Sum totals a set of dice results.
func Sum(results []int) int {
	total := 0
	for _, r := range results {
		total += r
	}
	return total
}

// Run plays rounds until the player answers "n". It returns the number of
// rounds rolled; the count is threaded through the loop rather than kept in
// package state.
func (g *Game) Run() (int, error) {
	rollCount := 0

	for {
		choice, err := g.prompt("Roll the dice? (y/n): ")
		if err != nil {
			return rollCount, err
		}

		switch strings.ToLower(choice) {
		case "y":
			n, err := g.promptInt("How many dice do you want to roll? ")
			if err != nil {
				var invalid *parsererror.InvalidInputError
				if errors.As(err, &invalid) {
					fmt.Fprintln(g.out, "Please enter a valid number")
					continue
				}
				return rollCount, err
			}
			if n < 1 {
				fmt.Fprintln(g.out, "Please enter a valid number")
				continue
			}

			rollCount++
			results := g.Roll(n)
			fmt.Fprintf(g.out, "You rolled: %v\n", results)
			fmt.Fprintf(g.out, "Total: %d\n", Sum(results))

		case "n":
			fmt.Fprintf(g.out, "You have rolled %d times so far\n", rollCount)
			fmt.Fprintln(g.out, "Thanks for playing!")
			return rollCount, nil

		default:
			fmt.Fprintln(g.out, "Invalid choice! Please enter y or n.")
		}
	}
}

// prompt prints a prompt and reads one trimmed line.
func (g *Game) prompt(msg string) (string, error) {
	fmt.Fprint(g.out, msg)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(g.in.Text()), nil
}

// promptInt prints a prompt and reads one integer.
func (g *Game) promptInt(msg string) (int, error) {
	line, err := g.prompt(msg)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &parsererror.InvalidInputError{Input: line, Err: err}
	}
	return n, nil
}
