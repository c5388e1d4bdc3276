// Package dice contains the dice-rolling game command.
package dice

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/games/dice"
)

// Cmd is the dice command
var Cmd = &cobra.Command{
	Use:   "dice",
	Short: "Play the dice-rolling game",
	Long:  `Roll any number of six-sided dice per round until you answer n.`,
	Run:   diceFunc,
}

func diceFunc(cmd *cobra.Command, args []string) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game randomness, not security
	game := dice.NewGame(rng, os.Stdin, os.Stdout)

	if _, err := game.Run(); err != nil {
		root.Log.Fatalf("Game ended with error: %v", err)
	}
}
