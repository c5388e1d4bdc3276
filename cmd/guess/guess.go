// Package guess contains the number-guessing game command.
package guess

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/games/guess"
)

var target int

// Cmd is the guess command
var Cmd = &cobra.Command{
	Use:   "guess",
	Short: "Play the number-guessing game",
	Long:  `Guess a number between 1 and 100 with too-high/too-low hints.`,
	Run:   guessFunc,
}

func init() {
	Cmd.Flags().IntVar(&target, "target", 0, "Fix the target number (testing aid; 0 = random)")
}

func guessFunc(cmd *cobra.Command, args []string) {
	var game *guess.Game
	if target >= 1 && target <= 100 {
		game = guess.NewGame(target, os.Stdin, os.Stdout)
	} else {
		rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game randomness, not security
		game = guess.NewRandomGame(rng, os.Stdin, os.Stdout)
	}

	attempts, err := game.Run()
	if err != nil {
		root.Log.Fatalf("Game ended with error: %v", err)
	}
	root.Log.Infof("Solved in %d guesses", attempts)
}
