package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fun-numbers/internal/game"
	"fun-numbers/internal/random"
	"fun-numbers/internal/session"
)

func newReplayCmd() *cobra.Command {
	var (
		track  string
		seed   uint64
		secret float64
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Play a whole game from a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := game.ParseTrack(track)
			if !ok {
				return fmt.Errorf("unknown track %q (want %q or %q)", track, game.TrackAdditive, game.TrackMultiplicative)
			}

			var secretPtr *float64
			if cmd.Flags().Changed("secret") {
				secretPtr = &secret
			}

			out, err := game.RunReplay(t, random.NewSeeded(seed), secretPtr)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, step := range out.Steps {
				line := fmt.Sprintf("%d. %s (total %s", step.Turn, step.Instruction.Text, session.FormatNumber(step.Instruction.Total))
				if step.Player != nil {
					line += ", you " + session.FormatNumber(*step.Player)
				}
				fmt.Fprintln(w, line+")")
			}
			fmt.Fprintln(w, out.Text)

			if out.Verified != nil {
				if *out.Verified {
					fmt.Fprintln(w, "verified: the reveal matches your number")
				} else {
					fmt.Fprintln(w, "mismatch: the reveal does not match your number")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&track, "track", string(game.TrackAdditive), "game track: add or multiply")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&secret, "secret", 0, "secret number to follow along with")

	return cmd
}
