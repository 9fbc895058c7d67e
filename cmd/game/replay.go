package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/blobclimb/internal/application/replay"
	"github.com/younwookim/blobclimb/internal/application/scene/playing"
	"github.com/younwookim/blobclimb/internal/application/state"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run",
	Long: `Play back a run recorded with --record. The recording stores the seed
and level, so the run is rebuilt exactly; --seed and --level are ignored.

With --headless no window is opened: the run is simulated as fast as
possible and its final state is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without a window and print the result")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	sess, err := openSession(flagConfigDir, data.Level, data.Seed, logger)
	if err != nil {
		return err
	}
	logger.Info("replaying", "file", args[0], "frames", len(data.Frames), "seed", data.Seed, "level", data.Level)

	if flagHeadless {
		s, ticks, err := replayHeadless(sess, *data)
		if err != nil {
			return err
		}
		printReplaySummary(cmd.OutOrStdout(), s, ticks)
		return nil
	}

	s, err := sess.newState()
	if err != nil {
		return err
	}
	return runWindow(sess, s, replay.NewReplayer(*data), playing.Options{Level: sess.levelName(), Logger: logger})
}

// replayHeadless feeds every recorded tick to a fresh game state
func replayHeadless(sess *session, data replay.ReplayData) (*state.GameState, int, error) {
	s, err := sess.newState()
	if err != nil {
		return nil, 0, err
	}
	ticks := replay.NewReplayer(data).Run(s.Tick)
	return s, ticks, nil
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
)

func printReplaySummary(w io.Writer, s *state.GameState, ticks int) {
	p := s.Player
	rows := [][2]string{
		{"ticks", fmt.Sprintf("%d", ticks)},
		{"phase", s.Phase.String()},
		{"state", p.State.String()},
		{"position", fmt.Sprintf("%.2f, %.2f", p.X, p.Y)},
		{"velocity", fmt.Sprintf("%.3f, %.3f", p.VX, p.VY)},
		{"grid rows", fmt.Sprintf("%d", s.Grid.Height())},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", r[0])), valueStyle.Render(r[1]))
	}
}
