package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/infrastructure/preview"
)

var flagTicks int

var previewCmd = &cobra.Command{
	Use:   "preview [level]",
	Short: "Print a level in the terminal",
	Long: `Print a level as colored text. Without a level name the generated level
for --seed is shown. --ticks lets the player fall idle for that many ticks
first, which scrolls the view the way the game would.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Idle ticks to simulate before printing")
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func runPreview(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	levelName := ""
	if len(args) == 1 {
		levelName = args[0]
	}
	sess, err := openSession(flagConfigDir, levelName, flagSeed, logger)
	if err != nil {
		return err
	}
	s, err := sess.newState()
	if err != nil {
		return err
	}
	for i := 0; i < flagTicks; i++ {
		s.Tick(system.InputState{})
	}

	title := fmt.Sprintf("generated level, seed %d", sess.seed)
	if levelName != "" {
		title = "level " + levelName
	}

	out := cmd.OutOrStdout()
	r := preview.New(lipgloss.NewRenderer(out))
	fmt.Fprintln(out, titleStyle.Render(title))
	fmt.Fprintln(out, preview.Summary(s.Grid))
	fmt.Fprintln(out, r.Render(s.Grid, s.Player))
	return nil
}
