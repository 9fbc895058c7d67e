package main

import (
	"fmt"
	"io"
	"maps"
	"path"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/assets"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check tuning, levels and sprites",
	Long: `Load game.yaml, every level (or only the named ones) and every sprite
they reference, without opening a window. Exits non-zero when anything
fails to load.`,
	RunE: runValidate,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// check is the outcome of loading one file or group of sprites
type check struct {
	Name string
	Err  error
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader(flagConfigDir)
	if err != nil {
		return err
	}
	checks := validateConfigs(loader, flagConfigDir, args)
	if failed := printChecks(cmd.OutOrStdout(), checks); failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

// validateConfigs loads everything the game would load. Level names default
// to every level of the loader.
func validateConfigs(loader *config.Loader, configDir string, names []string) []check {
	cfg, err := loader.LoadGame()
	checks := []check{{Name: config.GameFile, Err: err}}
	if err != nil {
		return checks
	}

	_, err = assets.ParseBackground(cfg.Display.Background)
	checks = append(checks, check{Name: "display.background", Err: err})

	assetLoader, err := newAssetLoader(cfg, configDir)
	if err != nil {
		return append(checks, check{Name: "assets.dir", Err: err})
	}

	families := map[entity.Family]bool{entity.Family(cfg.Assets.Family): true}
	images := make(map[string]bool)

	_, err = assetLoader.PlayerFrames(cfg.Assets, int(cfg.Player.Width), int(cfg.Player.Height))
	checks = append(checks, check{Name: "player sprites", Err: err})

	if len(names) == 0 {
		names, err = loader.Levels()
		if err != nil {
			return append(checks, check{Name: config.LevelDir, Err: err})
		}
	}
	layout := system.LayoutFromConfig(cfg)
	for _, name := range names {
		level, err := loader.LoadLevel(name)
		if err == nil {
			_, err = system.LoadStage(level, layout, nil)
		}
		checks = append(checks, check{Name: "level " + name, Err: err})
		if err != nil {
			continue
		}
		for _, ref := range level.References {
			if family, ok := config.ReferenceFamily(ref); ok {
				families[entity.Family(family)] = true
			} else {
				images[ref] = true
			}
		}
	}

	for _, family := range slices.Sorted(maps.Keys(families)) {
		_, err := assetLoader.Atlas(family)
		checks = append(checks, check{Name: "tiles " + string(family), Err: err})
	}
	for _, ref := range slices.Sorted(maps.Keys(images)) {
		_, err := assetLoader.Image(ref)
		checks = append(checks, check{Name: "image " + ref, Err: err})
	}
	return checks
}

// printChecks writes one line per check and returns how many failed
func printChecks(w io.Writer, checks []check) int {
	failed := 0
	for _, c := range checks {
		if c.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", failStyle.Render("FAIL"), c.Name, c.Err)
			continue
		}
		fmt.Fprintf(w, "%s   %s\n", okStyle.Render("ok"), c.Name)
	}
	return failed
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader, err := newConfigLoader(flagConfigDir)
	if err != nil {
		return err
	}
	names, err := loader.Levels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dir := path.Join(loader.BasePath(), config.LevelDir)
	if len(names) == 0 {
		fmt.Fprintf(out, "No levels found in %s.\n", dir)
		return nil
	}
	fmt.Fprintf(out, "Levels in %s:\n", dir)
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blobclimb play --level <name>' to play a level.")
	return nil
}
