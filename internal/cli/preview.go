package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/choreo/internal/config"
	"github.com/opencode-ai/choreo/internal/oscillator"
	"github.com/opencode-ai/choreo/internal/tui"
)

var (
	previewFlags oscillatorFlags
	previewFPS   int
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewFlags.bind(previewCmd)
	previewCmd.Flags().IntVar(&previewFPS, "fps", 0, "frames per second, 1 to 240 (default from config)")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play an oscillator live in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return fmt.Errorf("preview requires an interactive terminal; use `choreo oscillate` instead")
		}

		spec, osc, err := previewFlags.build()
		if err != nil {
			return err
		}

		cfg := GetConfig()
		fps, err := resolvePreviewFPS(previewFPS, cfg.Preview.FPS)
		if err != nil {
			return err
		}

		low, high := spec.From, spec.To
		for _, p := range osc.Pauses() {
			low = min(low, p.Value)
			high = max(high, p.Value)
		}

		return tui.Run(tui.Config{
			Title: fmt.Sprintf("%s [%g, %g]", spec.Shape, spec.From, spec.To),
			Cycle: oscillator.Oscillate(spec.Active, osc),
			Low:   low,
			High:  high,
			FPS:   fps,
			Width: cfg.Preview.Width,
			Theme: cfg.Preview.Theme,
		})
	},
}

// resolvePreviewFPS picks the --fps value, or the configured rate when the
// flag is unset, within the same range config validation allows.
func resolvePreviewFPS(flag, configured int) (int, error) {
	if flag == 0 {
		return configured, nil
	}
	if flag < 1 || flag > config.MaxPreviewFPS {
		return 0, fmt.Errorf("--fps must be between 1 and %d, got %d", config.MaxPreviewFPS, flag)
	}
	return flag, nil
}
