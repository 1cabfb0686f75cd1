package cmd

import (
	"fmt"

	"github.com/glimpseframework/holoview/internal/config"
	"github.com/glimpseframework/holoview/internal/models"
	"github.com/glimpseframework/holoview/internal/texture"
	"github.com/spf13/cobra"
)

var checkMobile bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configured shaders and images without opening a window",
	RunE:  checkAssets,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkMobile, "mobile", false, "check against the OpenGL ES default shaders")
}

func checkAssets(cmd *cobra.Command, args []string) error {
	target := config.Desktop
	if checkMobile {
		target = config.Mobile
	}
	cfg, err := settings.RenderConfig(target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "vertex shader:   %d bytes\n", len(cfg.VertexSource))
	fmt.Fprintf(out, "fragment shader: %d bytes\n", len(cfg.FragmentSource))

	sources := [texture.SlotCount]models.ImageSource{
		texture.Background: cfg.Background,
		texture.Hologram:   cfg.Hologram,
		texture.HoloMap:    cfg.HoloMap,
	}
	for _, slot := range texture.Slots {
		img, err := sources[slot].Image()
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		size := img.Bounds().Size()
		fmt.Fprintf(out, "%-10s unit %d  %dx%d\n", slot, slot.Unit(), size.X, size.Y)
	}
	return nil
}
