package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/explorer"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/plot"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/terminal"
	"github.com/san-kum/mandelterm/internal/tui"
	"github.com/spf13/cobra"
)

const (
	thumbWidth    = 40
	thumbHeight   = 12
	profileHeight = 12
)

var thumbStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder())

// main registers the commands and exits with status 1 if any of them fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "mandel",
		Short:        "explore the mandelbrot set in the terminal",
		Long:         "Pan with w/a/s/d, zoom out/in with j/k, quit with q.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runExplorer,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "explore in a full-screen bubble tea view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(config.DefaultParams())
		},
	}

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list well-known regions of the set",
		Args:  cobra.NoArgs,
		RunE:  listRegions,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot escape counts along the centre row of the default view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(plot.Profile(config.DefaultParams(), profileHeight))
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, regionsCmd, profileCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExplorer(cmd *cobra.Command, args []string) error {
	keys := terminal.NewKeys(os.Stdin)
	screen := terminal.NewScreen(os.Stdout)

	s := explorer.NewSession(config.DefaultParams(), keys, screen)
	if err := s.Run(cmd.Context()); err != nil {
		return fmt.Errorf("session ended after %d frames: %w", s.Frames(), err)
	}
	return nil
}

func listRegions(cmd *cobra.Command, args []string) error {
	regions, err := config.Regions()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRE\tIM\tDESCRIPTION")
	for _, r := range regions {
		fmt.Fprintf(w, "%s\t[%.4f, %.4f]\t[%.4f, %.4f]\t%s\n",
			r.Name, r.XMin, r.XMax, r.YMin, r.YMax, r.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range regions {
		fmt.Printf("\n%s\n", r.Name)
		fmt.Println(thumbnail(r.Params(thumbWidth, thumbHeight)))
	}
	return nil
}

func thumbnail(p mandel.Params) string {
	return thumbStyle.Render(strings.Join(render.Lines(mandel.Compute(p)), "\n"))
}
