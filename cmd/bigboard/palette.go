package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bigboard/internal/board"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color wheel",
	Long: `Prints the colors of the wheel in order. Scrolling down moves to the
next color, scrolling up to the previous one. Config files may refer to
colors by these names.`,
	Run: runPalette,
}

var paletteHeader = lipgloss.NewStyle().Bold(true)

func runPalette(cmd *cobra.Command, args []string) {
	p := board.DefaultPalette()

	fmt.Println(paletteHeader.Render("Color wheel:"))
	fmt.Println()
	for i, nc := range p {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(nc.Color.Hex())).Render("    ")
		fmt.Printf("  %2d  %s  %-12s %s\n", i, swatch, nc.Name, nc.Color.Hex())
	}
}
