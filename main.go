package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turtleworks",
	Short: "Recursive turtle drawings: a fractal galaxy and fractal trees",
	Long: `turtleworks draws recursive turtle-graphics scenes into a software
framebuffer and shows them in a window, in the terminal, or writes a PNG.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML file with scene parameter overrides")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
