package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"turtleworks/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List scenes and their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range reg.Names() {
			s, _ := reg.Get(name)
			fmt.Fprintf(w, "%s\t%s\n", s.Name(), s.Title())
			for _, p := range s.Params() {
				fmt.Fprintf(w, "  %s\t%s\n", p.Name, p.Value)
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}

func loadRegistry(cmd *cobra.Command) (*scene.Registry, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return scene.Defaults(), nil
	}
	return scene.Load(path)
}
