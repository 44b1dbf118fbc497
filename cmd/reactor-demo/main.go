package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nodeflow/reactor/internal/demo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reactor-demo",
	Short: "Run the reactor library's bundled example graphs",
}

var rpgCmd = &cobra.Command{
	Use:   "rpg",
	Short: "Run the RPG character sheet example",
	Run: func(cmd *cobra.Command, args []string) {
		demo.RunRPG(os.Stdout)
	},
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Run the signup form validation example",
	Run: func(cmd *cobra.Command, args []string) {
		demo.RunForm(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(rpgCmd, formCmd)
}
