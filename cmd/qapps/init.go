package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/qapps/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the user config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitUserConfig(); err != nil {
			return err
		}

		fmt.Printf("Config initialized at: %s\n", config.UserConfigPath())
		fmt.Println("\nYou can now edit the config file to customize qapps.")
		fmt.Println("Run 'qapps' to start using it!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
