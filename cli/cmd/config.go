/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [new_display_name]",
	Short: "Gets or sets the display name.",
	Long: `Manages configuration for the karaokesh client.
If called without arguments, it displays the current configuration.
If called with an argument, it sets the display name used for devices and submissions.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Printf("Server:       %s\n", viper.GetString(grpcServerAddressKey))
			fmt.Printf("Display Name: %s\n", viper.GetString(displayNameKey))
			fmt.Printf("Hostcode:     %s\n", viper.GetString(hostcodeKey))
			fmt.Printf("Session:      %s\n", viper.GetString(sessionIDKey))
			fmt.Printf("Device:       %s\n", viper.GetString(deviceIDKey))
			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Printf("Config File:  %s\n", used)
			}
			return
		}
		viper.Set(displayNameKey, args[0])
		saveState()
		fmt.Printf("Display name set to: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
