/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists devices registered in the session.",
	Long: `Lists the devices registered in the connected session in registration
order. This terminal's device is marked with '*'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.ListDevices(ctx, &pb.ListDevicesRequest{SessionId: sessionID})
		if err != nil {
			printRPCError("ListDevices", err)
			return
		}
		if len(res.GetDevices()) == 0 {
			fmt.Println("No devices registered.")
			return
		}
		self := viper.GetString(deviceIDKey)
		for _, d := range res.GetDevices() {
			fmt.Println(formatDevice(d, self))
		}
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
