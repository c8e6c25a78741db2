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

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm [device_id]",
	Short: "Removes a device from the session.",
	Long: `Removes a device from the connected session, freeing its slot.
Without an argument, removes this terminal's own device.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: DeviceCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		self := viper.GetString(deviceIDKey)
		deviceID := self
		if len(args) == 1 {
			deviceID = args[0]
		}
		if deviceID == "" {
			fmt.Fprintln(os.Stderr, "No device given and this terminal is not registered.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.RemoveDevice(ctx, &pb.RemoveDeviceRequest{SessionId: sessionID, DeviceId: deviceID})
		if err != nil {
			printRPCError("RemoveDevice", err)
			return
		}
		if deviceID == self {
			viper.Set(deviceIDKey, "")
			saveState()
		}
		if !res.GetRemoved() {
			fmt.Fprintf(os.Stderr, "Device %s was not registered.\n", deviceID)
			return
		}
		fmt.Printf("Removed %s\n", deviceID)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
