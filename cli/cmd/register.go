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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register [device_name]",
	Short: "Registers this terminal as a device in the session.",
	Long: `Registers this terminal as a device of the connected session.
The device name defaults to the configured display name, then the host name.
A session holds a limited number of devices; remove one with 'rm' when full.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		name := viper.GetString(displayNameKey)
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			name, _ = os.Hostname()
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		req := &pb.RegisterDeviceRequest{
			SessionId: sessionID,
			Name:      name,
			UserAgent: userAgent(viper.GetViper()),
		}
		res, err := karaokeClient.RegisterDevice(ctx, req)
		if err != nil {
			if status.Code(err) == codes.ResourceExhausted {
				fmt.Fprintln(os.Stderr, "Session is full. Use 'devices' and 'rm <device_id>' to free a slot.")
				return
			}
			printRPCError("RegisterDevice", err)
			return
		}
		d := res.GetDevice()
		viper.Set(deviceIDKey, d.GetId())
		saveState()
		fmt.Printf("Registered %s as %s\n", d.GetName(), d.GetId())
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
