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

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Shows the session this CLI is connected to.",
	Long: `Shows the venue, devices, queue length and last played video of the
connected session. With --business only the venue branding is printed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		businessOnly, _ := cmd.Flags().GetBool("business")
		if businessOnly {
			res, err := karaokeClient.GetBusinessConfig(ctx, &pb.GetBusinessConfigRequest{SessionId: sessionID})
			if err != nil {
				printRPCError("GetBusinessConfig", err)
				return
			}
			b := res.GetBusiness()
			fmt.Printf("Name:   %s\nSlogan: %s\nFlyer:  %s\n", b.GetBusinessName(), b.GetSlogan(), b.GetFlyerUrl())
			return
		}

		res, err := karaokeClient.GetSession(ctx, &pb.GetSessionRequest{SessionId: sessionID})
		if err != nil {
			if status.Code(err) == codes.NotFound {
				fmt.Fprintln(os.Stderr, "Session has ended, run 'connect <hostcode>' to join again.")
				forgetSession()
				return
			}
			printRPCError("GetSession", err)
			return
		}
		s := res.GetSession()
		fmt.Printf("Session:  %s\n", s.GetSessionId())
		fmt.Printf("Venue:    %s (%s)\n", s.GetBusiness().GetBusinessName(), s.GetHostcode())
		fmt.Printf("Devices:  %d\n", len(s.GetDevices()))
		fmt.Printf("Queue:    %d\n", len(s.GetQueue()))
		if last := s.GetLastPlayed(); last != "" {
			fmt.Printf("Last:     %s\n", last)
		}
		fmt.Printf("Version:  %d (updated %s)\n", s.GetVersion(), formatTime(s.GetUpdatedAt()))
		if id := viper.GetString(deviceIDKey); id != "" {
			fmt.Printf("Device:   %s\n", id)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().BoolP("business", "b", false, "Show only the venue branding")
}
