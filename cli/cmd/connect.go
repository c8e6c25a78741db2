/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect <hostcode>",
	Short: "Joins the session for a venue hostcode.",
	Long: `Joins the active session of the venue identified by hostcode, creating
it if the venue has none. The session is remembered in the config file so
later commands act on it.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: HostcodeCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.Connect(ctx, &pb.ConnectRequest{Hostcode: args[0]})
		if err != nil {
			printRPCError("Connect", err)
			return
		}
		s := res.GetSession()
		if viper.GetString(sessionIDKey) != s.GetSessionId() {
			viper.Set(deviceIDKey, "")
		}
		viper.Set(sessionIDKey, s.GetSessionId())
		viper.Set(hostcodeKey, s.GetHostcode())
		saveState()

		b := s.GetBusiness()
		fmt.Printf("Connected to %s (session %s)\n", b.GetBusinessName(), s.GetSessionId())
		if slogan := b.GetSlogan(); slogan != "" {
			fmt.Println(slogan)
		}
		fmt.Printf("%d device(s), %d video(s) queued\n", len(s.GetDevices()), len(s.GetQueue()))
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
