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
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Ends the connected session.",
	Long: `Ends the connected session for every device in it and forgets it locally.
Use --local to only forget the session on this terminal.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		local, _ := cmd.Flags().GetBool("local")
		if local {
			forgetSession()
			fmt.Println("Disconnected.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.EndSession(ctx, &pb.EndSessionRequest{SessionId: sessionID})
		if err != nil {
			printRPCError("EndSession", err)
			return
		}
		forgetSession()
		if res.GetEnded() {
			fmt.Printf("Session %s ended.\n", sessionID)
		} else {
			fmt.Println("Session had already ended.")
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().Bool("local", false, "Only forget the session on this terminal")
}
