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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advances playback to the next video.",
	Long: `Takes the video at the head of the queue and marks it as playing.
When the queue is empty the server picks one from the venue's house list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.NextVideo(ctx, &pb.NextVideoRequest{SessionId: sessionID})
		if err != nil {
			if status.Code(err) == codes.FailedPrecondition {
				fmt.Fprintln(os.Stderr, "Nothing to play: the queue and the house list are empty.")
				return
			}
			printRPCError("NextVideo", err)
			return
		}
		fmt.Println(formatPlayback(res))
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
