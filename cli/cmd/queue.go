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

// queueCmd represents the queue command
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Lists the videos waiting to be played.",
	Long: `Lists the connected session's queue in play order.
With --genre, only videos tagged with that genre are shown.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		genre, _ := cmd.Flags().GetString("genre")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		var res *pb.QueueResponse
		if genre != "" {
			res, err = karaokeClient.FilterQueue(ctx, &pb.FilterQueueRequest{SessionId: sessionID, Genre: genre})
		} else {
			res, err = karaokeClient.ListQueue(ctx, &pb.ListQueueRequest{SessionId: sessionID})
		}
		if err != nil {
			printRPCError("ListQueue", err)
			return
		}
		if len(res.GetQueue()) == 0 {
			fmt.Println("Queue is empty.")
			return
		}
		for i, item := range res.GetQueue() {
			fmt.Println(formatQueueItem(i+1, item))
		}
	},
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.Flags().StringP("genre", "g", "", "Show only videos with this genre")
}
