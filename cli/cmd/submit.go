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

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <video_id>",
	Short: "Adds a video to the end of the session queue.",
	Long: `Adds a video to the end of the connected session's queue.
The submission is credited to the configured display name unless --user is given,
and can carry a dedication with --message.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		title, _ := cmd.Flags().GetString("title")
		genre, _ := cmd.Flags().GetString("genre")
		user, _ := cmd.Flags().GetString("user")
		message, _ := cmd.Flags().GetString("message")
		photo, _ := cmd.Flags().GetString("photo")
		if user == "" {
			user = viper.GetString(displayNameKey)
		}

		req := &pb.SubmitVideoRequest{
			SessionId: sessionID,
			Video:     &pb.QueueItem{Id: args[0], Title: title, Genre: genre},
		}
		if user != "" || message != "" || photo != "" {
			req.User = &pb.UserMessage{Username: user, Message: message, PhotoUrl: photo}
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := karaokeClient.SubmitVideo(ctx, req)
		if err != nil {
			printRPCError("SubmitVideo", err)
			return
		}
		fmt.Printf("Queued %s\n", res.GetVideo().GetId())
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringP("title", "t", "", "Video title")
	submitCmd.Flags().StringP("genre", "g", "", "Genre tag used by 'queue --genre'")
	submitCmd.Flags().StringP("user", "u", "", "Name to credit (defaults to the display name)")
	submitCmd.Flags().StringP("message", "m", "", "Dedication shown with the video")
	submitCmd.Flags().String("photo", "", "Photo URL shown with the dedication")
}
