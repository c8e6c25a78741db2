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
	"google.golang.org/protobuf/types/known/emptypb"
)

// hostcodesCmd represents the hostcodes command
var hostcodesCmd = &cobra.Command{
	Use:   "hostcodes [hostcode]",
	Short: "Lists venues or checks a single hostcode.",
	Long: `Without arguments, lists every venue the server knows about.
With a hostcode, checks whether it is valid and shows the venue it belongs to.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		if len(args) == 1 {
			res, err := karaokeClient.VerifyHostcode(ctx, &pb.VerifyHostcodeRequest{Hostcode: args[0]})
			if err != nil {
				printRPCError("VerifyHostcode", err)
				return
			}
			b := res.GetBusiness()
			fmt.Printf("%s is valid: %s\n", b.GetHostcode(), b.GetBusinessName())
			return
		}

		res, err := karaokeClient.ListHostcodes(ctx, &emptypb.Empty{})
		if err != nil {
			printRPCError("ListHostcodes", err)
			return
		}
		if len(res.GetBusinesses()) == 0 {
			fmt.Fprintln(os.Stderr, "No venues configured.")
			return
		}
		for _, b := range res.GetBusinesses() {
			fmt.Printf("%-10s %-24s %s\n", b.GetHostcode(), b.GetBusinessName(), b.GetSlogan())
		}
	},
}

func init() {
	rootCmd.AddCommand(hostcodesCmd)
}
