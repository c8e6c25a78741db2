/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/types/known/emptypb"
)

// HostcodeCompletionFunc completes venue hostcodes from the server.
func HostcodeCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || karaokeClient == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	res, err := karaokeClient.ListHostcodes(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var codes []string
	for _, b := range res.GetBusinesses() {
		codes = append(codes, b.GetHostcode()+"\t"+b.GetBusinessName())
	}
	return codes, cobra.ShellCompDirectiveNoFileComp
}

// DeviceCompletionFunc completes device IDs of the connected session.
func DeviceCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	sessionID := viper.GetString(sessionIDKey)
	if len(args) > 0 || karaokeClient == nil || sessionID == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	res, err := karaokeClient.ListDevices(ctx, &pb.ListDevicesRequest{SessionId: sessionID})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var ids []string
	for _, d := range res.GetDevices() {
		ids = append(ids, d.GetId()+"\t"+d.GetName())
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
