/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	pb "github.com/ponyo877/karaokesh/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const noTime = "           "

// formatTime renders a timestamp the way ls prints modification times.
func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return noTime
	}
	t := ts.AsTime().Local()
	return fmt.Sprintf("%s %2d %s", t.Format("1"), t.Day(), t.Format("15:04"))
}

func formatDevice(d *pb.Device, self string) string {
	marker := " "
	if d.GetId() == self {
		marker = "*"
	}
	return fmt.Sprintf("%s %-26s %s %s", marker, d.GetId(), formatTime(d.GetLastActive()), d.GetName())
}

func formatQueueItem(pos int, item *pb.QueueItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d. %s", pos, item.GetId())
	if title := item.GetTitle(); title != "" {
		fmt.Fprintf(&b, "  %s", title)
	}
	if genre := item.GetGenre(); genre != "" {
		fmt.Fprintf(&b, " [%s]", genre)
	}
	if by := item.GetSubmittedBy(); by != nil && by.GetUsername() != "" {
		fmt.Fprintf(&b, " (%s", by.GetUsername())
		if msg := by.GetMessage(); msg != "" {
			fmt.Fprintf(&b, ": %q", msg)
		}
		b.WriteString(")")
	}
	return b.String()
}

func formatPlayback(res *pb.NextVideoResponse) string {
	switch res.GetSource() {
	case pb.PlaybackSource_QUEUE:
		title := res.GetVideo().GetTitle()
		if title == "" {
			return fmt.Sprintf("Now playing %s from the queue", res.GetVideoId())
		}
		return fmt.Sprintf("Now playing %s (%s) from the queue", res.GetVideoId(), title)
	case pb.PlaybackSource_RANDOM:
		return fmt.Sprintf("Queue is empty, playing %s from the house list", res.GetVideoId())
	default:
		return "Nothing to play"
	}
}
