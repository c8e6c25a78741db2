package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFormatQueueItem(t *testing.T) {
	tests := []struct {
		name string
		item *pb.QueueItem
		want string
	}{
		{
			name: "id only",
			item: &pb.QueueItem{Id: "yt-1"},
			want: " 1. yt-1",
		},
		{
			name: "title and genre",
			item: &pb.QueueItem{Id: "yt-1", Title: "My Way", Genre: "Standards"},
			want: " 1. yt-1  My Way [Standards]",
		},
		{
			name: "dedication",
			item: &pb.QueueItem{Id: "yt-1", SubmittedBy: &pb.UserMessage{Username: "Mike", Message: "for Sarah"}},
			want: ` 1. yt-1 (Mike: "for Sarah")`,
		},
		{
			name: "anonymous submitter",
			item: &pb.QueueItem{Id: "yt-1", SubmittedBy: &pb.UserMessage{Message: "hi"}},
			want: " 1. yt-1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatQueueItem(1, tt.item); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPlayback(t *testing.T) {
	queued := formatPlayback(&pb.NextVideoResponse{
		Source:  pb.PlaybackSource_QUEUE,
		VideoId: "yt-1",
		Video:   &pb.QueueItem{Id: "yt-1", Title: "Lemon"},
	})
	if queued != "Now playing yt-1 (Lemon) from the queue" {
		t.Fatalf("queue playback = %q", queued)
	}
	random := formatPlayback(&pb.NextVideoResponse{Source: pb.PlaybackSource_RANDOM, VideoId: "r1"})
	if !strings.Contains(random, "r1") || !strings.Contains(random, "house list") {
		t.Fatalf("random playback = %q", random)
	}
	if got := formatPlayback(nil); got != "Nothing to play" {
		t.Fatalf("nil playback = %q", got)
	}
}

func TestFormatDeviceMarksSelf(t *testing.T) {
	d := &pb.Device{Id: "dev-1", Name: "TV", LastActive: timestamppb.New(time.Now())}
	if got := formatDevice(d, "dev-1"); !strings.HasPrefix(got, "* dev-1") || !strings.HasSuffix(got, "TV") {
		t.Fatalf("self device = %q", got)
	}
	if got := formatDevice(d, "dev-2"); !strings.HasPrefix(got, "  dev-1") {
		t.Fatalf("other device = %q", got)
	}
	if got := formatTime(nil); got != noTime {
		t.Fatalf("nil time = %q", got)
	}
}

func TestCurrentSessionID(t *testing.T) {
	prev := viper.GetString(sessionIDKey)
	t.Cleanup(func() { viper.Set(sessionIDKey, prev) })

	viper.Set(sessionIDKey, "")
	if _, err := currentSessionID(); !errors.Is(err, errNotConnected) {
		t.Fatalf("err = %v, want errNotConnected", err)
	}
	viper.Set(sessionIDKey, "01J0SESSION")
	if id, err := currentSessionID(); err != nil || id != "01J0SESSION" {
		t.Fatalf("id = %q, err = %v", id, err)
	}
}

func TestResetFlags(t *testing.T) {
	if err := submitCmd.Flags().Set("genre", "Rock"); err != nil {
		t.Fatalf("set: %v", err)
	}
	resetFlags(rootCmd)

	f := submitCmd.Flags().Lookup("genre")
	if f.Changed || f.Value.String() != "" {
		t.Fatalf("genre flag not reset: changed=%v value=%q", f.Changed, f.Value.String())
	}
}

func TestCommandSuggestions(t *testing.T) {
	var names []string
	for _, s := range commandSuggestions(rootCmd) {
		names = append(names, s.Text)
	}
	joined := " " + strings.Join(names, " ") + " "
	for _, want := range []string{"connect", "submit", "queue", "next", "watch", "exit"} {
		if !strings.Contains(joined, " "+want+" ") {
			t.Fatalf("suggestions %v missing %q", names, want)
		}
	}
}
