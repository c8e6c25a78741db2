package grpc

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestServiceDescriptorMatchesServiceDesc(t *testing.T) {
	svc := File_karaokesh_proto.Services().ByName("KaraokeService")
	if svc == nil {
		t.Fatalf("KaraokeService missing from descriptor")
	}
	if string(svc.FullName()) != KaraokeService_ServiceDesc.ServiceName {
		t.Fatalf("service name = %s, want %s", svc.FullName(), KaraokeService_ServiceDesc.ServiceName)
	}
	if svc.Methods().Len() != len(KaraokeService_ServiceDesc.Methods) {
		t.Fatalf("methods = %d, want %d", svc.Methods().Len(), len(KaraokeService_ServiceDesc.Methods))
	}
	for _, m := range KaraokeService_ServiceDesc.Methods {
		if svc.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
			t.Fatalf("method %s missing from descriptor", m.MethodName)
		}
	}
}

func TestDescriptorIsRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("karaokesh.NextVideoResponse")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if d.ParentFile().Path() != "karaokesh.proto" {
		t.Fatalf("file = %s", d.ParentFile().Path())
	}
}

func TestSessionRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 21, 0, 0, 123, time.UTC)
	in := &Session{
		SessionId: "01J0SESSION",
		Hostcode:  "919190",
		Business:  &Business{BusinessName: "Scret Lounge"},
		Devices:   []*Device{{Id: "d1", Name: "TV", LastActive: timestamppb.New(at)}},
		Queue: []*QueueItem{{
			Id:          "yt-1",
			Genre:       "Standards",
			SubmittedBy: &UserMessage{Username: "Mike", Message: "for Sarah"},
		}},
		Version: 3,
	}
	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := new(Session)
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
	if got := out.GetDevices()[0].GetLastActive().AsTime(); !got.Equal(at) {
		t.Fatalf("lastActive = %v, want %v", got, at)
	}
}

func TestPlaybackSourceNames(t *testing.T) {
	if PlaybackSource_RANDOM.String() != "RANDOM" || PlaybackSource_QUEUE.String() != "QUEUE" {
		t.Fatalf("names = %s %s", PlaybackSource_RANDOM, PlaybackSource_QUEUE)
	}
	if PlaybackSource_value["UNKNOWN"] != int32(PlaybackSource_UNKNOWN) {
		t.Fatalf("UNKNOWN value = %d", PlaybackSource_value["UNKNOWN"])
	}
}
