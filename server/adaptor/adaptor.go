package adaptor

import (
	"context"
	"errors"
	"log"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/ponyo877/karaokesh/server/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Adaptor struct {
	uc Usecase
	pb.UnimplementedKaraokeServiceServer
}

func NewAdaptor(uc Usecase) *Adaptor {
	return &Adaptor{uc: uc}
}

// toStatus maps business errors onto gRPC codes. The domain code travels
// as the status message prefix so clients can branch on it.
func toStatus(err error) error {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		if s, ok := status.FromError(err); ok {
			return s.Err()
		}
		return status.Error(codes.Internal, err.Error())
	}

	var code codes.Code
	switch derr.Kind {
	case domain.KindValidation:
		code = codes.InvalidArgument
	case domain.KindNotFound:
		code = codes.NotFound
	case domain.KindCapacity:
		code = codes.ResourceExhausted
	case domain.KindUnavailable:
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}
	return status.Error(code, derr.Code+": "+derr.Message)
}

func toPbBusinessProfile(p domain.BusinessProfile) *pb.BusinessProfile {
	return &pb.BusinessProfile{
		Hostcode:     p.Hostcode,
		BusinessName: p.BusinessName,
		Slogan:       p.Slogan,
		FlyerUrl:     p.FlyerURL,
	}
}

func toPbBusiness(b domain.Business) *pb.Business {
	return &pb.Business{
		BusinessName: b.BusinessName,
		Slogan:       b.Slogan,
		FlyerUrl:     b.FlyerURL,
	}
}

func toPbDevice(d domain.Device) *pb.Device {
	return &pb.Device{
		Id:         d.ID,
		Name:       d.Name,
		UserAgent:  d.UserAgent,
		CreatedAt:  timestamppb.New(d.CreatedAt),
		LastActive: timestamppb.New(d.LastActive),
	}
}

func toPbDevices(devices []domain.Device) []*pb.Device {
	out := make([]*pb.Device, len(devices))
	for i, d := range devices {
		out[i] = toPbDevice(d)
	}
	return out
}

func toPbQueueItem(item domain.QueueItem) *pb.QueueItem {
	q := &pb.QueueItem{
		Id:    item.ID,
		Title: item.Title,
		Genre: item.Genre,
	}
	if u := item.SubmittedBy; u != nil {
		q.SubmittedBy = &pb.UserMessage{
			Username: u.Username,
			PhotoUrl: u.PhotoURL,
			Message:  u.Message,
		}
	}
	return q
}

func toPbQueue(items []domain.QueueItem) []*pb.QueueItem {
	out := make([]*pb.QueueItem, len(items))
	for i, item := range items {
		out[i] = toPbQueueItem(item)
	}
	return out
}

func toPbSession(s domain.Session) *pb.Session {
	return &pb.Session{
		SessionId:  s.ID,
		Hostcode:   s.Hostcode,
		Business:   toPbBusiness(s.Business),
		Devices:    toPbDevices(s.Devices),
		Queue:      toPbQueue(s.Queue),
		LastPlayed: s.LastPlayed,
		Version:    s.Version,
		CreatedAt:  timestamppb.New(s.CreatedAt),
		UpdatedAt:  timestamppb.New(s.UpdatedAt),
	}
}

func toPbSource(source domain.PlaybackSource) pb.PlaybackSource {
	switch source {
	case domain.SourceQueue:
		return pb.PlaybackSource_QUEUE
	case domain.SourceRandom:
		return pb.PlaybackSource_RANDOM
	default:
		return pb.PlaybackSource_UNKNOWN
	}
}

func (a *Adaptor) VerifyHostcode(ctx context.Context, in *pb.VerifyHostcodeRequest) (*pb.VerifyHostcodeResponse, error) {
	profile, err := a.uc.VerifyHostcode(ctx, in.GetHostcode())
	if err != nil {
		log.Printf("Error verifying hostcode %q: %v", in.GetHostcode(), err)
		return nil, toStatus(err)
	}
	return &pb.VerifyHostcodeResponse{Business: toPbBusinessProfile(profile)}, nil
}

func (a *Adaptor) ListHostcodes(ctx context.Context, _ *emptypb.Empty) (*pb.ListHostcodesResponse, error) {
	profiles, err := a.uc.ListHostcodes(ctx)
	if err != nil {
		log.Printf("Error listing hostcodes: %v", err)
		return nil, toStatus(err)
	}
	out := make([]*pb.BusinessProfile, len(profiles))
	for i, p := range profiles {
		out[i] = toPbBusinessProfile(p)
	}
	return &pb.ListHostcodesResponse{Businesses: out}, nil
}

func (a *Adaptor) Connect(ctx context.Context, in *pb.ConnectRequest) (*pb.ConnectResponse, error) {
	session, err := a.uc.GetOrCreateSession(ctx, in.GetHostcode())
	if err != nil {
		log.Printf("Error connecting to %q: %v", in.GetHostcode(), err)
		return nil, toStatus(err)
	}
	return &pb.ConnectResponse{Session: toPbSession(session)}, nil
}

func (a *Adaptor) GetSession(ctx context.Context, in *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	session, err := a.uc.GetSession(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error getting session %s: %v", in.GetSessionId(), err)
		return nil, toStatus(err)
	}
	return &pb.GetSessionResponse{Session: toPbSession(session)}, nil
}

func (a *Adaptor) EndSession(ctx context.Context, in *pb.EndSessionRequest) (*pb.EndSessionResponse, error) {
	ended, err := a.uc.EndSession(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error ending session %s: %v", in.GetSessionId(), err)
		return nil, toStatus(err)
	}
	return &pb.EndSessionResponse{Ended: ended}, nil
}

func (a *Adaptor) RegisterDevice(ctx context.Context, in *pb.RegisterDeviceRequest) (*pb.RegisterDeviceResponse, error) {
	device, err := a.uc.RegisterDevice(ctx, in.GetSessionId(), in.GetName(), in.GetUserAgent())
	if err != nil {
		log.Printf("Error registering device in session %s: %v", in.GetSessionId(), err)
		return nil, toStatus(err)
	}
	return &pb.RegisterDeviceResponse{Device: toPbDevice(device)}, nil
}

func (a *Adaptor) RemoveDevice(ctx context.Context, in *pb.RemoveDeviceRequest) (*pb.RemoveDeviceResponse, error) {
	removed, err := a.uc.RemoveDevice(ctx, in.GetSessionId(), in.GetDeviceId())
	if err != nil {
		log.Printf("Error removing device %s: %v", in.GetDeviceId(), err)
		return nil, toStatus(err)
	}
	return &pb.RemoveDeviceResponse{Removed: removed}, nil
}

func (a *Adaptor) ListDevices(ctx context.Context, in *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	devices, err := a.uc.ListDevices(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error listing devices: %v", err)
		return nil, toStatus(err)
	}
	return &pb.ListDevicesResponse{Devices: toPbDevices(devices)}, nil
}

func (a *Adaptor) SubmitVideo(ctx context.Context, in *pb.SubmitVideoRequest) (*pb.SubmitVideoResponse, error) {
	video := in.GetVideo()
	item := domain.NewQueueItem(video.GetId(), video.GetTitle(), video.GetGenre())

	var user *domain.UserMessage
	if u := in.GetUser(); u != nil {
		user = &domain.UserMessage{
			Username: u.GetUsername(),
			PhotoURL: u.GetPhotoUrl(),
			Message:  u.GetMessage(),
		}
	}

	queued, err := a.uc.SubmitVideo(ctx, in.GetSessionId(), item, user)
	if err != nil {
		log.Printf("Error submitting video: %v", err)
		return nil, toStatus(err)
	}
	return &pb.SubmitVideoResponse{Video: toPbQueueItem(queued)}, nil
}

func (a *Adaptor) NextVideo(ctx context.Context, in *pb.NextVideoRequest) (*pb.NextVideoResponse, error) {
	playback, err := a.uc.NextVideo(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error advancing session %s: %v", in.GetSessionId(), err)
		return nil, toStatus(err)
	}
	res := &pb.NextVideoResponse{
		Source:  toPbSource(playback.Source),
		VideoId: playback.VideoID(),
	}
	if playback.Source == domain.SourceQueue {
		res.Video = toPbQueueItem(playback.Item)
	}
	return res, nil
}

func (a *Adaptor) ListQueue(ctx context.Context, in *pb.ListQueueRequest) (*pb.QueueResponse, error) {
	items, err := a.uc.ListQueue(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error listing queue: %v", err)
		return nil, toStatus(err)
	}
	return &pb.QueueResponse{Queue: toPbQueue(items)}, nil
}

func (a *Adaptor) FilterQueue(ctx context.Context, in *pb.FilterQueueRequest) (*pb.QueueResponse, error) {
	items, err := a.uc.FilterQueue(ctx, in.GetSessionId(), in.GetGenre())
	if err != nil {
		log.Printf("Error filtering queue by %q: %v", in.GetGenre(), err)
		return nil, toStatus(err)
	}
	return &pb.QueueResponse{Queue: toPbQueue(items)}, nil
}

func (a *Adaptor) GetBusinessConfig(ctx context.Context, in *pb.GetBusinessConfigRequest) (*pb.GetBusinessConfigResponse, error) {
	business, err := a.uc.BusinessConfig(ctx, in.GetSessionId())
	if err != nil {
		log.Printf("Error getting business config: %v", err)
		return nil, toStatus(err)
	}
	return &pb.GetBusinessConfigResponse{Business: toPbBusiness(business)}, nil
}
