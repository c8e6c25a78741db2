package adaptor

import (
	"context"

	"github.com/ponyo877/karaokesh/server/domain"
)

type Usecase interface {
	VerifyHostcode(ctx context.Context, hostcode string) (domain.BusinessProfile, error)
	ListHostcodes(ctx context.Context) ([]domain.BusinessProfile, error)
	GetOrCreateSession(ctx context.Context, hostcode string) (domain.Session, error)
	GetSession(ctx context.Context, sessionID string) (domain.Session, error)
	EndSession(ctx context.Context, sessionID string) (bool, error)
	RegisterDevice(ctx context.Context, sessionID, name, userAgent string) (domain.Device, error)
	RemoveDevice(ctx context.Context, sessionID, deviceID string) (bool, error)
	ListDevices(ctx context.Context, sessionID string) ([]domain.Device, error)
	SubmitVideo(ctx context.Context, sessionID string, item domain.QueueItem, user *domain.UserMessage) (domain.QueueItem, error)
	NextVideo(ctx context.Context, sessionID string) (domain.Playback, error)
	ListQueue(ctx context.Context, sessionID string) ([]domain.QueueItem, error)
	FilterQueue(ctx context.Context, sessionID, genre string) ([]domain.QueueItem, error)
	BusinessConfig(ctx context.Context, sessionID string) (domain.Business, error)
}
