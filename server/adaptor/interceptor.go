package adaptor

import (
	"context"
	"log"
	"net"
	"path"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ponyo877/karaokesh/server/metrics"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs one line per RPC and records its metrics.
func LoggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		method := path.Base(info.FullMethod)
		metrics.ObserveRPC(method, code.String(), elapsed)
		if logger != nil {
			logger.Printf("rpc %s peer=%s code=%s duration=%s", method, peerKey(ctx), code, elapsed)
		}
		return resp, err
	}
}

type peerLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter keeps one token bucket per remote host.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters sync.Map
}

// NewRateLimiter returns a limiter allowing rps requests per second per
// peer with the given burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limit: rate.Limit(rps), burst: burst}
}

func (l *RateLimiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}
	return l.get(key, time.Now()).Allow()
}

func (l *RateLimiter) get(key string, now time.Time) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		entry := v.(*peerLimiter)
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}
	entry := &peerLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
	entry.lastSeen.Store(now.UnixNano())
	actual, loaded := l.limiters.LoadOrStore(key, entry)
	if loaded {
		actual.(*peerLimiter).lastSeen.Store(now.UnixNano())
	}
	return actual.(*peerLimiter).limiter
}

// Sweep drops limiters not used since cutoff and returns how many went.
func (l *RateLimiter) Sweep(cutoff time.Time) int {
	removed := 0
	l.limiters.Range(func(key, value any) bool {
		if value.(*peerLimiter).lastSeen.Load() < cutoff.UnixNano() {
			l.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps idle limiters every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Sweep(now.Add(-interval))
		}
	}
}

func (l *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !l.Allow(peerKey(ctx)) {
			metrics.IncRateLimited(path.Base(info.FullMethod))
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
