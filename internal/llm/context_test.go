package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_CancelsSlowCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("timeout did not fire")
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("unexpected model id %q", p.ModelID())
	}
}

func TestTimeout_NotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: context.DeadlineExceeded}},
		MockJSON(map[string]bool{"ok": true}),
	)
	p := WithRetry(mock, retryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected deadline error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
