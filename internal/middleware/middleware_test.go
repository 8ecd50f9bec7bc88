package middleware

import (
	"catalog/pkg/events"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(10)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request must pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("burst of one must reject the second immediate request")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("other clients keep their own allowance")
	}
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := NewRateLimiter(10)

	var (
		allowed atomic.Int32
		wg      sync.WaitGroup
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.9") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Fatalf("expected exactly one request through a burst of one, got %d", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		perMin   int
		requests int
		want     []int
	}{
		{name: "disabled", perMin: 0, requests: 3, want: []int{200, 200, 200}},
		{name: "limited", perMin: 10, requests: 2, want: []int{200, 429}},
		{name: "burst", perMin: 100, requests: 11, want: []int{200, 200, 200, 200, 200, 200, 200, 200, 200, 200, 429}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(NewRateLimitMiddleware(tt.perMin))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

			for i := 0; i < tt.requests; i++ {
				resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
				if err != nil {
					t.Fatalf("request %d failed: %v", i, err)
				}
				if resp.StatusCode != tt.want[i] {
					t.Fatalf("request %d: expected %d, got %d", i, tt.want[i], resp.StatusCode)
				}
			}
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewTraceMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(events.TraceIDFromContext(c.UserContext()))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(TraceHeader, "abc-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := resp.Header.Get(TraceHeader); got != "abc-123" {
		t.Fatalf("expected trace id echoed, got %q", got)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.Header.Get(TraceHeader) == "" {
		t.Fatal("expected a generated trace id")
	}
}
