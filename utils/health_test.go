package utils

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestHealthSnapshotPopulatedAtStart(t *testing.T) {
	// Port 1 is never listening, so both probes fail fast; the point is
	// that a snapshot exists before the first ticker interval elapses.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	StartHealthMonitor(client, nil)

	status := GetHealthStatus()
	if status.CheckedAt.IsZero() {
		t.Fatal("expected an initial health check before the first tick")
	}
	if status.Redis {
		t.Fatal("expected redis reported unhealthy with no server listening")
	}
	if status.Firestore {
		t.Fatal("expected firestore reported unhealthy with no client")
	}
}
