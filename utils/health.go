package utils

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/iterator"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Firestore bool      `json:"firestore"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The first check runs before it returns, so the health endpoint
// never serves an unchecked zero snapshot.
func StartHealthMonitor(redisClient *redis.Client, fsClient *firestore.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisHealthy := redisClient.Ping(ctx).Err() == nil

		// Listing collections doubles as a Firestore reachability probe.
		firestoreHealthy := false
		if fsClient != nil {
			_, err := fsClient.Collections(ctx).Next()
			firestoreHealthy = err == nil || err == iterator.Done
		}

		mu.Lock()
		currentHealth = HealthStatus{
			Firestore: firestoreHealthy,
			Redis:     redisHealthy,
			CheckedAt: time.Now(),
		}
		mu.Unlock()
	}

	check()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
