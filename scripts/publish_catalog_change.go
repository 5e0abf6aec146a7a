//go:build ignore

// Публикует событие изменения каталога и ждёт, пока dataset-refresh воркер его подтвердит.
//
//	go run scripts/publish_catalog_change.go -redis localhost:6379 -place WP-COL-001
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const stream = "stream:catalog:changed"

type catalogChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	PlaceID    string    `json:"place_id"`
	ChangeType string    `json:"change_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	group := flag.String("group", "dataset-refresh-workers", "Worker consumer group")
	placeID := flag.String("place", "WP-COL-001", "Changed place id")
	changeType := flag.String("type", "updated", "created | updated | deleted")
	wait := flag.Duration("wait", 60*time.Second, "How long to wait for the worker ack")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := catalogChangedEvent{
		EventID:    uuid.New(),
		PlaceID:    *placeID,
		ChangeType: *changeType,
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Place: %s (%s)\n", event.PlaceID, event.ChangeType)
	fmt.Printf("\nWaiting for group %q to ack...\n", *group)

	deadline := time.After(*wait)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			fmt.Println("Timeout: is the worker running with WORKER_ENABLED=true?")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				if g.Pending == 0 && !idBefore(g.LastDeliveredID, id) {
					fmt.Printf("Acked, last delivered %s\n", g.LastDeliveredID)
					return
				}
			}
		}
	}
}

// idBefore сравнивает ID записей стрима вида <ms>-<seq>
func idBefore(a, b string) bool {
	am, as := splitID(a)
	bm, bs := splitID(b)
	if am != bm {
		return am < bm
	}
	return as < bs
}

func splitID(id string) (uint64, uint64) {
	ms, seq, _ := strings.Cut(id, "-")
	m, _ := strconv.ParseUint(ms, 10, 64)
	s, _ := strconv.ParseUint(seq, 10, 64)
	return m, s
}
