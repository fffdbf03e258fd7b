//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const stream = "stream:supply-request:created"

type SupplyRequestCreatedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	SupplyRequestID int64     `json:"supply_request_id"`
	NGOID           int64     `json:"ngo_id"`
	WarehouseID     int64     `json:"ware_house_id"`
	Start           string    `json:"start"`
	End             string    `json:"end"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	Charge          int64     `json:"charge"`
	CreatedAt       time.Time `json:"created_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	group := flag.String("group", "route-ledger-workers", "Consumer group of the ledger worker")
	requestID := flag.Int64("request", time.Now().Unix(), "Supply request ID")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Yangon -> Mandalay, тариф 550 за км)
	event := SupplyRequestCreatedEvent{
		EventID:         uuid.New(),
		SupplyRequestID: *requestID,
		NGOID:           7,
		WarehouseID:     2,
		Start:           "Yangon, Myanmar",
		End:             "Mandalay, Myanmar",
		DistanceKm:      12.34,
		DurationMinutes: 21,
		Charge:          6787,
		CreatedAt:       time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Supply request ID: %d\n", event.SupplyRequestID)
	fmt.Printf("   Charge: %d\n", event.Charge)

	// Ожидание подтверждения воркером
	fmt.Printf("\nWaiting for group %s to ack the message...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for ack")
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
				if g.LastDeliveredID >= messageID && g.Pending == 0 {
					fmt.Printf("\nMessage acked by %s (last delivered %s)\n", g.Name, g.LastDeliveredID)
					return
				}
			}
		}
	}
}
