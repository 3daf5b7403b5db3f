package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var products = []struct {
	name  string
	price int64
}{
	{"Linen Shirt", 15000},
	{"Denim Jacket", 42000},
	{"Canvas Tote", 8500},
	{"Wool Scarf", 12000},
}

var statuses = []entities.Status{
	entities.StatusShipped,
	entities.StatusDelivered,
	entities.StatusCancelled,
}

func randomOrder() entities.Order {
	n := rand.Intn(3) + 1
	items := make([]entities.Item, 0, n)
	total := decimal.Zero
	for range n {
		p := products[rand.Intn(len(products))]
		it := entities.Item{
			ProductID:   uuid.NewString(),
			ProductName: p.name,
			Quantity:    rand.Intn(3) + 1,
			Size:        []string{"S", "M", "L"}[rand.Intn(3)],
			UnitPrice:   decimal.NewFromInt(p.price),
		}
		items = append(items, it)
		total = total.Add(it.Subtotal())
	}

	method := entities.PaymentCard
	status := entities.StatusPaid
	if rand.Intn(2) == 0 {
		method = entities.PaymentBankTransfer
		status = entities.StatusPaymentReview
	}

	return entities.Order{
		ID:     uuid.NewString(),
		UserID: uuid.NewString(),
		Shipping: entities.Shipping{
			Name:    "Jane Doe",
			Email:   fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
			Phone:   fmt.Sprintf("+234%09d", rand.Intn(999999999)),
			Address: fmt.Sprintf("%d Market Street", rand.Intn(100)+1),
			City:    "Lagos",
		},
		Items:         items,
		TotalAmount:   total,
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     time.Now(),
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	brokers := "localhost:9092"
	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		brokers = v
	}
	publisher := notify.NewPublisher(config.Kafka{
		Brokers:      strings.Split(brokers, ","),
		Topic:        "order-notifications",
		BatchTimeout: 10 * time.Millisecond,
	})
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := randomOrder()
			if err := publisher.NotifyOrderCreated(ctx, order); err != nil {
				logger.Error("failed to publish event", "err", err)
				continue
			}
			logger.Info("order created event", "order_id", order.ID)

			if rand.Intn(3) == 0 {
				order.Status = statuses[rand.Intn(len(statuses))]
				if order.Status == entities.StatusCancelled {
					order.CancellationReason = "out of stock"
				}
				if err := publisher.NotifyStatusChanged(ctx, order); err != nil {
					logger.Error("failed to publish event", "err", err)
					continue
				}
				logger.Info("status changed event", "order_id", order.ID, "status", order.Status)
			}
		case <-ctx.Done():
			return
		}
	}
}
