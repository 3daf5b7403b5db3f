package main

import (
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const baseURL = "http://localhost:8080/orders/"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	secret := os.Getenv("AUTH_JWT_SECRET")
	userID := os.Getenv("REQUESTER_USER_ID")
	orderID := os.Getenv("REQUESTER_ORDER_ID")
	if secret == "" || userID == "" || orderID == "" {
		logger.Error("AUTH_JWT_SECRET, REQUESTER_USER_ID and REQUESTER_ORDER_ID must be set")
		os.Exit(1)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}).SignedString([]byte(secret))
	if err != nil {
		logger.Error("failed to sign token", "err", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(logger, client, token, orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(logger *slog.Logger, client *http.Client, token, orderID string) {
	id := orderID
	if rand.Intn(5) == 0 {
		id = uuid.NewString()
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+id, nil)
	if err != nil {
		logger.Error("failed to build request", "err", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("request failed", "err", err)
		return
	}
	resp.Body.Close()
	logger.Info("GET", "order_id", id, "status", resp.Status)
}
