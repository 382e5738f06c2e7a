// Package main provides a fan-out load test for the live post feed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"devconnector/internal/client/api"
	"devconnector/internal/models"

	"github.com/gorilla/websocket"
)

// Metrics tracks the test results
type Metrics struct {
	ConnectionsAttempted int64
	ConnectionsSuccess   int64
	ConnectionsFailed    int64
	PostsPublished       int64
	EventsReceived       int64
	Errors               int64
}

var metrics Metrics

func main() {
	host := flag.String("host", "localhost:5000", "API server host")
	email := flag.String("email", "", "Test user email (a seeded user works)")
	password := flag.String("password", "password123", "Test user password")
	clients := flag.Int("clients", 8, "Number of concurrent feed sockets (the server allows 8 per user)")
	interval := flag.Duration("interval", 2*time.Second, "Time between published posts")
	duration := flag.Duration("duration", 30*time.Second, "Test duration")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: feedtest -email <user> [-password p] [-clients n]")
	}

	log.Printf("🚀 Starting Feed Load Test")
	log.Printf("Target: %s", *host)
	log.Printf("Clients: %d", *clients)
	log.Printf("Duration: %v", *duration)

	client := api.New(api.Config{BaseURL: fmt.Sprintf("http://%s/api", *host)})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	auth, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	cancel()
	if err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}
	client.SetAuthToken(auth.Token)
	log.Printf("✅ Logged in successfully")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	stopChan := make(chan struct{})

	for i := 0; i < *clients; i++ {
		wg.Add(1)
		go runClient(*host, auth.Token, stopChan, &wg)
		time.Sleep(10 * time.Millisecond)
	}

	wg.Add(1)
	go publish(client, *interval, stopChan, &wg)

	select {
	case <-time.After(*duration):
		log.Println("⏱️  Test duration reached")
	case <-interrupt:
		log.Println("🛑 Interrupted by user")
	}

	close(stopChan)
	log.Println("Waiting for clients to disconnect...")
	wg.Wait()

	printMetrics(*clients)
}

// publish creates a post every interval so each socket should see one
// post_created event per post.
func publish(client *api.Client, interval time.Duration, stopChan <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_, err := client.CreatePost(ctx, fmt.Sprintf("Feed load test post %d", n))
			cancel()
			if err != nil {
				atomic.AddInt64(&metrics.Errors, 1)
				continue
			}
			atomic.AddInt64(&metrics.PostsPublished, 1)
		}
	}
}

func runClient(host, token string, stopChan <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	atomic.AddInt64(&metrics.ConnectionsAttempted, 1)

	u := url.URL{Scheme: "ws", Host: host, Path: "/api/ws", RawQuery: "token=" + url.QueryEscape(token)}

	c, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		atomic.AddInt64(&metrics.ConnectionsFailed, 1)
		atomic.AddInt64(&metrics.Errors, 1)
		return
	}
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = c.Close() }()

	atomic.AddInt64(&metrics.ConnectionsSuccess, 1)

	go func() {
		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				return
			}
			var ev models.FeedEvent
			if json.Unmarshal(raw, &ev) == nil && ev.Type == models.FeedPostCreated {
				atomic.AddInt64(&metrics.EventsReceived, 1)
			}
		}
	}()

	<-stopChan
	_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func printMetrics(clients int) {
	published := atomic.LoadInt64(&metrics.PostsPublished)
	received := atomic.LoadInt64(&metrics.EventsReceived)
	connected := atomic.LoadInt64(&metrics.ConnectionsSuccess)

	log.Println("\n📊 Test Results")
	log.Println("===============")
	log.Printf("Connections Attempted: %d", atomic.LoadInt64(&metrics.ConnectionsAttempted))
	log.Printf("Connections Successful: %d", connected)
	log.Printf("Connections Failed: %d", atomic.LoadInt64(&metrics.ConnectionsFailed))
	log.Printf("Posts Published: %d", published)
	log.Printf("Events Received: %d", received)
	if expected := published * connected; expected > 0 {
		log.Printf("Delivery: %.1f%% of %d expected (%d clients)", float64(received)*100/float64(expected), expected, clients)
	}
	log.Printf("Total Errors: %d", atomic.LoadInt64(&metrics.Errors))
}
