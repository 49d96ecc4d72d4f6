// Command loadtest registers a batch of accounts against a running server and
// has each of them post messages.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/johndosdos/chirp/internal/model"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	accounts := flag.Int("accounts", 10, "number of accounts to register")
	messages := flag.Int("messages", 20, "messages posted per account")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var failures atomic.Int64
	var wg sync.WaitGroup
	start := time.Now()

	for range *accounts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			acct, err := post[model.Account](client, *baseURL+"/register", model.Account{
				Username: "load-" + uuid.NewString(),
				Password: "password",
			})
			if err != nil {
				log.Printf("failed to register account: %v", err)
				failures.Add(1)
				return
			}

			for i := range *messages {
				_, err := post[model.Message](client, *baseURL+"/messages", model.Message{
					PostedBy: acct.ID,
					Text:     fmt.Sprintf("message %d from %s", i, acct.Username),
					PostedAt: time.Now().UnixMilli(),
				})
				if err != nil {
					log.Printf("failed to create message: %v", err)
					failures.Add(1)
				}
			}
		}()
	}

	wg.Wait()

	total := *accounts * (*messages + 1)
	log.Printf("sent %d requests in %v, %d failed", total, time.Since(start), failures.Load())
}

func post[T any](client *http.Client, url string, body any) (T, error) {
	var out T

	payload, err := json.Marshal(body)
	if err != nil {
		return out, fmt.Errorf("could not encode payload to JSON: %w", err)
	}

	res, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return out, fmt.Errorf("failed to send POST request to [%s]: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return out, fmt.Errorf("POST [%s] returned %s", url, res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("could not decode response: %w", err)
	}

	return out, nil
}
