// Package loki is a minimal batching client for the Loki push API.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives failures of background batch sends; the caller decides
// where they go (normally logrus, marked so the hook does not loop).
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {

	// URL of the loki push endpoint, e.g. https://loki.example.com/loki/api/v1/push
	URL string `validate:"required"`

	// Labels added to every pushed stream.
	Labels map[string]string

	// BatchMaxSize is the number of buffered entries that forces a send.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the longest a buffered entry waits before a send.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Username and Password enable basic auth when both are set.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type pushRequest struct {
	Streams []pushStream `json:"streams"`
}

type pushStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

type Client struct {
	config    *Config
	ctx       context.Context
	cancel    context.CancelFunc
	http      *http.Client
	entries   chan LogEntry
	quit      chan struct{}
	waitGroup sync.WaitGroup
	batch     [][2]string
	logger    Logger
}

func New(ctx context.Context, cfg Config, logger Logger) (*Client, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &Client{
		config:  &cfg,
		ctx:     ctx,
		cancel:  cancel,
		http:    &http.Client{},
		entries: make(chan LogEntry),
		quit:    make(chan struct{}),
		batch:   make([][2]string, 0, cfg.BatchMaxSize),
		logger:  logger,
	}

	c.waitGroup.Add(1)
	go c.run()
	return c, nil
}

// Push queues one entry for the next batch.
func (c *Client) Push(e LogEntry) {
	c.entries <- e
}

// Stop flushes the pending batch and stops the send loop.
func (c *Client) Stop() {
	close(c.quit)
	c.waitGroup.Wait()
	c.cancel()
}

func (c *Client) run() {
	ticker := time.NewTicker(c.config.BatchMaxWait)
	defer ticker.Stop()

	flush := func() {
		if len(c.batch) == 0 {
			return
		}
		if err := c.send(); err != nil {
			c.logger.Error("failed to send logs to loki", "error", err)
		}
		c.batch = c.batch[:0]
	}

	defer func() {
		flush()
		c.waitGroup.Done()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.quit:
			return
		case entry := <-c.entries:
			c.append(entry)
			if len(c.batch) >= c.config.BatchMaxSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (c *Client) append(entry LogEntry) {
	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	c.batch = append(c.batch, [2]string{timestamp, string(line)})
}

func (c *Client) send() error {
	buf := &bytes.Buffer{}
	gz := gzip.NewWriter(buf)

	payload := pushRequest{Streams: []pushStream{{
		Stream: c.config.Labels,
		Values: c.batch,
	}}}
	if err := json.NewEncoder(gz).Encode(payload); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.config.URL, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	if c.config.Username != "" && c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected response code from loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
