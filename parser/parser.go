// Package parser extracts transaction drafts from free text and receipt
// images with the Gemini API. Model output is untrusted: it is schema
// constrained, fenced-code tolerant, and still validated on the way in.
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cenkalti/backoff/v4"
	"github.com/etnz/smartledger"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client calls the Gemini API to turn text or images into drafts.
type Client struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithModel selects the model to call.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger attaches a structured logger to the client.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a parser client. The API key falls back to the GEMINI_API_KEY
// environment variable; without one it fails with ErrCredentialMissing
// before any network traffic.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("create parser client: %w", smartledger.ErrCredentialMissing)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c := &Client{client: client, model: DefaultModel, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseText extracts a single draft from free text. It returns (nil, nil)
// when the text holds no recognizable transaction.
func (c *Client) ParseText(ctx context.Context, input string) (*smartledger.Draft, error) {
	contents := []*genai.Content{{Parts: []*genai.Part{
		{Text: textPrompt(input)},
	}}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   draftSchema,
	}
	raw, err := c.generate(ctx, "text", contents, config)
	if err != nil {
		return nil, err
	}
	raw = cleanModelJSON(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var d smartledger.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("cannot decode extraction output %q: %w", raw, err)
	}
	if d.Amount == 0 {
		return nil, nil
	}
	d.Kind = smartledger.ParseKind(string(d.Kind))
	return &d, nil
}

// ParseImage extracts drafts from a receipt or screenshot image. An empty
// slice means the model found nothing.
func (c *Client) ParseImage(ctx context.Context, data []byte, mime string) ([]smartledger.Draft, error) {
	contents := []*genai.Content{{Parts: []*genai.Part{
		{Text: imagePrompt()},
		{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
	}}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   draftListSchema,
	}
	raw, err := c.generate(ctx, "image", contents, config)
	if err != nil {
		return nil, err
	}
	drafts, err := decodeDrafts(raw)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		drafts[i].Kind = smartledger.ParseKind(string(drafts[i].Kind))
	}
	return drafts, nil
}

// generate calls the model, retrying transient failures with exponential
// backoff.
func (c *Client) generate(ctx context.Context, op string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	var text string
	start := time.Now()
	attempts := 0
	call := func() error {
		attempts++
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			return err
		}
		text = resp.Text()
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	err := backoff.Retry(call, policy)
	c.log.Debug().
		Str("op", op).
		Str("model", c.model).
		Int("attempts", attempts).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("generate content")
	if err != nil {
		return "", fmt.Errorf("extraction call failed: %w", err)
	}
	return text, nil
}

// cleanModelJSON strips markdown code fences some models wrap around JSON.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// decodeDrafts decodes a draft array, tolerating the envelope object
// ({"transactions": [...]}) some models produce despite the schema.
func decodeDrafts(raw string) ([]smartledger.Draft, error) {
	raw = cleanModelJSON(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var drafts []smartledger.Draft
	if err := json.Unmarshal([]byte(raw), &drafts); err == nil {
		return drafts, nil
	}
	var envelope any
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("cannot decode extraction output %q: %w", raw, err)
	}
	inner, err := jsonpath.Get("$.transactions", envelope)
	if err != nil {
		return nil, fmt.Errorf("cannot locate transactions in extraction output: %w", err)
	}
	data, err := json.Marshal(inner)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode extraction output: %w", err)
	}
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("cannot decode extraction output %q: %w", raw, err)
	}
	return drafts, nil
}
