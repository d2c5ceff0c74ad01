package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"whisp/internal/config"
	"whisp/internal/models"
)

// Notifier delivers moderation events to an external channel. Delivery is
// fire-and-forget: callers log failures and move on, the primary
// operation already committed.
type Notifier interface {
	PostCreated(ctx context.Context, author *models.User, post *models.Post) error
	PostDeleted(ctx context.Context, author *models.User, post *models.Post) error
	AbuseReport(ctx context.Context, reporter *models.User, post *models.Post, reason string) error
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordNotifier(cfg *config.Config) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: cfg.DiscordWebhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func displayName(user *models.User) string {
	if user == nil || user.Name == "" {
		return "Unknown User"
	}
	return user.Name
}

func (n *DiscordNotifier) PostCreated(ctx context.Context, author *models.User, post *models.Post) error {
	fields := []EmbedField{
		{Name: "Content", Value: post.Content},
		{Name: "Author ID", Value: post.AuthorID, Inline: true},
		{Name: "Post ID", Value: post.PostID, Inline: true},
	}
	if post.ImageURL != nil && *post.ImageURL != "" {
		fields = append(fields, EmbedField{Name: "Image URL", Value: *post.ImageURL})
	}

	return n.send(ctx, Embed{
		Title:       "New Post Created",
		Description: fmt.Sprintf("A new post has been created by @**%s**.", displayName(author)),
		Color:       0x00ff00,
		Fields:      fields,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *DiscordNotifier) PostDeleted(ctx context.Context, author *models.User, post *models.Post) error {
	content := post.Content
	if content == "" {
		content = "[No content]"
	}

	return n.send(ctx, Embed{
		Title:       "Post Deleted",
		Description: fmt.Sprintf("A post was deleted by @**%s**.", displayName(author)),
		Color:       0xff0000,
		Fields: []EmbedField{
			{Name: "Post ID", Value: post.PostID, Inline: true},
			{Name: "Author ID", Value: post.AuthorID, Inline: true},
			{Name: "Deleted Content", Value: content},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *DiscordNotifier) AbuseReport(ctx context.Context, reporter *models.User, post *models.Post, reason string) error {
	if reason == "" {
		reason = "No reason provided"
	}

	return n.send(ctx, Embed{
		Title:       "Abuse Report",
		Description: fmt.Sprintf("User @**%s** (%s) reported a post.", displayName(reporter), reporter.Email),
		Color:       0xFFA500,
		Fields: []EmbedField{
			{Name: "Reported Post ID", Value: post.PostID, Inline: true},
			{Name: "Report Reason", Value: reason},
			{Name: "Post Content", Value: post.Content},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *DiscordNotifier) send(ctx context.Context, embed Embed) error {
	if n.webhookURL == "" {
		return fmt.Errorf("DISCORD_WEBHOOK_URL is not configured")
	}

	body, err := json.Marshal(webhookPayload{Embeds: []Embed{embed}})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook error: %d %s - %s", resp.StatusCode, resp.Status, string(text))
	}

	return nil
}
