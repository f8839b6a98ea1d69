package describer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"auction-marketplace/internal/auctionerrors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	maxImageBytes = 5 << 20
	systemPrompt  = "You write listing descriptions for an online auction marketplace. " +
		"Describe the item in two or three short paragraphs: what it is, its visible condition, " +
		"and notable details a bidder would care about. Do not invent provenance or prices."
)

// Describer generates listing text from a title and/or a photo.
type Describer struct {
	client *openai.Client
	model  string
}

func New(apiKey, model string) *Describer {
	return NewWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewWithConfig allows pointing the client at a different base URL.
func NewWithConfig(cfg openai.ClientConfig, model string) *Describer {
	return &Describer{client: openai.NewClientWithConfig(cfg), model: model}
}

// Describe returns a generated description. imageBase64 may be raw base64 or a data URL.
func (d *Describer) Describe(ctx context.Context, imageBase64, title string) (string, error) {
	title = strings.TrimSpace(title)
	imageBase64 = strings.TrimSpace(imageBase64)
	if title == "" && imageBase64 == "" {
		return "", auctionerrors.ErrInvalidPrompt
	}

	text := "Write a description for this auction item."
	if title != "" {
		text = fmt.Sprintf("Write a description for an auction item titled %q.", title)
	}
	parts := []openai.ChatMessagePart{{Type: openai.ChatMessagePartTypeText, Text: text}}

	if imageBase64 != "" {
		url, err := imageDataURL(imageBase64)
		if err != nil {
			return "", err
		}
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: url, Detail: openai.ImageURLDetailLow},
		})
	}

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     d.model,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", auctionerrors.ErrDescribeFailure, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", auctionerrors.ErrDescribeFailure)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// imageDataURL validates the payload and returns it as a data URL with a sniffed content type.
func imageDataURL(encoded string) (string, error) {
	if strings.HasPrefix(encoded, "data:") {
		if i := strings.Index(encoded, ","); i >= 0 {
			encoded = encoded[i+1:]
		}
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: image is not valid base64", auctionerrors.ErrInvalidPrompt)
	}
	if len(raw) > maxImageBytes {
		return "", fmt.Errorf("%w: image larger than %d bytes", auctionerrors.ErrInvalidPrompt, maxImageBytes)
	}

	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s is not an image", auctionerrors.ErrInvalidPrompt, contentType)
	}
	return "data:" + contentType + ";base64," + encoded, nil
}
