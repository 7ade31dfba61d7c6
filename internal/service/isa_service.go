package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/asymmetric-studio/site-api/internal/config"
	"github.com/rs/zerolog"
)

// systemPrompt frames the responder persona. Kept in lockstep with the SMS
// length budget the sales team works to.
const systemPrompt = "You are 'Alex', an expert ISA (Inside Sales Agent) for a high-end luxury real estate agency in Miami. " +
	"Your goal is to respond to new leads within 10 seconds. You must sound human, professional, and helpful. " +
	"Do not mention you are an AI. Keep messages under 160 characters (SMS length). " +
	"Always end with a question to drive engagement."

// ISARequest is the lead context forwarded to the responder
type ISARequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Source  string `json:"source"`
	Inquiry string `json:"inquiry"`
}

// ISAReply is the generated response. Simulated is true when no API key is
// configured and the canned template was used instead of the provider.
type ISAReply struct {
	Message   string `json:"message"`
	Simulated bool   `json:"simulated"`
}

// Chat-completions wire types (OpenAI-compatible)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// isaService is the concrete implementation of ISAService
type isaService struct {
	cfg    *config.ISAConfig
	client *http.Client
	log    zerolog.Logger
}

// newISAService creates a new ISAService
func newISAService(cfg *config.ISAConfig, log zerolog.Logger) *isaService {
	return &isaService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("service", "isa").Logger(),
	}
}

// Respond generates an inside-sales-agent reply for the lead. With an API
// key configured it makes a single chat-completion call (no retry, no
// backoff) and returns the completion verbatim; without one it returns a
// deterministic templated reply.
func (s *isaService) Respond(ctx context.Context, req *ISARequest) (*ISAReply, error) {
	if s.cfg.APIKey == "" {
		return &ISAReply{
			Message: fmt.Sprintf(
				"Hi %s! I'm Alex from the agency. I saw your inquiry on %s via %s. "+
					"Are you looking to book a tour this weekend or would you like the virtual link first?",
				req.Name, req.Address, req.Source),
			Simulated: true,
		}, nil
	}

	body := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"New Lead: %s\nSource: %s\nProperty: %s\nInquiry: %s",
				req.Name, req.Source, req.Address, req.Inquiry)},
		},
		Temperature: 0.7,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Error().Int("status", resp.StatusCode).Msg("Completion provider returned an error")
		return nil, fmt.Errorf("completion provider returned status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("parse completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}

	return &ISAReply{Message: completion.Choices[0].Message.Content, Simulated: false}, nil
}
