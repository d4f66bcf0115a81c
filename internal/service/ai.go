package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"dooo/internal/config"
	"dooo/internal/logger"
)

const doooSystemPrompt = "You are Dooo, a helpful AI assistant that helps people with their tasks. " +
	"Be concise, friendly, and actionable. Keep responses under 100 words unless more detail is needed."

// mockResponses stand in for the provider when no API key is configured.
var mockResponses = []string{
	"I'll help you with %q! Here's my approach:\n\n1. **Initial Planning**: break the task into smaller, manageable components.\n2. **Research Phase**: gather the information and resources you need before diving in.\n3. **Execution**: focus on one component at a time, starting with the most time-sensitive parts.\n4. **Review & Iterate**: check your work against your goals and adjust.\n\nLet me know if you need more specific guidance on any of these steps! 🚀",
	"Great task! For %q, I recommend a structured approach:\n\n**Phase 1 - Foundation**: define clear objectives and realistic milestones.\n**Phase 2 - Implementation**: start with the most important aspects and validate as you go.\n**Phase 3 - Refinement**: review, gather feedback, make final adjustments.\n\nWould you like me to elaborate on any phase?",
	"Interesting! %q sounds important. Visualize the end result first, then work backwards to an action plan.\n\n• Set a clear, achievable deadline\n• Gather resources upfront to avoid interruptions\n• Start with the hardest parts when your energy is highest\n• Build in buffer time for surprises\n\nProgress over perfection. You've got this! 💪",
	"Got it! For %q:\n\n**Organization**: keep a dedicated doc for the task and note key decisions as you go.\n**Productivity**: time-box work sessions, cut distractions, and ask for help when stuck.\n\nThis keeps you organized and moving. Need tips on implementation?",
	"Perfect! For %q, split your time roughly 20/60/20:\n\n**📋 Planning**: scope, dependencies, milestones.\n**🚀 Execution**: follow the plan, track progress, adapt as you learn.\n**✨ Polish**: test, refine, document lessons learned.\n\nStart with planning and work your way through! 📝",
}

// fallbackResponses are the shorter set used when a provider call fails.
var fallbackResponses = []string{
	"I'll help you with %q! Here's what I suggest: break it down into smaller steps and tackle them one at a time. Let me know if you need more specific guidance! 🚀",
	"Great task! For %q, I recommend starting with research and planning. Would you like me to help you create a checklist?",
}

type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// HasKey reports whether a provider credential is configured.
func (s *AIService) HasKey() bool { return s.apiKey != "" }

// KeyLooksValid is a format sniff only; OpenAI keys start with "sk-".
func (s *AIService) KeyLooksValid() bool { return strings.HasPrefix(s.apiKey, "sk-") }

// Generate produces Dooo's comment text for a todo. Provider failures are
// swallowed: the caller always gets text, never an error.
func (s *AIService) Generate(ctx context.Context, todoText string) (response string, usedMock bool) {
	if !s.HasKey() {
		logger.Debug("dooo.mock response", "todo_text", todoText)
		return fmt.Sprintf(mockResponses[rand.IntN(len(mockResponses))], todoText), true
	}

	out, err := s.chat(ctx, doooSystemPrompt, "Task: "+todoText)
	if err != nil {
		logger.Warn("dooo.provider failed, using fallback", "err", err)
		return fmt.Sprintf(fallbackResponses[rand.IntN(len(fallbackResponses))], todoText), true
	}
	return out, false
}

func (s *AIService) chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]interface{}{
		"model":       s.model,
		"temperature": 0.7,
		"max_tokens":  300,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, data)
	}

	data, _ := io.ReadAll(resp.Body)
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty choices")
	}
	return result.Choices[0].Message.Content, nil
}
