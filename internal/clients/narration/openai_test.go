package narration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/clients/narration"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

type OpenAIGeneratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	status   int
	content  string
	received map[string]any
}

func TestOpenAIGeneratorSuite(t *testing.T) {
	suite.Run(t, new(OpenAIGeneratorTestSuite))
}

func (s *OpenAIGeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.status = http.StatusOK
	s.content = "The goblin snarls and raises its scimitar."
	s.received = nil

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &s.received)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		if s.status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1720000000,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": s.content},
			}},
		})
	}))
}

func (s *OpenAIGeneratorTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenAIGeneratorTestSuite) generator() narration.Generator {
	gen, err := narration.NewOpenAI(&narration.Config{
		BaseURL: s.server.URL + "/v1/",
		APIKey:  "test-key",
		Model:   "test-model",
	})
	s.Require().NoError(err)
	return gen
}

func (s *OpenAIGeneratorTestSuite) input() *narration.GenerateInput {
	return &narration.GenerateInput{
		CampaignID: "campaign_1",
		SceneName:  "Goblin Cave",
		Prompt:     "Describe the goblin's reaction",
		InCombat:   true,
		Round:      2,
		Tokens: []narration.TokenSummary{
			{Name: "Mira", Kind: "character", Statuses: []string{"hidden"}},
			{Name: "Goblin", Kind: "monster"},
		},
	}
}

func (s *OpenAIGeneratorTestSuite) TestGenerate() {
	out, err := s.generator().Generate(s.ctx, s.input())
	s.Require().NoError(err)
	s.Assert().True(out.Success)
	s.Assert().Equal("The goblin snarls and raises its scimitar.", out.Text)

	s.Require().NotNil(s.received)
	s.Assert().Equal("test-model", s.received["model"])
	messages, ok := s.received["messages"].([]any)
	s.Require().True(ok)
	s.Require().Len(messages, 2)
	user, _ := messages[1].(map[string]any)
	s.Assert().Contains(user["content"], "Scene: Goblin Cave")
	s.Assert().Contains(user["content"], "round 2")
	s.Assert().Contains(user["content"], "- Mira (character) [hidden]")
	s.Assert().Contains(user["content"], "Describe the goblin's reaction")
}

func (s *OpenAIGeneratorTestSuite) TestEmptyCompletionIsUnsuccessful() {
	s.content = "   "

	out, err := s.generator().Generate(s.ctx, s.input())
	s.Require().NoError(err)
	s.Assert().False(out.Success)
	s.Assert().NotEmpty(out.Error)
}

func (s *OpenAIGeneratorTestSuite) TestServerErrorIsUnavailable() {
	s.status = http.StatusServiceUnavailable

	_, err := s.generator().Generate(s.ctx, s.input())
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *OpenAIGeneratorTestSuite) TestPromptRequired() {
	_, err := s.generator().Generate(s.ctx, &narration.GenerateInput{Prompt: "  "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OpenAIGeneratorTestSuite) TestConfigValidation() {
	_, err := narration.NewOpenAI(&narration.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = narration.NewOpenAI(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OpenAIGeneratorTestSuite) TestDisabled() {
	_, err := narration.NewDisabled().Generate(s.ctx, s.input())
	s.Assert().True(errors.IsUnavailable(err))
}
