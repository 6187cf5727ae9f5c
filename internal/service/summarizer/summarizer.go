package summarizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"pdfsummarizer/internal/config"
)

var (
	// ErrEmptyGeneration means the model produced no text at all.
	ErrEmptyGeneration = errors.New("model did not generate any response; check that the model runtime is running and the model is available")
	// ErrSummarizationFailed wraps any failure raised by the model runtime.
	// There is no fallback summarizer: misconfiguration must surface to the
	// operator instead of degrading silently.
	ErrSummarizationFailed = errors.New("failed to generate summary")
)

const instruction = `You are an expert document summarizer with deep analytical skills. Your task is to:

1. Carefully read and analyze the provided PDF document text
2. Identify the main themes, key points, and important details
3. Create a comprehensive yet concise summary that captures:
   - The document's primary purpose and main arguments
   - Key findings, data, or evidence presented
   - Important conclusions or recommendations
   - Any significant implications or takeaways

4. Structure your summary clearly with:
   - An opening statement about the document's topic
   - Well-organized paragraphs covering main points
   - A concluding statement if applicable

5. Keep the summary between 100-200 words depending on the document's length and complexity
6. Use clear, professional language that is accessible to a general audience
7. Maintain objectivity and accuracy - don't add information not present in the original text

Provide your summary directly without any preamble or meta-commentary.`

// Service turns extracted document text into a summary through the
// configured OpenAI-compatible chat model (Ollama or LiteLLM proxy).
type Service struct {
	chatModel model.BaseChatModel
	modelName string
}

// New builds the chat model for the active configuration profile. The model
// is constructed once at boot; per-request state lives in Sessions only.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.ModelBaseURL(),
		Model:   cfg.ModelName,
		APIKey:  cfg.ModelAPIKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return &Service{chatModel: chatModel, modelName: cfg.ModelName}, nil
}

// Summarize streams a summary of documentText from the model and collects
// the response fragments, in arrival order, into a single string.
func (s *Service) Summarize(ctx context.Context, documentText string) (string, error) {
	sess := NewSession()
	log.Printf("summarize start: app=%s user=%s session=%s model=%s", sess.AppName, sess.UserID, sess.SessionID, s.modelName)

	messages := []*schema.Message{
		{Role: schema.System, Content: instruction},
		{Role: schema.User, Content: buildPrompt(documentText)},
	}

	streamReader, err := s.chatModel.Stream(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}
	defer streamReader.Close()

	var full strings.Builder
	for {
		chunk, err := streamReader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
		}
		full.WriteString(chunk.Content)
	}

	summary := strings.TrimSpace(full.String())
	if summary == "" {
		return "", ErrEmptyGeneration
	}
	log.Printf("summarize done: session=%s chars=%d", sess.SessionID, len(summary))
	return summary, nil
}

func buildPrompt(documentText string) string {
	return fmt.Sprintf("Please summarize the following PDF document:\n\n%s\n\nProvide a comprehensive summary following the guidelines in your instructions.", documentText)
}
