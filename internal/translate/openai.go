package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/berrythewa/cliplate/internal/config"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"go.uber.org/zap"
)

const translateInstructions = "You are a translation engine. Translate the user's text into %s. " +
	"Reply with the translation only, without quotes, notes or explanations. " +
	"Keep line breaks and formatting."

// OpenAI translates with a model through the Responses API
type OpenAI struct {
	client *openai.Client
	model  openai.ChatModel
	logger *zap.Logger
}

// NewOpenAI creates an OpenAI translator. The API key falls back to the
// client's own OPENAI_API_KEY lookup when the configuration has none.
func NewOpenAI(cfg config.OpenAIConfig, timeout time.Duration, logger *zap.Logger) (*OpenAI, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, option.WithRequestTimeout(timeout))

	model := cfg.Model
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}

	client := openai.NewClient(opts...)
	return &OpenAI{
		client: &client,
		model:  openai.ChatModel(model),
		logger: logger,
	}, nil
}

// Name returns the provider name
func (o *OpenAI) Name() string {
	return "openai"
}

// Translate asks the model for a translation of text into targetLang
func (o *OpenAI) Translate(ctx context.Context, text, targetLang string) (Translation, error) {
	instructions := fmt.Sprintf(translateInstructions, DisplayName(targetLang))

	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: o.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(inputText(instructions), responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(inputText(text), responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return Translation{}, fmt.Errorf("openai translation failed: %w", err)
	}

	out := strings.TrimSpace(resp.OutputText())
	if out == "" {
		return Translation{}, ErrEmptyResponse
	}

	o.logger.Debug("Translated text",
		zap.String("model", string(o.model)),
		zap.String("target_lang", targetLang),
		zap.Int("chars", len(text)))

	return Translation{
		Source:     text,
		Text:       out,
		TargetLang: targetLang,
		Provider:   o.Name(),
	}, nil
}

func inputText(text string) responses.ResponseInputMessageContentListParam {
	return responses.ResponseInputMessageContentListParam{
		{OfInputText: &responses.ResponseInputTextParam{Text: text}},
	}
}
