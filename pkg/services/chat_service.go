package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/logger"
	"github.com/vchernov/ollama-dashboard/pkg/ollama"
)

type ChatRepository interface {
	Append(sessionID string, turn domain.Turn)
	SeedIfEmpty(sessionID string, turn domain.Turn) []domain.Turn
	Turns(sessionID string) []domain.Turn
	Clear(sessionID string)
}

type ContextFilesRepository interface {
	List(sessionID string) []domain.ContextFile
}

type PromptRepository interface {
	Get(sessionID string) (string, bool)
}

type SettingsRepository interface {
	Save(ctx context.Context, key, value string) error
	GetByKey(ctx context.Context, key string) (string, error)
}

type PromptAssembler interface {
	Assemble(base string, files []domain.ContextFile) string
}

type InferenceGateway interface {
	Chat(ctx context.Context, model string, messages []ollama.Message) (string, error)
}

type chatService struct {
	chatRepo     ChatRepository
	contextRepo  ContextFilesRepository
	promptRepo   PromptRepository
	settingsRepo SettingsRepository
	assembler    PromptAssembler
	gateway      InferenceGateway
}

func NewChatService(
	chatRepo ChatRepository,
	contextRepo ContextFilesRepository,
	promptRepo PromptRepository,
	settingsRepo SettingsRepository,
	assembler PromptAssembler,
	gateway InferenceGateway,
) *chatService {
	return &chatService{
		chatRepo:     chatRepo,
		contextRepo:  contextRepo,
		promptRepo:   promptRepo,
		settingsRepo: settingsRepo,
		assembler:    assembler,
		gateway:      gateway,
	}
}

// SendMessage runs one full user turn: append the user message, assemble the
// system prompt, issue exactly one blocking inference request, and append the
// assistant reply. A gateway failure never propagates: it becomes a visible
// assistant turn so the failure shows up in the transcript and the
// conversation continues. The only local refusal is an unset model, reported
// before anything is appended or sent.
func (c *chatService) SendMessage(ctx context.Context, sessionID, text string) ([]domain.Turn, error) {
	model := c.ActiveModel(ctx)
	if model == "" {
		return nil, domain.ErrNoModelSelected
	}

	userTurn := domain.NewTurn(domain.RoleUser, text)
	c.chatRepo.Append(sessionID, userTurn)

	system := c.assembler.Assemble(c.baseInstruction(sessionID), c.contextRepo.List(sessionID))

	turns := c.chatRepo.Turns(sessionID)
	messages := make([]ollama.Message, 0, len(turns)+1)
	messages = append(messages, ollama.Message{Role: domain.RoleSystem, Content: system})
	for _, t := range turns {
		messages = append(messages, ollama.Message{Role: t.Role, Content: t.Content})
	}

	reply, err := c.gateway.Chat(ctx, model, messages)
	if err != nil {
		slog.WarnContext(ctx, "inference request failed", "model", model, logger.Err(err))
		reply = fmt.Sprintf("⚠️ Could not get a response from the model server: %v", err)
	}

	assistantTurn := domain.NewTurn(domain.RoleAssistant, reply)
	c.chatRepo.Append(sessionID, assistantTurn)

	return []domain.Turn{userTurn, assistantTurn}, nil
}

// History returns the session transcript, seeding the greeting turn on first
// contact so a fresh session never renders empty. Seeding is atomic in the
// repository, so concurrent first requests still end up with one greeting.
func (c *chatService) History(ctx context.Context, sessionID string) []domain.Turn {
	turns := c.chatRepo.Turns(sessionID)
	if len(turns) > 0 {
		return turns
	}

	greeting := c.greetingTurn(c.ActiveModel(ctx))
	return c.chatRepo.SeedIfEmpty(sessionID, greeting)
}

// SwitchModel persists the preference (best effort), clears the transcript
// and seeds exactly one greeting turn for the new model.
func (c *chatService) SwitchModel(ctx context.Context, sessionID, model string) domain.Turn {
	if err := c.settingsRepo.Save(ctx, domain.ModelPreferenceKey, model); err != nil {
		slog.WarnContext(ctx, "saving model preference", logger.Err(err))
	}

	c.chatRepo.Clear(sessionID)
	greeting := c.greetingTurn(model)
	c.chatRepo.Append(sessionID, greeting)

	slog.InfoContext(ctx, "model switched", "model", model)
	return greeting
}

// ActiveModel reads the persisted preference; any read failure degrades to
// "no preference".
func (c *chatService) ActiveModel(ctx context.Context) string {
	model, err := c.settingsRepo.GetByKey(ctx, domain.ModelPreferenceKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.DebugContext(ctx, "reading model preference", logger.Err(err))
		}
		return ""
	}
	return model
}

func (c *chatService) baseInstruction(sessionID string) string {
	if override, ok := c.promptRepo.Get(sessionID); ok {
		return override
	}
	return domain.DefaultSystemPrompt
}

func (c *chatService) greetingTurn(model string) domain.Turn {
	content := lo.Ternary(model != "",
		fmt.Sprintf("🛠️ New chat started with model **%s**. Ask me anything!", model),
		"👋 Welcome! Open **Settings** and pick a model to start chatting.")

	return domain.NewTurn(domain.RoleAssistant, content)
}
