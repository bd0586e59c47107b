package assistant

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

// System instruction ported from the product's HR assistant: professional,
// concise, replies in Arabic.
const systemInstruction = `أنت مساعد موارد بشرية (HR Assistant) ذكي ومحترف.
مهمتك هي مساعدة مديري الموارد البشرية في:
1. كتابة الأوصاف الوظيفية.
2. الإجابة على استفسارات الموظفين حول سياسات العمل (بناءً على المعايير العالمية).
3. صياغة رسائل البريد الإلكتروني الرسمية (قبول، رفض، تنبيه).
4. تقديم نصائح لتحسين بيئة العمل.
يجب أن تكون إجاباتك باللغة العربية، مهنية، واضحة، ومختصرة قدر الإمكان.`

const (
	// EmptyReply is returned when the service answers with no text.
	EmptyReply = "عذراً، لم أتمكن من معالجة طلبك حالياً."
	// ErrorReply substitutes any transport or service failure; the chat
	// transcript always continues.
	ErrorReply = "حدث خطأ أثناء الاتصال بخدمة الذكاء الاصطناعي."
)

type Status string

// Each Ask call moves pending -> done or pending -> failed; there is no
// retry. Cancellation arrives through the caller's context.
const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

type Exchange struct {
	Prompt string `json:"prompt"`
	Reply  string `json:"reply"`
	Status Status `json:"status"`
}

type Service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New builds the assistant. An empty API key yields a disabled service whose
// replies are the fixed error string, so the chat surface keeps working
// without credentials.
func New(ctx context.Context, apiKey, model string, timeout time.Duration) (*Service, error) {
	svc := &Service{model: model, timeout: timeout}
	if apiKey == "" {
		return svc, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	svc.client = client
	return svc, nil
}

func (s *Service) Enabled() bool {
	return s.client != nil
}

// Ask performs a single stateless request/response exchange. No transcript
// history is sent; failures never propagate past the fixed error reply.
func (s *Service) Ask(ctx context.Context, prompt string) Exchange {
	exchange := Exchange{Prompt: prompt, Status: StatusPending}
	if s.client == nil {
		exchange.Reply = ErrorReply
		exchange.Status = StatusFailed
		return exchange
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		slog.Warn("assistant call failed", "err", err)
		exchange.Reply = ErrorReply
		exchange.Status = StatusFailed
		return exchange
	}

	text := result.Text()
	if text == "" {
		text = EmptyReply
	}
	exchange.Reply = text
	exchange.Status = StatusDone
	return exchange
}
