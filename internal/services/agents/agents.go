// Package agents fronts the assistant agents behind a ReasoningProvider. The
// only provider shipped is a canned one that answers by keyword.
package agents

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/scoring"
)

var (
	ErrUnknownAgent = errors.New("unknown agent")
	ErrEmptyPrompt  = errors.New("prompt is required")
)

type Request struct {
	Prompt    string         `json:"prompt"`
	SessionID string         `json:"sessionId,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

type Response struct {
	Response   string   `json:"response"`
	SessionID  string   `json:"sessionId"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

// ReasoningProvider answers a prompt. Implementations must honour ctx.
type ReasoningProvider interface {
	Invoke(ctx context.Context, req Request) (Response, error)
}

type Kind string

const (
	KindCompliance Kind = "compliance"
	KindRisk       Kind = "risk"
	KindDocument   Kind = "document"
)

var defaultSources = []string{"EU GMP Guidelines", "FDA Regulations", "Supplier Documentation"}

type reply struct {
	keywords []string
	text     string
}

var cannedReplies = map[Kind]struct {
	matched  reply
	fallback string
}{
	KindCompliance: {
		matched: reply{
			keywords: []string{"score", "compliance"},
			text:     "Based on my analysis of the supplier's compliance documentation, I've identified several key factors:\n\n1. **EU GMP Certification**: Current and valid until 2025\n2. **FDA Registration**: Up to date with all required submissions\n3. **Quality Management**: Strong procedures in place\n4. **Documentation**: Complete and well-maintained\n\nOverall compliance score: 92%. This supplier demonstrates excellent adherence to pharmaceutical manufacturing standards.",
		},
		fallback: "I've analyzed the compliance requirements and found that the supplier meets 94% of all regulatory standards. Key strengths include robust quality management systems and current certifications.",
	},
	KindRisk: {
		matched: reply{
			keywords: []string{"risk", "assessment"},
			text:     "Risk assessment completed. Key findings:\n\n**Low Risk Factors:**\n- Financial stability: Excellent\n- Regulatory compliance: Strong\n- Quality track record: Consistent\n\n**Medium Risk Factors:**\n- Geographic concentration\n- Single facility dependency\n\nOverall risk level: LOW. Recommended for continued partnership with standard monitoring protocols.",
		},
		fallback: "Based on predictive models and historical data, this supplier presents a low risk profile with a 2.3% probability of compliance issues in the next 12 months.",
	},
	KindDocument: {
		matched: reply{
			keywords: []string{"document", "validation"},
			text:     "Document validation complete. Analysis results:\n\n**Valid Documents (8/10):**\n- EU GMP Certificate\n- FDA Registration\n- ISO 15378 Certification\n- Quality Manual\n\n**Issues Found (2/10):**\n- Sustainability report: Outdated (6 months)\n- Risk assessment: Missing supplier diversity metrics\n\nRecommendation: Request updated sustainability report and enhanced risk documentation.",
		},
		fallback: "I've processed and validated the submitted documents. 80% are compliant with current requirements. Minor updates needed for sustainability reporting.",
	},
}

const genericReply = "I've analyzed your request and provided recommendations based on current pharmaceutical industry standards and regulatory requirements."

// CannedAgent answers from a fixed table keyed by prompt keywords.
type CannedAgent struct {
	Kind    Kind
	Latency time.Duration
	Jitter  scoring.Jitter
	Clock   clockwork.Clock
}

func (a CannedAgent) Invoke(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Response{}, ErrEmptyPrompt
	}
	clock := a.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if a.Latency > 0 {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case <-clock.After(a.Latency):
		}
	}
	jitter := a.Jitter
	if jitter == nil {
		jitter = scoring.NoJitter{}
	}

	session := req.SessionID
	if session == "" {
		session = "session-" + uuid.NewString()
	}
	return Response{
		Response:   a.answer(req.Prompt),
		SessionID:  session,
		Confidence: 0.85 + float64(jitter.Intn(1501))/10000,
		Sources:    append([]string(nil), defaultSources...),
	}, nil
}

func (a CannedAgent) answer(prompt string) string {
	entry, ok := cannedReplies[a.Kind]
	if !ok {
		return genericReply
	}
	lower := strings.ToLower(prompt)
	for _, kw := range entry.matched.keywords {
		if strings.Contains(lower, kw) {
			return entry.matched.text
		}
	}
	return entry.fallback
}
