package agents

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/C2IHub/proCURE2/internal/scoring"
)

type Status struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Status      string `json:"status"` // active|idle|completed|warning|error
	Description string `json:"description,omitempty"`
	Confidence  int    `json:"confidence,omitempty"`
	Progress    int    `json:"progress,omitempty"`
	LastUpdate  string `json:"lastUpdate"`
}

type registered struct {
	status   Status
	provider ReasoningProvider
}

// Service routes invocations to registered agents by id.
type Service struct {
	order  []string
	agents map[string]registered
}

func NewService() *Service {
	return &Service{agents: make(map[string]registered)}
}

// Register adds or replaces an agent.
func (s *Service) Register(st Status, p ReasoningProvider) {
	if _, ok := s.agents[st.ID]; !ok {
		s.order = append(s.order, st.ID)
	}
	s.agents[st.ID] = registered{status: st, provider: p}
}

// NewCanned registers the three dashboard agents backed by CannedAgent.
func NewCanned(latency time.Duration, jitter scoring.Jitter, clock clockwork.Clock) *Service {
	s := NewService()
	mk := func(k Kind) CannedAgent {
		return CannedAgent{Kind: k, Latency: latency, Jitter: jitter, Clock: clock}
	}
	s.Register(Status{ID: "compliance-analyzer", Name: "EU GMP Compliance Analyzer", Kind: KindCompliance, Status: "active", Description: "Analyzing supplier compliance with EU GMP regulations", Confidence: 94, Progress: 75, LastUpdate: "2 minutes ago"}, mk(KindCompliance))
	s.Register(Status{ID: "risk-assessor", Name: "Predictive Risk Assessor", Kind: KindRisk, Status: "completed", Description: "Completed risk analysis for 15 suppliers", Confidence: 89, Progress: 100, LastUpdate: "15 minutes ago"}, mk(KindRisk))
	s.Register(Status{ID: "document-validator", Name: "Document Validation Engine", Kind: KindDocument, Status: "warning", Description: "Found inconsistencies in supplier documentation", Confidence: 67, Progress: 60, LastUpdate: "1 hour ago"}, mk(KindDocument))
	return s
}

func (s *Service) List() []Status {
	out := make([]Status, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.agents[id].status)
	}
	return out
}

func (s *Service) Get(agentID string) (Status, error) {
	a, ok := s.agents[agentID]
	if !ok {
		return Status{}, ErrUnknownAgent
	}
	return a.status, nil
}

func (s *Service) Invoke(ctx context.Context, agentID string, req Request) (Response, error) {
	a, ok := s.agents[agentID]
	if !ok {
		return Response{}, ErrUnknownAgent
	}
	return a.provider.Invoke(ctx, req)
}
