package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"drepalife-app/internal/models"
	"drepalife-app/internal/session"
)

// Greeting is the first message sent when a consultation is opened.
const Greeting = "Hello doctor, I would like to start a consultation."

// ErrEmptySymptoms is returned when there is nothing to send.
var ErrEmptySymptoms = errors.New("please describe your symptoms")

// ConsultService sends symptoms for automated advice and keeps the transcript
// of the running consultation.
type ConsultService struct {
	api      API
	sessions *session.Cache
	logger   *zap.Logger
	now      func() time.Time

	mu         sync.Mutex
	transcript []models.ChatMessage
}

// NewConsultService creates a ConsultService with an empty transcript.
func NewConsultService(api API, sessions *session.Cache, logger *zap.Logger) *ConsultService {
	return &ConsultService{api: api, sessions: sessions, logger: logger, now: time.Now}
}

// Start opens a consultation with the greeting.
func (s *ConsultService) Start(ctx context.Context) (string, error) {
	return s.Ask(ctx, Greeting)
}

// Ask sends symptoms and returns the advice.
func (s *ConsultService) Ask(ctx context.Context, symptoms string) (string, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return "", ErrEmptySymptoms
	}
	s.record(models.SenderPatient, symptoms)

	advice, err := s.api.Consult(ctx, symptoms)
	if err != nil {
		return "", expireOnUnauthorized(ctx, s.sessions, s.logger, err)
	}
	s.record(models.SenderBot, advice)
	return advice, nil
}

// Transcript returns a copy of the messages exchanged so far.
func (s *ConsultService) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

func (s *ConsultService) record(sender models.Sender, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.ChatMessage{
		Sender: sender,
		Text:   text,
		SentAt: s.now().UnixMilli(),
	})
}
