package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/widgets/contactform"
)

// ContactService validates contact submissions and keeps the accepted
// ones in an in-memory outbox. Nothing is delivered anywhere.
type ContactService struct {
	logger *zap.Logger
	limit  int
	now    func() time.Time

	mu     sync.Mutex
	outbox []models.ContactMessage
}

var _ contactform.Sink = (*ContactService)(nil)

// NewContactService creates a new ContactService keeping at most limit
// messages
func NewContactService(logger *zap.Logger, limit int) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = 100
	}
	return &ContactService{logger: logger, limit: limit, now: time.Now}
}

// ValidateField validates one field the way the form does on blur
func (s *ContactService) ValidateField(field, value string) models.FieldValidation {
	msg := contactform.ValidateField(field, value)
	return models.FieldValidation{Field: field, Valid: msg == "", Error: msg}
}

// Submit validates req. Invalid requests return every field error and
// no message.
func (s *ContactService) Submit(req models.ContactRequest) (*models.ContactMessage, contactform.Errors) {
	values := contactform.Values{Name: req.Name, Email: req.Email, Message: req.Message}
	if errs := contactform.Validate(values); !errs.Valid() {
		s.logger.Debug("contact submission rejected", zap.Int("errors", len(errs)))
		return nil, errs
	}

	msg := s.record(values)
	return &msg, nil
}

// Accept records a message the page form already validated
func (s *ContactService) Accept(v contactform.Values) {
	s.record(v)
}

func (s *ContactService) record(v contactform.Values) models.ContactMessage {
	v = v.Trimmed()
	msg := models.ContactMessage{
		ID:         uuid.NewString(),
		Name:       v.Name,
		Email:      v.Email,
		Message:    v.Message,
		ReceivedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.outbox = append(s.outbox, msg)
	if len(s.outbox) > s.limit {
		s.outbox = s.outbox[len(s.outbox)-s.limit:]
	}
	s.mu.Unlock()

	s.logger.Info("contact message accepted",
		zap.String("id", msg.ID),
		zap.String("email", msg.Email),
		zap.Int("length", len(msg.Message)))
	return msg
}

// Outbox returns the accepted messages, oldest first
func (s *ContactService) Outbox() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ContactMessage(nil), s.outbox...)
}
