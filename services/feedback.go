package services

import (
	"context"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Publisher receives every feedback entry once it is stored.
type Publisher interface {
	Publish(feedback models.Feedback)
}

type FeedbackInput struct {
	UserName string `form:"UserName" binding:"required,max=100"`
	Message  string `form:"Message" binding:"required,max=2000"`
}

type FeedbackService struct {
	db        *gorm.DB
	publisher Publisher
	logger    *zap.Logger
}

// NewFeedbackService accepts a nil publisher.
func NewFeedbackService(db *gorm.DB, publisher Publisher, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{db: db, publisher: publisher, logger: logger}
}

func (s *FeedbackService) Submit(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	in.Message = strings.TrimSpace(in.Message)
	switch {
	case in.UserName == "":
		return nil, invalid("UserName", "Name is required.")
	case len(in.UserName) > 100:
		return nil, invalid("UserName", "Name cannot exceed 100 characters.")
	case in.Message == "":
		return nil, invalid("Message", "Message is required.")
	case len(in.Message) > 2000:
		return nil, invalid("Message", "Message cannot exceed 2,000 characters.")
	}

	feedback := models.Feedback{UserName: in.UserName, Message: in.Message}
	if err := s.db.WithContext(ctx).Create(&feedback).Error; err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.Publish(feedback)
	}
	return &feedback, nil
}

// List returns feedback newest first.
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	var entries []models.Feedback
	err := s.db.WithContext(ctx).Order("created_at desc, id desc").Find(&entries).Error
	return entries, err
}

func (s *FeedbackService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Feedback{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.logger.Info("feedback deleted", zap.Uint("feedback_id", id))
	return nil
}

func (s *FeedbackService) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	var faqs []models.Faq
	err := s.db.WithContext(ctx).Order("id asc").Find(&faqs).Error
	return faqs, err
}
