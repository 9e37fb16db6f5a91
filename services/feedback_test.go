package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	got []models.Feedback
}

func (r *recordingPublisher) Publish(f models.Feedback) { r.got = append(r.got, f) }

func TestFeedback(t *testing.T) {
	db := newDB(t)
	pub := &recordingPublisher{}
	svc := NewFeedbackService(db, pub, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Submit(ctx, FeedbackInput{UserName: "", Message: "hi"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, FeedbackInput{UserName: "Ann", Message: strings.Repeat("x", 2001)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, pub.got)

	f, err := svc.Submit(ctx, FeedbackInput{UserName: " Ann ", Message: "Great shop"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", f.UserName)
	require.Len(t, pub.got, 1)
	assert.Equal(t, f.ID, pub.got[0].ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, f.ID))
	assert.ErrorIs(t, svc.Delete(ctx, f.ID), ErrNotFound)
}

func TestListFaqs(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Create(&[]models.Faq{
		{Question: "Shipping?", Answer: "Worldwide."},
		{Question: "Returns?", Answer: "30 days."},
	}).Error)

	faqs, err := NewFeedbackService(db, nil, zap.NewNop()).ListFaqs(context.Background())
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, "Shipping?", faqs[0].Question)
}
