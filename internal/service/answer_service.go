package service

import (
	"context"
	"fmt"
	"qaforum/internal/models"
	"qaforum/internal/policy"
	"qaforum/internal/repository"
	"strings"
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, req repository.CreateAnswerRequest) (*models.Answer, error)
	ListAnswers(ctx context.Context, postID string) ([]models.Answer, error)
	DeleteAnswer(ctx context.Context, answerID, requesterID string) error
}

type answerService struct {
	answerRepo repository.AnswerRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

// CreateAnswer does not verify that the post exists.
func (a *answerService) CreateAnswer(ctx context.Context, req repository.CreateAnswerRequest) (*models.Answer, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("текст ответа обязателен: %w", ErrValidation)
	}

	answer := &models.Answer{
		Body:     req.Body,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	}

	if err := a.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}

	return answer, nil
}

func (a *answerService) ListAnswers(ctx context.Context, postID string) ([]models.Answer, error) {
	return a.answerRepo.ListByPostID(ctx, postID)
}

func (a *answerService) DeleteAnswer(ctx context.Context, answerID, requesterID string) error {
	answer, err := a.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return err
	}

	// only the author can delete
	if !policy.CanDelete(answer.AuthorID, requesterID) {
		return fmt.Errorf("ответ %s: %w", answerID, ErrForbidden)
	}

	return a.answerRepo.Delete(ctx, answerID)
}
