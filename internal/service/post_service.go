package service

import (
	"context"
	"fmt"
	"log"
	"qaforum/internal/models"
	"qaforum/internal/policy"
	"qaforum/internal/repository"
	"qaforum/internal/storage"
	"strings"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
}

type postService struct {
	postRepo   repository.PostRepository
	answerRepo repository.AnswerRepository
	archive    storage.Archive
}

func NewPostService(postRepo repository.PostRepository, answerRepo repository.AnswerRepository, archive storage.Archive) PostService {
	return &postService{
		postRepo:   postRepo,
		answerRepo: answerRepo,
		archive:    archive,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("заголовок обязателен: %w", ErrValidation)
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    title,
		Body:     req.Body,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.List(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post owned by requesterID. Answers to the post are kept.
func (p *postService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !policy.CanDelete(post.AuthorID, requesterID) {
		return fmt.Errorf("пост %s: %w", postID, ErrForbidden)
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.archivePost(ctx, post)

	return nil
}

// archivePost is best effort: the post is already gone, so failures are only logged.
func (p *postService) archivePost(ctx context.Context, post *models.Post) {
	if p.archive == nil {
		return
	}

	answers, err := p.answerRepo.ListByPostID(ctx, post.PostID)
	if err != nil {
		log.Printf("Предупреждение: не удалось получить ответы поста %s для архива: %v", post.PostID, err)
	}

	objectName, err := p.archive.ArchivePost(ctx, post, answers)
	if err != nil {
		log.Printf("Предупреждение: не удалось сохранить пост %s в архив: %v", post.PostID, err)
		return
	}

	log.Printf("Пост %s сохранен в архив: %s", post.PostID, objectName)
}
