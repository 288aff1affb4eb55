package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"qaforum/internal/models"
	"qaforum/internal/repository"
)

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание поста", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := NewPostService(postRepo, new(MockAnswerRepository), nil)

		postRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
			return p.Title == "Hello World" && p.Body == "body" && p.AuthorID == "ann-id"
		})).Return(nil)

		post, err := svc.CreatePost(ctx, repository.CreatePostRequest{AuthorID: "ann-id", Title: "Hello World", Body: "body"})

		require.NoError(t, err)
		assert.Equal(t, "Hello World", post.Title)
		assert.Equal(t, "ann-id", post.AuthorID)
		postRepo.AssertExpectations(t)
	})

	for _, title := range []string{"", "   ", "\n\t"} {
		t.Run("Пустой заголовок "+title, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			svc := NewPostService(postRepo, new(MockAnswerRepository), nil)

			post, err := svc.CreatePost(ctx, repository.CreatePostRequest{AuthorID: "ann-id", Title: title})

			assert.Nil(t, post)
			assert.ErrorIs(t, err, ErrValidation)
			postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPostService_DeletePost_OwnershipLaw(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		authorID    string
		requesterID string
		wantErr     error
	}{
		{name: "Автор удаляет свой пост", authorID: "ann-id", requesterID: "ann-id"},
		{name: "Другой пользователь", authorID: "ann-id", requesterID: "bob-id", wantErr: ErrForbidden},
		{name: "Без идентификатора", authorID: "ann-id", requesterID: "", wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			svc := NewPostService(postRepo, new(MockAnswerRepository), nil)

			postRepo.On("GetByID", ctx, "post-1").Return(&models.Post{PostID: "post-1", AuthorID: tt.authorID}, nil)
			if tt.wantErr == nil {
				postRepo.On("Delete", ctx, "post-1").Return(nil)
			}

			err := svc.DeletePost(ctx, "post-1", tt.requesterID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				postRepo.AssertCalled(t, "Delete", ctx, "post-1")
			}
		})
	}
}

func TestPostService_DeletePost_NotFound(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo, new(MockAnswerRepository), nil)

	postRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	err := svc.DeletePost(ctx, "missing", "ann-id")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostService_DeletePost_ConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepository)
	svc := NewPostService(postRepo, new(MockAnswerRepository), nil)

	postRepo.On("GetByID", ctx, "post-1").Return(&models.Post{PostID: "post-1", AuthorID: "ann-id"}, nil)
	postRepo.On("Delete", ctx, "post-1").Return(repository.ErrNotFound)

	err := svc.DeletePost(ctx, "post-1", "ann-id")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostService_DeletePost_Archive(t *testing.T) {
	ctx := context.Background()
	post := &models.Post{PostID: "post-1", AuthorID: "ann-id", Title: "Hello World"}
	answers := []models.Answer{{AnswerID: "answer-1", PostID: "post-1", AuthorID: "bob-id", Body: "hi"}}

	t.Run("Удаленный пост сохраняется в архив с ответами", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		answerRepo := new(MockAnswerRepository)
		archive := new(MockArchive)
		svc := NewPostService(postRepo, answerRepo, archive)

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		postRepo.On("Delete", ctx, "post-1").Return(nil)
		answerRepo.On("ListByPostID", ctx, "post-1").Return(answers, nil)
		archive.On("ArchivePost", ctx, post, answers).Return("posts/2026/10/post-1.json", nil)

		err := svc.DeletePost(ctx, "post-1", "ann-id")

		require.NoError(t, err)
		archive.AssertExpectations(t)
		answerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка архива не мешает удалению", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		answerRepo := new(MockAnswerRepository)
		archive := new(MockArchive)
		svc := NewPostService(postRepo, answerRepo, archive)

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)
		postRepo.On("Delete", ctx, "post-1").Return(nil)
		answerRepo.On("ListByPostID", ctx, "post-1").Return(nil, errors.New("db down"))
		archive.On("ArchivePost", ctx, post, []models.Answer(nil)).Return("", errors.New("minio down"))

		err := svc.DeletePost(ctx, "post-1", "ann-id")

		assert.NoError(t, err)
	})

	t.Run("Чужой пост не архивируется", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		archive := new(MockArchive)
		svc := NewPostService(postRepo, new(MockAnswerRepository), archive)

		postRepo.On("GetByID", ctx, "post-1").Return(post, nil)

		err := svc.DeletePost(ctx, "post-1", "bob-id")

		assert.ErrorIs(t, err, ErrForbidden)
		archive.AssertNotCalled(t, "ArchivePost", mock.Anything, mock.Anything, mock.Anything)
	})
}
