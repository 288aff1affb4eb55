// Package memory keeps users, posts and answers in process memory. It satisfies the
// same contracts as the Postgres repositories and backs STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"qaforum/internal/models"
	"qaforum/internal/repository"
)

type storedPost struct {
	post models.Post
	seq  int64
}

type storedAnswer struct {
	answer models.Answer
	seq    int64
}

type Store struct {
	mu sync.RWMutex

	seq     int64
	users   map[string]models.User
	emails  map[string]string
	posts   map[string]storedPost
	answers map[string]storedAnswer

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]models.User),
		emails:  make(map[string]string),
		posts:   make(map[string]storedPost),
		answers: make(map[string]storedAnswer),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewRepository exposes a Store through the repository contracts.
func NewRepository(s *Store) *repository.Repository {
	return &repository.Repository{
		User:   &userRepository{s: s},
		Post:   &postRepository{s: s},
		Answer: &answerRepository{s: s},
		Tables: &tablesRepository{},
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// authorLocked must be called with s.mu held.
func (s *Store) authorLocked(userID string) *models.Author {
	user, ok := s.users[userID]
	if !ok {
		return &models.Author{ID: userID}
	}
	return user.Author()
}

type userRepository struct {
	s *Store
}

func (r *userRepository) CreateUser(_ context.Context, user *models.User, password string) error {
	hashedPassword, err := repository.HashPassword(password)
	if err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.emails[user.Email]; exists {
		return fmt.Errorf("пользователь с email %s: %w", user.Email, repository.ErrEmailTaken)
	}

	user.UserID = uuid.New().String()
	user.PasswordHash = hashedPassword
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.s.now()
	}

	r.s.users[user.UserID] = *user
	r.s.emails[user.Email] = user.UserID
	return nil
}

func (r *userRepository) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[userID]
	if !ok {
		return nil, fmt.Errorf("пользователь с ID %s %w", userID, repository.ErrNotFound)
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	userID, ok := r.s.emails[email]
	if !ok {
		return nil, fmt.Errorf("пользователь с email %s %w", email, repository.ErrNotFound)
	}
	user := r.s.users[userID]
	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := repository.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}
	return user, nil
}

type postRepository struct {
	s *Store
}

func (r *postRepository) Create(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = r.s.now()
	}

	stored := *post
	stored.Author = nil
	r.s.posts[post.PostID] = storedPost{post: stored, seq: r.s.nextSeq()}
	return nil
}

func (r *postRepository) GetByID(_ context.Context, postID string) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.posts[postID]
	if !ok {
		return nil, fmt.Errorf("пост с ID %s %w", postID, repository.ErrNotFound)
	}

	post := stored.post
	post.Author = r.s.authorLocked(post.AuthorID)
	return &post, nil
}

func (r *postRepository) List(_ context.Context) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]storedPost, 0, len(r.s.posts))
	for _, item := range r.s.posts {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].post.CreatedAt.Equal(items[j].post.CreatedAt) {
			return items[i].post.CreatedAt.After(items[j].post.CreatedAt)
		}
		return items[i].seq > items[j].seq
	})

	posts := make([]models.Post, 0, len(items))
	for _, item := range items {
		post := item.post
		post.Author = r.s.authorLocked(post.AuthorID)
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *postRepository) Delete(_ context.Context, postID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return fmt.Errorf("пост с ID %s %w", postID, repository.ErrNotFound)
	}
	delete(r.s.posts, postID)
	return nil
}

type answerRepository struct {
	s *Store
}

func (r *answerRepository) Create(_ context.Context, answer *models.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if answer.AnswerID == "" {
		answer.AnswerID = uuid.New().String()
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = r.s.now()
	}

	stored := *answer
	stored.Author = nil
	r.s.answers[answer.AnswerID] = storedAnswer{answer: stored, seq: r.s.nextSeq()}
	return nil
}

func (r *answerRepository) GetByID(_ context.Context, answerID string) (*models.Answer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.answers[answerID]
	if !ok {
		return nil, fmt.Errorf("ответ с ID %s %w", answerID, repository.ErrNotFound)
	}
	answer := stored.answer
	return &answer, nil
}

func (r *answerRepository) ListByPostID(_ context.Context, postID string) ([]models.Answer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]storedAnswer, 0)
	for _, item := range r.s.answers {
		if item.answer.PostID == postID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].answer.CreatedAt.Equal(items[j].answer.CreatedAt) {
			return items[i].answer.CreatedAt.After(items[j].answer.CreatedAt)
		}
		return items[i].seq > items[j].seq
	})

	answers := make([]models.Answer, 0, len(items))
	for _, item := range items {
		answer := item.answer
		answer.Author = r.s.authorLocked(answer.AuthorID)
		answers = append(answers, answer)
	}
	return answers, nil
}

func (r *answerRepository) Delete(_ context.Context, answerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.answers[answerID]; !ok {
		return fmt.Errorf("ответ с ID %s %w", answerID, repository.ErrNotFound)
	}
	delete(r.s.answers, answerID)
	return nil
}

type tablesRepository struct{}

func (tablesRepository) Ping(context.Context) error { return nil }

// CountTables reports the three collections: users, posts, answers.
func (tablesRepository) CountTables(context.Context) (int, error) { return 3, nil }
