package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"qaforum/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID string `json:"authorId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// postRow is a post joined with the author's public fields.
type postRow struct {
	models.Post
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
}

func (r postRow) toModel() models.Post {
	post := r.Post
	post.Author = &models.Author{ID: post.AuthorID, Name: r.AuthorName, Email: r.AuthorEmail}
	return post
}

const selectPostsWithAuthor = `
	SELECT p.post_id, p.title, p.body, p.author_id, p.created_at,
	       u.name AS author_name, u.email AS author_email
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, title, body, author_id, created_at)
        VALUES
        (:post_id, :title, :body, :author_id, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := selectPostsWithAuthor + `WHERE p.post_id = $1`

	var row postRow
	err := r.DB.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	post := row.toModel()
	return &post, nil
}

// List returns every post, newest first.
func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.Post, error) {
	query := selectPostsWithAuthor + `ORDER BY p.created_at DESC, p.post_id DESC`

	var rows []postRow
	err := r.DB.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel())
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s %w", postID, ErrNotFound)
	}

	return nil
}
