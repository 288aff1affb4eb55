package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"qaforum/internal/models"
	"time"
)

type AnswerRepositoryImpl struct {
	db *sqlx.DB
}

type CreateAnswerRequest struct {
	PostID   string `json:"post"`
	AuthorID string `json:"authorId"`
	Body     string `json:"body"`
}

type answerRow struct {
	models.Answer
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
}

func NewAnswerRepository(db *sqlx.DB) *AnswerRepositoryImpl {
	return &AnswerRepositoryImpl{db: db}
}

// Create does not check that the referenced post exists.
func (r *AnswerRepositoryImpl) Create(ctx context.Context, answer *models.Answer) error {
	query := `
		INSERT INTO answers (answer_id, body, post_id, author_id, created_at)
		VALUES (:answer_id, :body, :post_id, :author_id, :created_at)
	`

	if answer.AnswerID == "" {
		answer.AnswerID = uuid.New().String()
	}

	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, query, answer)
	if err != nil {
		return fmt.Errorf("ошибка при создании ответа: %w", err)
	}

	return nil
}

func (r *AnswerRepositoryImpl) GetByID(ctx context.Context, answerID string) (*models.Answer, error) {
	query := `SELECT answer_id, body, post_id, author_id, created_at FROM answers WHERE answer_id = $1`

	var answer models.Answer
	err := r.db.GetContext(ctx, &answer, query, answerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ответ с ID %s %w", answerID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении ответа: %w", err)
	}

	return &answer, nil
}

func (r *AnswerRepositoryImpl) ListByPostID(ctx context.Context, postID string) ([]models.Answer, error) {
	query := `
		SELECT a.answer_id, a.body, a.post_id, a.author_id, a.created_at,
		       u.name AS author_name, u.email AS author_email
		FROM answers a
		JOIN users u ON u.user_id = a.author_id
		WHERE a.post_id = $1
		ORDER BY a.created_at DESC, a.answer_id DESC
	`

	var rows []answerRow
	err := r.db.SelectContext(ctx, &rows, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ответов: %w", err)
	}

	answers := make([]models.Answer, 0, len(rows))
	for _, row := range rows {
		answer := row.Answer
		answer.Author = &models.Author{ID: answer.AuthorID, Name: row.AuthorName, Email: row.AuthorEmail}
		answers = append(answers, answer)
	}

	return answers, nil
}

func (r *AnswerRepositoryImpl) Delete(ctx context.Context, answerID string) error {
	query := `DELETE FROM answers WHERE answer_id = $1`

	result, err := r.db.ExecContext(ctx, query, answerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении ответа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ответ с ID %s %w", answerID, ErrNotFound)
	}

	return nil
}
