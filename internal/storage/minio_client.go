package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"qaforum/internal/config"
	"qaforum/internal/models"
)

// Archive keeps a copy of deleted posts together with the answers they had.
type Archive interface {
	ArchivePost(ctx context.Context, post *models.Post, answers []models.Answer) (string, error)
}

type PostSnapshot struct {
	Post       models.Post     `json:"post"`
	Answers    []models.Answer `json:"answers"`
	ArchivedAt time.Time       `json:"archivedAt"`
}

type MinIOClient struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета %s: %w", cfg.MinIO.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета %s: %w", cfg.MinIO.BucketName, err)
		}
	}

	return &MinIOClient{
		client: client,
		bucket: cfg.MinIO.BucketName,
		now:    time.Now,
	}, nil
}

// ObjectName lays archived posts out by deletion month: posts/2026/10/<postID>.json
func ObjectName(postID string, at time.Time) string {
	return fmt.Sprintf("posts/%d/%02d/%s.json", at.Year(), at.Month(), postID)
}

func EncodeSnapshot(post *models.Post, answers []models.Answer, at time.Time) ([]byte, error) {
	if answers == nil {
		answers = []models.Answer{}
	}

	data, err := json.Marshal(PostSnapshot{Post: *post, Answers: answers, ArchivedAt: at})
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации поста %s: %w", post.PostID, err)
	}
	return data, nil
}

func (m *MinIOClient) ArchivePost(ctx context.Context, post *models.Post, answers []models.Answer) (string, error) {
	now := m.now().UTC()
	objectName := ObjectName(post.PostID, now)

	data, err := EncodeSnapshot(post, answers, now)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: "application/json",
			UserMetadata: map[string]string{
				"post-id":     post.PostID,
				"author-id":   post.AuthorID,
				"archived-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}
