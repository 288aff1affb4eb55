package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Author is the public projection of a User embedded into posts and answers.
type Author struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Author() *Author {
	return &Author{ID: u.UserID, Name: u.Name, Email: u.Email}
}

type Post struct {
	PostID    string    `json:"_id" db:"post_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Author    *Author   `json:"author,omitempty" db:"-"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Answer struct {
	AnswerID  string    `json:"_id" db:"answer_id"`
	Body      string    `json:"body" db:"body"`
	PostID    string    `json:"post" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Author    *Author   `json:"author,omitempty" db:"-"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
