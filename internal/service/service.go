package service

import (
	"qaforum/internal/repository"
	"qaforum/internal/storage"
)

type Service struct {
	User   UserService
	Auth   AuthService
	Token  TokenService
	Post   PostService
	Answer AnswerService
	Tables TablesService
}

// NewService wires services over rep. archive may be nil when archiving is disabled.
func NewService(rep *repository.Repository, tokens TokenService, archive storage.Archive) *Service {
	return &Service{
		User:   NewUserService(rep.User),
		Auth:   NewAuthService(rep.User, tokens),
		Token:  tokens,
		Post:   NewPostService(rep.Post, rep.Answer, archive),
		Answer: NewAnswerService(rep.Answer),
		Tables: NewTablesService(rep.Tables),
	}
}
