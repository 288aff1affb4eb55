package handlers

import (
	"github.com/go-playground/validator/v10"
	"qaforum/internal/service"
)

type Handlers struct {
	UserService   service.UserService
	AuthService   service.AuthService
	PostService   service.PostService
	AnswerService service.AnswerService
	TablesService service.TablesService
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service) *Handlers {
	return &Handlers{
		UserService:   services.User,
		AuthService:   services.Auth,
		PostService:   services.Post,
		AnswerService: services.Answer,
		TablesService: services.Tables,
		Validate:      validator.New(),
	}
}
