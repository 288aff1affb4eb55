package service

import "errors"

var (
	ErrValidation         = errors.New("неверные данные")
	ErrForbidden          = errors.New("доступ запрещен")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
)
