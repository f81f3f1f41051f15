package model

import "errors"

var (
	// ErrValidation одно из утверждений пустое после обрезки пробелов
	ErrValidation = errors.New("all three statements are required")
	// ErrOutOfRange индекс секции вне границ колеса
	ErrOutOfRange = errors.New("section index out of range")
	// ErrEmptyPool нет заполненных секций для выбора
	ErrEmptyPool = errors.New("no filled sections to choose from")
	// ErrPersistence ошибка чтения или записи хранилища
	ErrPersistence = errors.New("persistence failure")

	ErrInvalidState         = errors.New("operation not allowed in current spin state")
	ErrSpinInProgress       = errors.New("spin in progress")
	ErrConfirmationRequired = errors.New("confirmation required")
)
