package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// или принадлежит другому пользователю
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCancelled возвращается при попытке отменить запись,
	// которая не находится в статусе scheduled
	ErrAlreadyCancelled = errors.New("appointment is already cancelled or completed")

	// ErrCancellationTooLate возвращается, когда до начала записи осталось
	// меньше минимального времени для отмены
	ErrCancellationTooLate = errors.New("cancellation window expired")

	// ErrDeletionNotAllowed возвращается при попытке удалить активную запись:
	// удалить можно только прошедшую или отмененную, остальные следует отменять
	ErrDeletionNotAllowed = errors.New("deletion not allowed for active appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStorageUnavailable возвращается при недоступности хранилища записей
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
