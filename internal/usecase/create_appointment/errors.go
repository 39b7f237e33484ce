package create_appointment

import "errors"

var (
	// ErrInvalidRequest возвращается при отсутствии обязательных полей
	// или некорректных входных данных
	ErrInvalidRequest = errors.New("create_appointment: invalid request")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrPastDate возвращается, когда дата записи раньше сегодняшнего дня
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrPastTime возвращается, когда запись на сегодня указывает
	// уже прошедшее время начала
	ErrPastTime = errors.New("create_appointment: start time is in the past")

	// ErrSlotUnavailable возвращается, когда слот пересекается с существующей
	// записью: клиенту следует перечитать доступные времена и выбрать другое
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrStorageUnavailable возвращается при недоступности хранилища записей
	ErrStorageUnavailable = errors.New("create_appointment: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
