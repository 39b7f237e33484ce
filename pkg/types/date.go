package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDateString возвращается при некорректном формате даты
	ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")
)

// ParseDate разбирает дату "YYYY-MM-DD" по компонентам и возвращает
// полночь этого календарного дня в локальной тайм-зоне.
// Разбор по компонентам (а не time.Parse) исключает сдвиг дня
// из-за интерпретации строки как UTC.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// time.Date нормализует переполнения (31 февраля превращается в март),
	// поэтому проверяем, что компоненты не изменились
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}

	return date, nil
}

// SameDay проверяет, что два момента времени относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayBefore проверяет, что календарный день a строго раньше календарного дня b.
// Сравниваются только даты: полночь сегодняшнего дня не считается "прошлым"
// относительно текущего момента.
func DayBefore(a, b time.Time) bool {
	return DayStart(a).Before(DayStart(b))
}

// DayStart возвращает полночь календарного дня момента t
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At объединяет календарный день date и время суток t в момент времени.
// Момент всегда строится в локальной тайм-зоне: дата из хранилища приходит
// как полночь UTC (lib/pq так декодирует колонки DATE), и наследование её
// локации сдвигало бы все временные политики на величину смещения пояса.
func At(date time.Time, t TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, time.Local), nil
}
