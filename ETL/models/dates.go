package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout формат даты во всех выходных таблицах
	DateLayout = "2006-01-02"

	// NullDateText текстовое представление отсутствующей даты в составных ключах
	NullDateText = "NaT"

	// NullText текстовое представление отсутствующего значения в составных ключах
	NullText = "nan"
)

// Форматы дат, которые распознаются при разборе текста
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006",
	"1/2/06",
	"1/2/06 15:04",
	"01-02-06",
}

// Excel считает дни от 30.12.1899
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// epochMillisThreshold отделяет миллисекунды эпохи Unix от серийных дат Excel
const epochMillisThreshold = 1e11

// NullDate дата, которая может отсутствовать
type NullDate struct {
	Time  time.Time
	Valid bool
}

// NewDate создает заполненную дату без времени суток
func NewDate(year int, month time.Month, day int) NullDate {
	return NullDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// String возвращает дату в формате DateLayout или NullDateText
func (d NullDate) String() string {
	if !d.Valid {
		return NullDateText
	}
	return d.Time.Format(DateLayout)
}

// Text возвращает дату для записи в CSV: пустая строка вместо отсутствующей даты
func (d NullDate) Text() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// ParseDate разбирает дату из текста.
// Нераспознанное значение превращается в отсутствующую дату, ошибка не возвращается.
func ParseDate(value string) NullDate {
	value = strings.TrimSpace(value)
	if value == "" || value == NullDateText || value == NullText {
		return NullDate{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return truncateDay(t)
		}
	}

	// Числовые значения: миллисекунды эпохи или серийная дата Excel
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number <= 0 {
		return NullDate{}
	}
	if number >= epochMillisThreshold {
		return truncateDay(time.UnixMilli(int64(number)).UTC())
	}
	days := int(math.Floor(number))
	return truncateDay(excelEpoch.AddDate(0, 0, days))
}

func truncateDay(t time.Time) NullDate {
	return NullDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseClock разбирает время суток ("15:04:05", "15:04", 12-часовой формат
// или доля суток Excel, например "0.5286")
func ParseClock(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return parseDayFraction(value)
}

// ClockText приводит долю суток Excel к виду "15:04:05"; остальные значения возвращаются без изменений
func ClockText(value string) string {
	clock, ok := parseDayFraction(strings.TrimSpace(value))
	if !ok {
		return value
	}
	return time.Time{}.Add(clock).Format("15:04:05")
}

// parseDayFraction понимает числовое время ячейки Excel.
// Целая часть (дата) отбрасывается, время округляется до секунды.
func parseDayFraction(value string) (time.Duration, bool) {
	if value == "" || strings.Contains(value, ":") {
		return 0, false
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return 0, false
	}
	_, fraction := math.Modf(number)
	seconds := int64(math.Round(fraction*secondsPerDay)) % secondsPerDay
	return time.Duration(seconds) * time.Second, true
}

// TextOrNull подставляет NullText вместо пустого значения
func TextOrNull(value string) string {
	if strings.TrimSpace(value) == "" {
		return NullText
	}
	return value
}
