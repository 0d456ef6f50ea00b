package dashboard

import (
	"time"

	"github.com/rs/zerolog"
)

// TimestampFormat is the layout of the dashboard's current-time input.
const TimestampFormat = "2006-01-02 15:04:05"

// Greetings by time of day, and the reply for an unparseable timestamp.
const (
	GreetingMorning = "Доброе утро!"
	GreetingDay     = "Добрый день!"
	GreetingEvening = "Добрый вечер!"
	GreetingNight   = "Доброй ночи!"
	GreetingInvalid = "Ошибка в формате даты"
)

// Greeting picks the greeting for the hour of timestamp.
func Greeting(log zerolog.Logger, timestamp string) string {
	t, err := time.Parse(TimestampFormat, timestamp)
	if err != nil {
		log.Error().Err(err).Str("timestamp", timestamp).Msg("parsing dashboard time")
		return GreetingInvalid
	}

	var greeting string
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		greeting = GreetingMorning
	case h >= 12 && h < 18:
		greeting = GreetingDay
	case h >= 18 && h < 23:
		greeting = GreetingEvening
	default:
		greeting = GreetingNight
	}

	log.Debug().Str("timestamp", timestamp).Str("greeting", greeting).Msg("greeting chosen")
	return greeting
}
