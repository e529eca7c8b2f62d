// Package i18n selects between the two locales the site ships with.
// French is the house default, English is offered for visitors.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.French, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

const (
	KeyReservationSMS       = "reservation.sms"
	KeyReservationConfirmed = "reservation.confirmed"
	KeyInvalidCredentials   = "login.invalid"
)

var messages = map[language.Tag]map[string]string{
	language.French: {
		KeyReservationSMS:       "Merci pour votre réservation chez Dragon Pearl Lyon! Nous vous attendons le %s à %s.",
		KeyReservationConfirmed: "Votre réservation a été confirmée!",
		KeyInvalidCredentials:   "Identifiants incorrects",
	},
	language.English: {
		KeyReservationSMS:       "Thank you for booking at Dragon Pearl Lyon! We look forward to seeing you on %s at %s.",
		KeyReservationConfirmed: "Your reservation has been confirmed!",
		KeyInvalidCredentials:   "Invalid credentials",
	},
}

// Match resolves an Accept-Language header value to one of the supported
// locales. An empty or unknown value falls back to French.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.French
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// T formats the message for the given locale and key.
func T(tag language.Tag, key string, args ...interface{}) string {
	catalog, ok := messages[tag]
	if !ok {
		catalog = messages[language.French]
	}
	msg, ok := catalog[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
