package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchDefaultsToFrench(t *testing.T) {
	assert.Equal(t, language.French, Match(""))
	assert.Equal(t, language.French, Match("zz-nonsense"))
	assert.Equal(t, language.French, Match("fr-FR,fr;q=0.9"))
}

func TestMatchEnglish(t *testing.T) {
	assert.Equal(t, language.English, Match("en-US,en;q=0.9"))
	assert.Equal(t, language.English, Match("en"))
}

func TestTFormatsArguments(t *testing.T) {
	fr := T(language.French, KeyReservationSMS, "2026-09-14", "19:30")
	assert.Contains(t, fr, "2026-09-14")
	assert.Contains(t, fr, "19:30")
	assert.Contains(t, fr, "Dragon Pearl Lyon")

	en := T(language.English, KeyReservationSMS, "2026-09-14", "19:30")
	assert.Contains(t, en, "Thank you")
}

func TestTUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "nope.missing", T(language.French, "nope.missing"))
}
