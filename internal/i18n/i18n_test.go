package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match("en-US"))
	assert.Equal(t, language.German, Match("de-AT"))
	assert.Equal(t, language.English, Match("not a tag!"))
	assert.Equal(t, language.English, Match(""))
}

func TestPrinter(t *testing.T) {
	en, err := Printer("en")
	require.NoError(t, err)
	assert.Equal(t, "Not allowed", en.Sprintf(MsgNotAllowed))
	assert.Equal(t, "Ask before using", en.Sprintf(MsgAskBeforeUsing))
	assert.Equal(t, "Privacy & security", en.Sprintf(MsgPrivacySecurityTitle))

	de, err := Printer("de")
	require.NoError(t, err)
	assert.Equal(t, "Nicht zulässig", de.Sprintf(MsgNotAllowed))
	assert.Equal(t, "Datenschutz & Sicherheit", de.Sprintf(MsgPrivacySecurityTitle))
}

func TestTranslationsComplete(t *testing.T) {
	for key := range translations[language.English] {
		_, ok := translations[language.German][key]
		assert.True(t, ok, "missing German translation for %s", key)
	}
}

func TestNewCatalog_MalformedMessage(t *testing.T) {
	_, err := newCatalog(map[language.Tag]map[string]string{
		language.English: {MsgDoNotTrack: "Do not ${track"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgDoNotTrack)
}
