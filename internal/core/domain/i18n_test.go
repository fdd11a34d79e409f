package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslations_ChatStringsForEveryLanguage(t *testing.T) {
	chatKeys := []TextKey{
		TextWelcome, TextSelectLanguage, TextLanguageSelected, TextSelectSection,
		TextIPCOption, TextSectionPrompt, TextSectionNotFound, TextBackToMain,
	}
	for _, lang := range Languages() {
		for _, key := range chatKeys {
			_, ok := translations[lang][key]
			assert.True(t, ok, "%s missing %s", lang, key)
		}
	}
}

func TestTranslations_SectionExample(t *testing.T) {
	assert.Equal(t, `Example: Enter "1" for IPC Section 1`, Translations(LanguageEnglish).T(TextSectionExample))
	assert.Contains(t, Translations(LanguageHindi).T(TextSectionExample), "धारा 1")
	assert.Equal(t, Translations(LanguageEnglish).T(TextSectionExample), Translations(LanguageTamil).T(TextSectionExample))
}

func TestTranslations_FallsBackToEnglish(t *testing.T) {
	bn := Translations(LanguageBengali)
	assert.Equal(t, "হ্যালো! আমি আপনাকে কীভাবে সাহায্য করতে পারি?", bn.T(TextWelcome))
	assert.Equal(t, "Search sections...", bn.T(TextSearchLaws))

	unknown := Translations(Language("fr"))
	assert.Equal(t, Translations(LanguageEnglish), unknown)
}

func TestTranslations_ReturnsCopy(t *testing.T) {
	tr := Translations(LanguageEnglish)
	tr[TextWelcome] = "changed"

	assert.Equal(t, "Hello! How may I assist you today?", Translations(LanguageEnglish).T(TextWelcome))
}

func TestTranslation_UnknownKey(t *testing.T) {
	assert.Equal(t, "nope", Translations(LanguageEnglish).T(TextKey("nope")))
}
