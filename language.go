package yoola

// DefaultLanguage is used when neither the caller nor the settings name one.
const DefaultLanguage = "English"

// Language is a summary language offered to the user.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var languageNames = []string{
	"English",
	"Spanish",
	"Russian",
	"French",
	"German",
	"Italian",
	"Mandarin Chinese",
	"Hindi",
	"Portuguese",
	"Japanese",
	"Korean",
}

// Languages returns the supported summary languages in display order.
func Languages() []Language {
	langs := make([]Language, len(languageNames))
	for i, name := range languageNames {
		langs[i] = Language{Name: name, Code: name}
	}
	return langs
}

// IsSupportedLanguage reports whether name is one of Languages.
func IsSupportedLanguage(name string) bool {
	for _, n := range languageNames {
		if n == name {
			return true
		}
	}
	return false
}
