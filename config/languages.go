package config

// SupportedLanguages maps ISO 639-1 codes to display names. Requests with a
// code outside this table silently fall back to English.
var SupportedLanguages = map[string]string{
	"en": "English", "es": "Spanish", "fr": "French", "de": "German", "it": "Italian",
	"pt": "Portuguese", "nl": "Dutch", "ru": "Russian", "zh": "Chinese", "ja": "Japanese",
	"ko": "Korean", "ar": "Arabic", "hi": "Hindi", "bn": "Bengali", "pa": "Punjabi",
	"te": "Telugu", "ta": "Tamil", "ur": "Urdu", "tr": "Turkish", "vi": "Vietnamese",
	"th": "Thai", "id": "Indonesian", "ms": "Malay", "fa": "Persian", "sw": "Swahili",
	"pl": "Polish", "uk": "Ukrainian", "cs": "Czech", "sk": "Slovak", "hu": "Hungarian",
	"ro": "Romanian", "bg": "Bulgarian", "el": "Greek", "he": "Hebrew", "sv": "Swedish",
	"no": "Norwegian", "da": "Danish", "fi": "Finnish", "ca": "Catalan", "eu": "Basque",
	"is": "Icelandic", "lt": "Lithuanian", "lv": "Latvian", "et": "Estonian", "sr": "Serbian",
	"hr": "Croatian", "sl": "Slovenian", "mk": "Macedonian", "sq": "Albanian", "cy": "Welsh",
	"ga": "Irish", "af": "Afrikaans", "am": "Amharic", "hy": "Armenian", "az": "Azerbaijani",
	"my": "Burmese", "km": "Khmer", "ka": "Georgian", "gu": "Gujarati", "kn": "Kannada",
	"ml": "Malayalam", "mr": "Marathi", "ne": "Nepali", "si": "Sinhala", "tl": "Tagalog",
	"uz": "Uzbek", "yi": "Yiddish", "yo": "Yoruba", "zu": "Zulu", "gl": "Galician",
}

// NewsCategories are the categories accepted by the news endpoints.
var NewsCategories = map[string]string{
	"general": "General", "business": "Business", "entertainment": "Entertainment",
	"health": "Health", "science": "Science", "sports": "Sports", "technology": "Technology",
}

// LanguageName returns the display name for a language code, or the code
// itself when unknown.
func LanguageName(code string) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return code
}

// NormalizeLanguage maps an unrecognized language code to the default.
func NormalizeLanguage(code string) string {
	if _, ok := SupportedLanguages[code]; ok {
		return code
	}
	return DefaultLanguage
}
