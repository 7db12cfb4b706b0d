package config

import "hash/fnv"

// TTSVoices is the pool of synthesis voices offered by the primary engine.
var TTSVoices = []string{"alloy", "echo", "fable", "nova", "onyx", "shimmer"}

// voiceGroups pins language families to a fixed voice. Languages outside
// these groups get a stable hash-based assignment from the pool.
var voiceGroups = map[string][]string{
	"alloy":   {"en", "de", "nl", "sv", "no", "da", "fi", "is", "pl", "cs", "sk", "hu"},
	"echo":    {"fr", "pt", "ro", "vi", "id", "ms", "sq", "az", "uz"},
	"fable":   {"hi", "bn", "pa", "te", "ta", "ur", "fa", "gu", "kn", "ml", "mr", "ne", "si"},
	"nova":    {"es", "ca", "it", "ja", "th", "sw", "cy", "gl", "tl", "hr"},
	"onyx":    {"ru", "uk", "ar", "bg", "el", "he", "sr", "mk", "hy", "ka"},
	"shimmer": {"zh", "ko", "tr", "yo", "zu", "ga", "eu", "am", "my", "km"},
}

// VoiceTable maps every supported language to its synthesis voice.
type VoiceTable map[string]string

// BuildVoiceTable assembles the language-to-voice mapping for the given
// language set. Assignment is deterministic: grouped languages use their
// group voice, the rest hash into the voice pool so that the same language
// always resolves to the same voice across processes.
func BuildVoiceTable(languages map[string]string) VoiceTable {
	table := make(VoiceTable, len(languages))
	for voice, langs := range voiceGroups {
		for _, lang := range langs {
			if _, ok := languages[lang]; ok {
				table[lang] = voice
			}
		}
	}
	for lang := range languages {
		if _, ok := table[lang]; !ok {
			h := fnv.New32a()
			h.Write([]byte(lang))
			table[lang] = TTSVoices[h.Sum32()%uint32(len(TTSVoices))]
		}
	}
	return table
}

// Voice returns the synthesis voice for a language code, falling back to
// the default language's voice for unknown codes.
func (t VoiceTable) Voice(lang string) string {
	if v, ok := t[lang]; ok {
		return v
	}
	return t[DefaultLanguage]
}
