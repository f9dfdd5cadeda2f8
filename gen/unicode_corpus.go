package gen

// unicodeCorpusWords is a fixed, deterministic multilingual word list
// used by UnicodeString. It deliberately spans scripts with multi-byte
// UTF-8 encodings (Cyrillic, Greek, CJK, Arabic), combining marks
// (decomposed Latin and Vietnamese accents, Devanagari vowel signs and
// virama), and codepoints outside
// the Basic Multilingual Plane (emoji), so generated strings routinely
// exercise rune-boundary and grapheme-cluster edge cases without ever
// risking an invalid UTF-8 sequence — every entry here is a complete,
// valid string literal.
var unicodeCorpusWords = []string{
	"hello", "world", "naïve", "café", "façade",
	"привет", "мир", "дом", "вода",
	"γειά", "σου", "κόσμε",
	"こんにちは", "世界", "日本語", "猫",
	"مرحبا", "بالعالم", "كتاب",
	"xin", "chào", "tiếng", "việt",
	"👋", "🌍", "🐈", "🚀",
	"𝔸", "𝔹", "𝕏",
	"schön", "größe", "weiß",
	"garçon", "éléphant",
	"café", "việt", "ñ",
	"नमस्ते", "हिन्दी",
}
