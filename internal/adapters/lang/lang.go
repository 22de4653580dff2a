// Package lang holds the static language name tables and the
// country-to-language normalization used when deriving a language partition
// key from a filename suffix.
package lang

import "strings"

// Languages maps ISO language codes to display names.
var Languages = map[string]string{
	"en": "English", "zh": "Chinese", "hi": "Hindi", "es": "Spanish",
	"fr": "French", "ar": "Arabic", "bn": "Bengali", "ru": "Russian",
	"pt": "Portuguese", "id": "Indonesian", "ur": "Urdu", "de": "German",
	"ja": "Japanese", "sw": "Swahili", "mr": "Marathi", "te": "Telugu",
	"tr": "Turkish", "ta": "Tamil", "vn": "Vietnamese", "ko": "Korean",
	"it": "Italian", "th": "Thai", "gu": "Gujarati", "pl": "Polish",
	"uk": "Ukrainian", "ml": "Malayalam", "kn": "Kannada", "or": "Odia",
	"pa": "Punjabi", "ro": "Romanian", "nl": "Dutch", "hu": "Hungarian",
	"cs": "Czech", "sv": "Swedish", "be": "Belarusian", "el": "Greek",
	"he": "Hebrew", "fi": "Finnish", "no": "Norwegian", "da": "Danish",
	"bg": "Bulgarian", "hr": "Croatian", "sk": "Slovak", "sl": "Slovenian",
	"et": "Estonian", "lv": "Latvian", "lt": "Lithuanian", "mk": "Macedonian",
	"mt": "Maltese", "ga": "Irish", "cy": "Welsh", "is": "Icelandic",
	"sq": "Albanian", "eu": "Basque", "ca": "Catalan", "gl": "Galician",
	"am": "Amharic", "ha": "Hausa", "ig": "Igbo", "yo": "Yoruba",
	"zu": "Zulu", "xh": "Xhosa", "af": "Afrikaans", "rw": "Kinyarwanda",
	"rn": "Kirundi", "lg": "Luganda", "sn": "Shona", "ny": "Chichewa",
	"st": "Sesotho", "tn": "Setswana", "ts": "Xitsonga", "ss": "Siswati",
	"ve": "Tshivenda", "nr": "Ndebele", "my": "Burmese", "km": "Khmer",
	"lo": "Lao", "si": "Sinhala", "ne": "Nepali", "as": "Assamese",
	"sd": "Sindhi", "ps": "Pashto", "fa": "Persian", "tg": "Tajik",
	"uz": "Uzbek", "kk": "Kazakh", "ky": "Kyrgyz", "tk": "Turkmen",
	"mn": "Mongolian", "ti": "Tigrinya", "dv": "Dhivehi", "fj": "Fijian",
	"to": "Tongan", "sm": "Samoan", "mi": "Maori", "qu": "Quechua",
	"gn": "Guarani", "ay": "Aymara", "fo": "Faroese", "se": "Northern Sami",
	"rm": "Romansh", "lb": "Luxembourgish", "gd": "Scottish Gaelic",
	"kw": "Cornish", "br": "Breton", "oc": "Occitan", "co": "Corsican",
	"sc": "Sardinian", "ku": "Kurdish", "az": "Azerbaijani", "ka": "Georgian",
	"hy": "Armenian", "yi": "Yiddish", "bo": "Tibetan", "ug": "Uyghur",
	"eo": "Esperanto", "la": "Latin", "sa": "Sanskrit",
}

// CountryToLanguage maps ISO country codes to the primary language code
// used as the partition key when a filename carries a country suffix.
var CountryToLanguage = map[string]string{
	"US": "en", "GB": "en", "EN": "en", "AU": "en", "CA": "en",
	"IE": "ga", "CN": "zh", "TW": "zh", "HK": "zh", "IN": "hi",
	"ES": "es", "MX": "es", "AR": "es", "FR": "fr", "SA": "ar",
	"EG": "ar", "BD": "bn", "RU": "ru", "PT": "pt", "BR": "pt",
	"ID": "id", "PK": "ur", "DE": "de", "AT": "de", "CH": "de",
	"JP": "ja", "KE": "sw", "TZ": "sw", "LK": "ta", "VN": "vn",
	"KR": "ko", "IT": "it", "TH": "th", "PL": "pl", "UA": "uk",
	"TR": "tr", "NL": "nl", "BE": "nl", "HU": "hu", "CZ": "cs",
	"SE": "sv", "BY": "be", "GR": "el", "IL": "he", "FI": "fi",
	"NO": "no", "DK": "da", "BG": "bg", "HR": "hr", "SK": "sk",
	"SI": "sl", "EE": "et", "LV": "lv", "LT": "lt", "MK": "mk",
	"MT": "mt", "IS": "is", "AL": "sq", "ET": "am", "NG": "ha",
	"ZA": "zu", "RW": "rw", "BI": "rn", "UG": "lg", "ZW": "sn",
	"MW": "ny", "LS": "st", "BW": "tn", "SZ": "ss", "MM": "my",
	"KH": "km", "LA": "lo", "NP": "ne", "AF": "ps", "IR": "fa",
	"TJ": "tg", "UZ": "uz", "KZ": "kk", "KG": "ky", "TM": "tk",
	"MN": "mn", "ER": "ti", "MV": "dv", "FJ": "fj", "TO": "to",
	"WS": "sm", "NZ": "mi", "PE": "qu", "PY": "gn", "BO": "ay",
	"FO": "fo", "LU": "lb", "IQ": "ku", "AZ": "az", "GE": "ka",
	"AM": "hy", "EU": "eo", "VA": "la",
}

// Name returns the display name for a language code, or the code itself
// when unknown.
func Name(code string) string {
	if n, ok := Languages[strings.ToLower(code)]; ok {
		return n
	}
	return code
}

// NormalizeToLanguageCode maps a filename suffix to a language code. A
// known language code passes through lowercased; a country code resolves
// via CountryToLanguage; anything else returns "" (invalid).
func NormalizeToLanguageCode(suffix string) string {
	lower := strings.ToLower(suffix)
	if _, ok := Languages[lower]; ok {
		return lower
	}
	if code, ok := CountryToLanguage[strings.ToUpper(suffix)]; ok {
		return code
	}
	return ""
}
