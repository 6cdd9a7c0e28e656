package tables

// builtinLocales is the embedded locale metadata. Neutral entries resolve
// to their DefaultLang when a caller asks for a specific locale.
var builtinLocales = []LocaleData{
	{Name: "ar", ID: 0x0001, Neutral: true, DefaultLang: 0x0401},
	{Name: "ar-SA", ID: 0x0401, AnsiCP: 1256, OemCP: 720},
	{Name: "zh", ID: 0x0004, Neutral: true, DefaultLang: 0x0804},
	{Name: "zh-TW", ID: 0x0404, AnsiCP: 950, OemCP: 950},
	{Name: "zh-CN", ID: 0x0804, AnsiCP: 936, OemCP: 936},
	{Name: "de", ID: 0x0007, Neutral: true, DefaultLang: 0x0407},
	{Name: "de-DE", ID: 0x0407, AnsiCP: 1252, OemCP: 850},
	{Name: "de-CH", ID: 0x0807, AnsiCP: 1252, OemCP: 850},
	{Name: "de-AT", ID: 0x0c07, AnsiCP: 1252, OemCP: 850},
	{Name: "en", ID: 0x0009, Neutral: true, DefaultLang: 0x0409},
	{Name: "en-US", ID: 0x0409, AnsiCP: 1252, OemCP: 437},
	{Name: "en-GB", ID: 0x0809, AnsiCP: 1252, OemCP: 850},
	{Name: "en-AU", ID: 0x0c09, AnsiCP: 1252, OemCP: 850},
	{Name: "en-CA", ID: 0x1009, AnsiCP: 1252, OemCP: 850},
	{Name: "es", ID: 0x000a, Neutral: true, DefaultLang: 0x0c0a},
	{Name: "es-MX", ID: 0x080a, AnsiCP: 1252, OemCP: 850},
	{Name: "es-ES", ID: 0x0c0a, AnsiCP: 1252, OemCP: 850},
	{Name: "fr", ID: 0x000c, Neutral: true, DefaultLang: 0x040c},
	{Name: "fr-FR", ID: 0x040c, AnsiCP: 1252, OemCP: 850},
	{Name: "fr-CA", ID: 0x0c0c, AnsiCP: 1252, OemCP: 850},
	{Name: "fr-CH", ID: 0x100c, AnsiCP: 1252, OemCP: 850},
	{Name: "it", ID: 0x0010, Neutral: true, DefaultLang: 0x0410},
	{Name: "it-IT", ID: 0x0410, AnsiCP: 1252, OemCP: 850},
	{Name: "ja", ID: 0x0011, Neutral: true, DefaultLang: 0x0411},
	{Name: "ja-JP", ID: 0x0411, AnsiCP: 932, OemCP: 932},
	{Name: "ko", ID: 0x0012, Neutral: true, DefaultLang: 0x0412},
	{Name: "ko-KR", ID: 0x0412, AnsiCP: 949, OemCP: 949},
	{Name: "nl", ID: 0x0013, Neutral: true, DefaultLang: 0x0413},
	{Name: "nl-NL", ID: 0x0413, AnsiCP: 1252, OemCP: 850},
	{Name: "pl", ID: 0x0015, Neutral: true, DefaultLang: 0x0415},
	{Name: "pl-PL", ID: 0x0415, AnsiCP: 1250, OemCP: 852},
	{Name: "pt", ID: 0x0016, Neutral: true, DefaultLang: 0x0416},
	{Name: "pt-BR", ID: 0x0416, AnsiCP: 1252, OemCP: 850},
	{Name: "pt-PT", ID: 0x0816, AnsiCP: 1252, OemCP: 850},
	{Name: "ru", ID: 0x0019, Neutral: true, DefaultLang: 0x0419},
	{Name: "ru-RU", ID: 0x0419, AnsiCP: 1251, OemCP: 866},
	{Name: "sv", ID: 0x001d, Neutral: true, DefaultLang: 0x041d},
	{Name: "sv-SE", ID: 0x041d, AnsiCP: 1252, OemCP: 850},
	{Name: "tr", ID: 0x001f, Neutral: true, DefaultLang: 0x041f},
	{Name: "tr-TR", ID: 0x041f, AnsiCP: 1254, OemCP: 857},
}
