package domain

// TextKey identifies a translatable UI string.
type TextKey string

// UI strings.
const (
	TextTitle           TextKey = "title"
	TextPlaceholder     TextKey = "placeholder"
	TextFetch           TextKey = "fetch"
	TextFetching        TextKey = "fetching"
	TextSupport         TextKey = "support"
	TextChatPlaceholder TextKey = "chatPlaceholder"
	TextSend            TextKey = "send"
	TextDownload        TextKey = "download"
	TextDocument        TextKey = "document"
	TextLegalReference  TextKey = "legalReference"
	TextIPCTitle        TextKey = "ipcTitle"
	TextCPCTitle        TextKey = "cpcTitle"
	TextSearchLaws      TextKey = "searchLaws"
	TextInvalidFIRID    TextKey = "invalidFirId"
	TextFIRNotFound     TextKey = "firNotFound"
	TextNoResults       TextKey = "noResults"
)

// Chat assistant strings.
const (
	TextWelcome          TextKey = "welcome"
	TextSelectLanguage   TextKey = "selectLanguage"
	TextLanguageSelected TextKey = "languageSelected"
	TextSelectSection    TextKey = "selectSection"
	TextIPCOption        TextKey = "ipcOption"
	TextSectionPrompt    TextKey = "sectionPrompt"
	TextSectionExample   TextKey = "sectionExample"
	TextSectionNotFound  TextKey = "sectionNotFound"
	TextBackToMain       TextKey = "backToMain"
)

// AssistantName is the display name of the chat assistant.
const AssistantName = "NyayVidhi Assistant"

// Translation is a table of UI strings for one language.
type Translation map[TextKey]string

var translations = map[Language]Translation{
	LanguageEnglish: {
		TextTitle:            "FIR Tracker",
		TextPlaceholder:      "Enter FIR number (e.g. FIR2025001)",
		TextFetch:            "Fetch FIR",
		TextFetching:         "Fetching...",
		TextSupport:          "Legal Assistant",
		TextChatPlaceholder:  "Type your message...",
		TextSend:             "Send",
		TextDownload:         "Download",
		TextDocument:         "FIR Document",
		TextLegalReference:   "Legal Reference",
		TextIPCTitle:         "Indian Penal Code",
		TextCPCTitle:         "Code of Civil Procedure",
		TextSearchLaws:       "Search sections...",
		TextInvalidFIRID:     "Please enter a valid FIR number",
		TextFIRNotFound:      "FIR not found. Please check the number and try again.",
		TextNoResults:        "No sections found",
		TextWelcome:          "Hello! How may I assist you today?",
		TextSelectLanguage:   "Please select your preferred language:",
		TextLanguageSelected: "Language set to English. How can I help you?",
		TextSelectSection:    "Please select what you'd like to know about:",
		TextIPCOption:        "Indian Penal Code (IPC)",
		TextSectionPrompt:    "Please enter the IPC section number you'd like to know about:",
		TextSectionExample:   `Example: Enter "1" for IPC Section 1`,
		TextSectionNotFound:  "Section not found. Please try another section number.",
		TextBackToMain:       "Back to main menu",
	},
	LanguageHindi: {
		TextTitle:            "एफआईआर ट्रैकर",
		TextPlaceholder:      "एफआईआर संख्या दर्ज करें (जैसे FIR2025001)",
		TextFetch:            "एफआईआर प्राप्त करें",
		TextFetching:         "प्राप्त किया जा रहा है...",
		TextSupport:          "कानूनी सहायक",
		TextChatPlaceholder:  "अपना संदेश लिखें...",
		TextSend:             "भेजें",
		TextDownload:         "डाउनलोड",
		TextDocument:         "एफआईआर दस्तावेज़",
		TextLegalReference:   "कानूनी संदर्भ",
		TextIPCTitle:         "भारतीय दंड संहिता",
		TextCPCTitle:         "सिविल प्रक्रिया संहिता",
		TextSearchLaws:       "धाराएं खोजें...",
		TextInvalidFIRID:     "कृपया एक मान्य एफआईआर संख्या दर्ज करें",
		TextFIRNotFound:      "एफआईआर नहीं मिली। कृपया संख्या जांचें और पुनः प्रयास करें।",
		TextNoResults:        "कोई धारा नहीं मिली",
		TextWelcome:          "नमस्ते! मैं आपकी कैसे सहायता कर सकता हूं?",
		TextSelectLanguage:   "कृपया अपनी पसंदीदा भाषा चुनें:",
		TextLanguageSelected: "भाषा हिंदी में सेट की गई। मैं आपकी कैसे सहायता कर सकता हूं?",
		TextSelectSection:    "कृपया चुनें आप क्या जानना चाहते हैं:",
		TextIPCOption:        "भारतीय दंड संहिता (IPC)",
		TextSectionPrompt:    "कृपया वह IPC धारा संख्या दर्ज करें जिसके बारे में आप जानना चाहते हैं:",
		TextSectionExample:   `उदाहरण: IPC धारा 1 के लिए "1" दर्ज करें`,
		TextSectionNotFound:  "धारा नहीं मिली। कृपया दूसरी धारा संख्या आज़माएं।",
		TextBackToMain:       "मुख्य मेनू पर वापस जाएं",
	},
	LanguageBengali: {
		TextWelcome:          "হ্যালো! আমি আপনাকে কীভাবে সাহায্য করতে পারি?",
		TextSelectLanguage:   "অনুগ্রহ করে আপনার পছন্দের ভাষা নির্বাচন করুন:",
		TextLanguageSelected: "ভাষা বাংলায় সেট করা হয়েছে। আমি আপনাকে কীভাবে সাহায্য করতে পারি?",
		TextSelectSection:    "অনুগ্রহ করে নির্বাচন করুন আপনি কী জানতে চান:",
		TextIPCOption:        "ভারতীয় দণ্ডবিধি (IPC)",
		TextSectionPrompt:    "অনুগ্রহ করে যে IPC ধারা সম্পর্কে জানতে চান তার নম্বর লিখুন:",
		TextSectionNotFound:  "ধারা পাওয়া যায়নি। অনুগ্রহ করে অন্য ধারা নম্বর চেষ্টা করুন।",
		TextBackToMain:       "মূল মেনুতে ফিরে যান",
	},
	LanguageTelugu: {
		TextWelcome:          "నమస్కారం! నేను మీకు ఎలా సహాయం చేయగలను?",
		TextSelectLanguage:   "దయచేసి మీ అభీష్ట భాషను ఎంచుకోండి:",
		TextLanguageSelected: "భాష తెలుగుకు సెట్ చేయబడింది. నేను మీకు ఎలా సహాయం చేయగలను?",
		TextSelectSection:    "దయచేసి మీరు తెలుసుకోవాలనుకునేది ఎంచుకోండి:",
		TextIPCOption:        "భారతీయ శిక్షా స్మృతి (IPC)",
		TextSectionPrompt:    "దయచేసి మీరు తెలుసుకోవాలనుకునే IPC సెక్షన్ నంబర్‌ను నమోదు చేయండి:",
		TextSectionNotFound:  "సెక్షన్ కనుగొనబడలేదు. దయచేసి మరొక సెక్షన్ నంబర్‌ను ప్రయత్నించండి.",
		TextBackToMain:       "ప్రధాన మెనుకు తిరిగి వెళ్ళండి",
	},
	LanguageTamil: {
		TextWelcome:          "வணக்கம்! நான் உங்களுக்கு எவ்வாறு உதவ முடியும்?",
		TextSelectLanguage:   "உங்கள் விருப்பமான மொழியைத் தேர்ந்தெடுக்கவும்:",
		TextLanguageSelected: "மொழி தமிழில் அமைக்கப்பட்டுள்ளது. நான் உங்களுக்கு எவ்வாறு உதவ முடியும்?",
		TextSelectSection:    "நீங்கள் எதைப் பற்றி தெரிந்துகொள்ள விரும்புகிறீர்கள்:",
		TextIPCOption:        "இந்திய தண்டனைச் சட்டம் (IPC)",
		TextSectionPrompt:    "நீங்கள் அறிய விரும்பும் IPC பிரிவு எண்ணை உள்ளிடவும்:",
		TextSectionNotFound:  "பிரிவு கிடைக்கவில்லை. வேறு பிரிவு எண்ணை முயற்சிக்கவும்.",
		TextBackToMain:       "முதன்மை பட்டிக்குத் திரும்பவும்",
	},
	LanguageMarathi: {
		TextWelcome:          "नमस्कार! मी आपली कशी मदत करू शकतो?",
		TextSelectLanguage:   "कृपया आपली पसंतीची भाषा निवडा:",
		TextLanguageSelected: "भाषा मराठीमध्ये सेट केली आहे. मी आपली कशी मदत करू शकतो?",
		TextSelectSection:    "कृपया आपल्याला काय जाणून घ्यायचे आहे ते निवडा:",
		TextIPCOption:        "भारतीय दंड संहिता (IPC)",
		TextSectionPrompt:    "कृपया आपल्याला जाणून घ्यायची असलेली IPC कलम संख्या टाका:",
		TextSectionNotFound:  "कलम सापडले नाही. कृपया दुसरी कलम संख्या प्रयत्न करा.",
		TextBackToMain:       "मुख्य मेनूवर परत जा",
	},
	LanguageGujarati: {
		TextWelcome:          "નમસ્તે! હું તમને કેવી રીતે મદદ કરી શકું?",
		TextSelectLanguage:   "કૃપા કરીને તમારી પસંદગીની ભાષા પસંદ કરો:",
		TextLanguageSelected: "ભાષા ગુજરાતીમાં સેટ કરવામાં આવી છે. હું તમને કેવી રીતે મદદ કરી શકું?",
		TextSelectSection:    "કૃપા કરીને પસંદ કરો તમે શું જાણવા માંગો છો:",
		TextIPCOption:        "ભારતીય દંડ સંહિતા (IPC)",
		TextSectionPrompt:    "કૃપા કરીને તમે જાણવા માંગતા હોય તે IPC કલમ નંબર દાખલ કરો:",
		TextSectionNotFound:  "કલમ મળી નથી. કૃપા કરીને બીજો કલમ નંબર પ્રયાસ કરો.",
		TextBackToMain:       "મુખ્ય મેનુ પર પાછા જાઓ",
	},
	LanguagePunjabi: {
		TextWelcome:          "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! ਮੈਂ ਤੁਹਾਡੀ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
		TextSelectLanguage:   "ਕਿਰਪਾ ਕਰਕੇ ਆਪਣੀ ਪਸੰਦੀਦਾ ਭਾਸ਼ਾ ਚੁਣੋ:",
		TextLanguageSelected: "ਭਾਸ਼ਾ ਪੰਜਾਬੀ ਵਿੱਚ ਸੈੱਟ ਕੀਤੀ ਗਈ ਹੈ। ਮੈਂ ਤੁਹਾਡੀ ਕਿਵੇਂ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ?",
		TextSelectSection:    "ਕਿਰਪਾ ਕਰਕੇ ਚੁਣੋ ਤੁਸੀਂ ਕੀ ਜਾਣਨਾ ਚਾਹੁੰਦੇ ਹੋ:",
		TextIPCOption:        "ਭਾਰਤੀ ਦੰਡ ਸੰਹਿਤਾ (IPC)",
		TextSectionPrompt:    "ਕਿਰਪਾ ਕਰਕੇ ਉਹ IPC ਧਾਰਾ ਨੰਬਰ ਦਾਖਲ ਕਰੋ ਜਿਸ ਬਾਰੇ ਤੁਸੀਂ ਜਾਣਨਾ ਚਾਹੁੰਦੇ ਹੋ:",
		TextSectionNotFound:  "ਧਾਰਾ ਨਹੀਂ ਮਿਲੀ। ਕਿਰਪਾ ਕਰਕੇ ਕੋਈ ਹੋਰ ਧਾਰਾ ਨੰਬਰ ਅਜ਼ਮਾਓ।",
		TextBackToMain:       "ਮੁੱਖ ਮੀਨੂ 'ਤੇ ਵਾਪਸ ਜਾਓ",
	},
}

// Translations returns the complete string table for a language.
// Keys missing from the language, and unknown languages, fall back to English.
func Translations(lang Language) Translation {
	english := translations[LanguageEnglish]
	out := make(Translation, len(english))
	for k, v := range english {
		out[k] = v
	}
	for k, v := range translations[lang] {
		out[k] = v
	}
	return out
}

// T returns a single translated string.
func (t Translation) T(key TextKey) string {
	if s, ok := t[key]; ok {
		return s
	}
	return string(key)
}
