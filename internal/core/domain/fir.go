package domain

import (
	"fmt"
	"strings"
)

// FIRStatus is the investigation state of a First Information Report.
type FIRStatus string

// Available FIR statuses.
const (
	FIRPending    FIRStatus = "pending"
	FIRInProgress FIRStatus = "in_progress"
	FIRResolved   FIRStatus = "resolved"
	FIRClosed     FIRStatus = "closed"
)

// ParseFIRStatus converts a stored status string to a FIRStatus.
func ParseFIRStatus(s string) (FIRStatus, error) {
	status := FIRStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown FIR status %q", ErrInvalidInput, s)
	}
	return status, nil
}

// IsValid returns true if the status is recognised.
func (s FIRStatus) IsValid() bool {
	switch s {
	case FIRPending, FIRInProgress, FIRResolved, FIRClosed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s FIRStatus) String() string {
	return string(s)
}

var statusLabels = map[Language]map[FIRStatus]string{
	LanguageEnglish: {
		FIRPending: "Pending", FIRInProgress: "In Progress",
		FIRResolved: "Resolved", FIRClosed: "Closed",
	},
	LanguageHindi: {
		FIRPending: "लंबित", FIRInProgress: "प्रगति में",
		FIRResolved: "समाधान हो गया", FIRClosed: "बंद",
	},
	LanguageBengali: {
		FIRPending: "বিচারাধীন", FIRInProgress: "চলমান",
		FIRResolved: "সমাধান হয়েছে", FIRClosed: "বন্ধ",
	},
	LanguageTelugu: {
		FIRPending: "పెండింగ్", FIRInProgress: "ప్రగతిలో ఉంది",
		FIRResolved: "పరిష్కరించబడింది", FIRClosed: "మూసివేయబడింది",
	},
	LanguageTamil: {
		FIRPending: "நிலுவையில்", FIRInProgress: "செயல்பாட்டில்",
		FIRResolved: "தீர்க்கப்பட்டது", FIRClosed: "மூடப்பட்டது",
	},
	LanguageMarathi: {
		FIRPending: "प्रलंबित", FIRInProgress: "प्रगतीपथावर",
		FIRResolved: "सोडवले", FIRClosed: "बंद",
	},
	LanguageGujarati: {
		FIRPending: "બાકી", FIRInProgress: "પ્રગતિમાં",
		FIRResolved: "ઉકેલાયું", FIRClosed: "બંધ",
	},
	LanguagePunjabi: {
		FIRPending: "ਬਕਾਇਆ", FIRInProgress: "ਜਾਰੀ",
		FIRResolved: "ਹੱਲ ਹੋ ਗਿਆ", FIRClosed: "ਬੰਦ",
	},
}

// Label returns the status label in the given language.
// Unknown languages fall back to English.
func (s FIRStatus) Label(lang Language) string {
	labels, ok := statusLabels[lang]
	if !ok {
		labels = statusLabels[LanguageEnglish]
	}
	if label, ok := labels[s]; ok {
		return label
	}
	return string(s)
}

// FIR is a registered First Information Report as shown by the tracker.
type FIR struct {
	// ID is the public FIR number, e.g. FIR2025001.
	ID string `yaml:"id" json:"id"`

	// URL points at the scanned FIR document.
	URL string `yaml:"url" json:"url"`

	Status FIRStatus `yaml:"status" json:"status"`

	// Language is the language the FIR was filed in.
	Language Language `yaml:"language" json:"language"`

	Station     string `yaml:"station" json:"station"`
	Date        string `yaml:"date" json:"date"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
}

// Matches reports whether the lower-cased term occurs in the id, station,
// type or description of the FIR.
func (f *FIR) Matches(term string) bool {
	for _, field := range []string{f.ID, f.Station, f.Type, f.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Document is a retrieved FIR document.
type Document struct {
	FIRID       string `json:"fir_id"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}
