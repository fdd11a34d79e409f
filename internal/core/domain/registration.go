package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Gender values accepted by the registration form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// IncidentTypes returns the incident categories offered by the form.
func IncidentTypes() []string {
	return []string{
		"theft", "fraud", "assault", "cybercrime",
		"harassment", "missing_person", "accident", "other",
	}
}

// Age bounds enforced by Validate.
const (
	MinAge = 1
	MaxAge = 150
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,18}[0-9]$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Registration is a new FIR filed by a citizen.
// Field names follow the form fields posted to the backend.
type Registration struct {
	FullName         string `yaml:"fullName" json:"fullName"`
	FatherName       string `yaml:"fatherName" json:"fatherName"`
	Age              int    `yaml:"age" json:"age"`
	Gender           string `yaml:"gender" json:"gender"`
	Address          string `yaml:"address" json:"address"`
	Phone            string `yaml:"phone" json:"phone"`
	Email            string `yaml:"email,omitempty" json:"email,omitempty"`
	IncidentDate     string `yaml:"incidentDate" json:"incidentDate"`
	IncidentTime     string `yaml:"incidentTime" json:"incidentTime"`
	IncidentLocation string `yaml:"incidentLocation" json:"incidentLocation"`
	IncidentType     string `yaml:"incidentType" json:"incidentType"`
	PoliceStation    string `yaml:"policeStation" json:"policeStation"`
	Description      string `yaml:"description" json:"description"`
	WitnessName      string `yaml:"witnessName,omitempty" json:"witnessName,omitempty"`
	WitnessPhone     string `yaml:"witnessPhone,omitempty" json:"witnessPhone,omitempty"`

	// VoiceSamples are paths to audio files attached to the report.
	VoiceSamples []string `yaml:"voiceSamples,omitempty" json:"voiceSamples,omitempty"`

	// Documents are paths to supporting documents or photos.
	Documents []string `yaml:"documents,omitempty" json:"documents,omitempty"`
}

// FormFields returns the text fields in submission order, keyed by the
// form field name. Attachments are not included.
func (r *Registration) FormFields() [][2]string {
	return [][2]string{
		{"fullName", r.FullName},
		{"fatherName", r.FatherName},
		{"age", fmt.Sprintf("%d", r.Age)},
		{"gender", r.Gender},
		{"address", r.Address},
		{"phone", r.Phone},
		{"email", r.Email},
		{"incidentDate", r.IncidentDate},
		{"incidentTime", r.IncidentTime},
		{"incidentLocation", r.IncidentLocation},
		{"incidentType", r.IncidentType},
		{"description", r.Description},
		{"witnessName", r.WitnessName},
		{"witnessPhone", r.WitnessPhone},
		{"policeStation", r.PoliceStation},
	}
}

// Validate checks the registration and returns every problem found,
// joined and wrapped with ErrInvalidInput.
func (r *Registration) Validate() error {
	var problems []error
	required := [][2]string{
		{"fullName", r.FullName},
		{"fatherName", r.FatherName},
		{"address", r.Address},
		{"incidentLocation", r.IncidentLocation},
		{"policeStation", r.PoliceStation},
		{"description", r.Description},
	}
	for _, field := range required {
		if strings.TrimSpace(field[1]) == "" {
			problems = append(problems, fmt.Errorf("%s is required", field[0]))
		}
	}

	if r.Age < MinAge || r.Age > MaxAge {
		problems = append(problems, fmt.Errorf("age must be between %d and %d", MinAge, MaxAge))
	}

	switch r.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		problems = append(problems, fmt.Errorf("gender must be one of %s, %s, %s", GenderMale, GenderFemale, GenderOther))
	}

	if !phonePattern.MatchString(strings.TrimSpace(r.Phone)) {
		problems = append(problems, errors.New("phone is not a valid number"))
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		problems = append(problems, errors.New("email is not a valid address"))
	}
	if r.WitnessPhone != "" && !phonePattern.MatchString(strings.TrimSpace(r.WitnessPhone)) {
		problems = append(problems, errors.New("witnessPhone is not a valid number"))
	}

	if _, err := time.Parse("2006-01-02", r.IncidentDate); err != nil {
		problems = append(problems, errors.New("incidentDate must be YYYY-MM-DD"))
	}
	if _, err := time.Parse("15:04", r.IncidentTime); err != nil {
		problems = append(problems, errors.New("incidentTime must be HH:MM"))
	}

	if !isIncidentType(r.IncidentType) {
		problems = append(problems, fmt.Errorf("incidentType must be one of %s", strings.Join(IncidentTypes(), ", ")))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(problems...))
}

func isIncidentType(t string) bool {
	for _, known := range IncidentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// SubmissionStatus is the delivery state of an outbox entry.
type SubmissionStatus string

// Available submission statuses.
const (
	SubmissionQueued    SubmissionStatus = "queued"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionFailed    SubmissionStatus = "failed"
)

// Submission is a registration held in the local outbox until the backend
// accepts it.
type Submission struct {
	ID           string           `json:"id"`
	Registration Registration     `json:"registration"`
	Status       SubmissionStatus `json:"status"`

	// LastError is the most recent delivery failure, empty once submitted.
	LastError string `json:"last_error,omitempty"`

	// Attempts counts delivery attempts.
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPending reports whether the submission still needs delivery.
func (s *Submission) IsPending() bool {
	return s.Status != SubmissionSubmitted
}
