package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrUnknownField = errors.New("unknown profile field")
	ErrEmptyValue   = errors.New("value is empty")
	ErrInvalidEmail = errors.New("invalid email")
	ErrTooLong      = errors.New("value too long")
)

// MaxValueLen bounds a single field value in runes.
const MaxValueLen = 500

type Field string

const (
	FieldFullName   Field = "full_name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldLocation   Field = "location"
	FieldBio        Field = "bio"
	FieldSkills     Field = "skills"
	FieldEducation  Field = "education"
	FieldExperience Field = "experience"
)

// Fields lists the editable fields in display order.
var Fields = []Field{
	FieldFullName, FieldEmail, FieldPhone, FieldLocation,
	FieldBio, FieldSkills, FieldEducation, FieldExperience,
}

var labels = map[Field]string{
	FieldFullName:   "Full Name",
	FieldEmail:      "Email",
	FieldPhone:      "Phone",
	FieldLocation:   "Location",
	FieldBio:        "Bio",
	FieldSkills:     "Skills",
	FieldEducation:  "Education",
	FieldExperience: "Experience",
}

// Label is the display name of f, or f itself when unknown.
func Label(f Field) string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// ParseField resolves a field name from callback data.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if _, ok := labels[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// Profile is a student's personal information as stored in the key-value store.
type Profile struct {
	UserID     int64     `json:"user_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	Education  string    `json:"education"`
	Experience string    `json:"experience"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// Default is the profile shown before the student saves any edit. The
// session email replaces the sample one when known.
func Default(userID int64, email string) Profile {
	p := Profile{
		UserID:     userID,
		FullName:   "John Doe",
		Email:      "john.doe@email.com",
		Phone:      "+1 (555) 123-4567",
		Location:   "San Francisco, CA",
		Bio:        "Passionate about product management and technology. Looking for internship opportunities to apply my skills and learn from industry experts.",
		Skills:     []string{"Product Strategy", "Market Research", "Agile", "Figma", "SQL"},
		Education:  "Bachelor of Business Administration, Stanford University",
		Experience: "Product Management Intern at TechCorp (Summer 2023)",
	}
	if email != "" {
		p.Email = email
	}
	return p
}

// Set validates value and assigns it to f. Skills are comma separated.
func (p *Profile) Set(f Field, value string, now time.Time) error {
	if _, ok := labels[f]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyValue
	}
	if utf8.RuneCountInString(value) > MaxValueLen {
		return fmt.Errorf("%w: limit %d characters", ErrTooLong, MaxValueLen)
	}

	switch f {
	case FieldFullName:
		p.FullName = value
	case FieldEmail:
		if !validEmail(value) {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, value)
		}
		p.Email = strings.ToLower(value)
	case FieldPhone:
		p.Phone = value
	case FieldLocation:
		p.Location = value
	case FieldBio:
		p.Bio = value
	case FieldSkills:
		skills := splitSkills(value)
		if len(skills) == 0 {
			return ErrEmptyValue
		}
		p.Skills = skills
	case FieldEducation:
		p.Education = value
	case FieldExperience:
		p.Experience = value
	}

	p.UpdatedAt = now
	return nil
}

// Value renders the current value of f as plain text.
func (p Profile) Value(f Field) string {
	switch f {
	case FieldFullName:
		return p.FullName
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	case FieldLocation:
		return p.Location
	case FieldBio:
		return p.Bio
	case FieldSkills:
		return strings.Join(p.Skills, ", ")
	case FieldEducation:
		return p.Education
	case FieldExperience:
		return p.Experience
	}
	return ""
}

func validEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.ContainsAny(s, " \t") || strings.Contains(domain, "@") {
		return false
	}
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

// splitSkills splits on commas, dropping blanks and case-insensitive duplicates.
func splitSkills(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		key := strings.ToLower(part)
		if part == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, part)
	}
	return out
}
