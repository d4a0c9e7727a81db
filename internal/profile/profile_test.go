package profile_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"internmatch-bot/internal/profile"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	p := profile.Default(42, "ada@uni.edu")
	if p.UserID != 42 || p.Email != "ada@uni.edu" || p.FullName != "John Doe" {
		t.Errorf("Default = %+v", p)
	}
	if !p.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt = %v, want zero", p.UpdatedAt)
	}
	if got := profile.Default(1, "").Email; got != "john.doe@email.com" {
		t.Errorf("sample email = %q", got)
	}
}

func TestSet(t *testing.T) {
	p := profile.Default(1, "")

	if err := p.Set(profile.FieldFullName, "  Ada Lovelace ", now); err != nil {
		t.Fatal(err)
	}
	if p.FullName != "Ada Lovelace" || !p.UpdatedAt.Equal(now) {
		t.Errorf("full name = %q updated %v", p.FullName, p.UpdatedAt)
	}

	if err := p.Set(profile.FieldEmail, "Ada@Uni.EDU", now); err != nil {
		t.Fatal(err)
	}
	if p.Email != "ada@uni.edu" {
		t.Errorf("email = %q", p.Email)
	}

	if err := p.Set(profile.FieldSkills, "Go, SQL, , go, Figma", now); err != nil {
		t.Fatal(err)
	}
	if want := []string{"Go", "SQL", "Figma"}; !reflect.DeepEqual(p.Skills, want) {
		t.Errorf("skills = %v, want %v", p.Skills, want)
	}
	if got := p.Value(profile.FieldSkills); got != "Go, SQL, Figma" {
		t.Errorf("Value(skills) = %q", got)
	}
}

func TestSet_Errors(t *testing.T) {
	cases := []struct {
		f     profile.Field
		value string
		want  error
	}{
		{profile.FieldBio, "   ", profile.ErrEmptyValue},
		{profile.FieldSkills, " , ,", profile.ErrEmptyValue},
		{profile.FieldEmail, "not-an-email", profile.ErrInvalidEmail},
		{profile.FieldEmail, "a@b@c.com", profile.ErrInvalidEmail},
		{profile.FieldEmail, "ada@localhost", profile.ErrInvalidEmail},
		{profile.FieldBio, strings.Repeat("x", profile.MaxValueLen+1), profile.ErrTooLong},
		{profile.Field("age"), "21", profile.ErrUnknownField},
	}
	for _, c := range cases {
		p := profile.Default(1, "")
		before := p
		err := p.Set(c.f, c.value, now)
		if !errors.Is(err, c.want) {
			t.Errorf("Set(%s, %q) = %v, want %v", c.f, c.value, err, c.want)
		}
		if !reflect.DeepEqual(p, before) {
			t.Errorf("Set(%s, %q) changed the profile on error", c.f, c.value)
		}
	}
}

func TestParseField(t *testing.T) {
	for _, f := range profile.Fields {
		got, err := profile.ParseField(string(f))
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
		if profile.Label(f) == string(f) {
			t.Errorf("field %q has no label", f)
		}
	}
	if _, err := profile.ParseField("salary"); !errors.Is(err, profile.ErrUnknownField) {
		t.Errorf("ParseField(salary) = %v", err)
	}
}
