// Package intake extracts candidate contact fields from resume text.
// Regex extraction runs first; an optional LLM pass fills whatever the
// regexes missed. Fields the pipeline cannot find stay empty and the
// session controller keeps the session in AwaitingProfile until the
// candidate supplies them.
package intake

import (
	"regexp"
	"strings"
)

// Contact holds the fields required to start an interview.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Complete reports whether all required fields are present.
func (c Contact) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// Missing lists the empty required fields in display order.
func (c Contact) Missing() []string {
	var out []string
	if c.Name == "" {
		out = append(out, "name")
	}
	if c.Email == "" {
		out = append(out, "email")
	}
	if c.Phone == "" {
		out = append(out, "phone")
	}
	return out
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	// Name lines are short, mostly alphabetic, and carry no digits or @.
	nameLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*(?: [A-Za-z][A-Za-z.'-]*){1,3}$`)
)

// Parse extracts contact fields from raw resume text using regexes.
func Parse(text string) Contact {
	return Contact{
		Name:  findName(text),
		Email: emailRe.FindString(text),
		Phone: strings.TrimSpace(phoneRe.FindString(text)),
	}
}

// findName scans the first five non-empty lines for something shaped like
// a person's name. Resumes usually lead with the name, so the first match
// wins.
func findName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.ContainsAny(line, "@0123456789") {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// Merge fills c's empty fields from other, never overwriting a field
// already found.
func (c Contact) Merge(other Contact) Contact {
	if c.Name == "" {
		c.Name = other.Name
	}
	if c.Email == "" {
		c.Email = other.Email
	}
	if c.Phone == "" {
		c.Phone = other.Phone
	}
	return c
}
