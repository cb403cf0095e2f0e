package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	verticalPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// ValidateEmail checks basic email shape and the RFC 5321 length limit.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Invalid email format")
	}
	if len(email) > 254 {
		return errors.New("Email too long")
	}
	return nil
}

// ValidatePassword enforces minimal password strength: 8-128 characters
// with at least one letter and one number.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("Password is required")
	}
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return errors.New("Password too long")
	}
	if !letterPattern.MatchString(password) {
		return errors.New("Password must contain at least one letter")
	}
	if !digitPattern.MatchString(password) {
		return errors.New("Password must contain at least one number")
	}
	return nil
}

var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Sanitize neutralizes markup in user input: the characters <>"' are
// replaced with HTML entities, then the result is trimmed and truncated to
// maxLength runes. Output never contains <>"' and running Sanitize on its
// own output is a no-op.
func Sanitize(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	text = htmlEscaper.Replace(text)
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > maxLength {
		text = strings.TrimSpace(string(r[:maxLength]))
	}
	return text
}

// ValidateRequiredFields reports the first field in the given order that is
// absent or empty.
func ValidateRequiredFields(data map[string]any, fields []string) error {
	for _, f := range fields {
		v, ok := data[f]
		if !ok || isEmptyValue(v) {
			return fmt.Errorf("%s is required", f)
		}
	}
	return nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// ValidateRole allows only the three portal roles.
func ValidateRole(role string) error {
	switch role {
	case "admin", "verticalhead", "volunteer":
		return nil
	}
	return errors.New("Invalid role. Must be one of: admin, verticalhead, volunteer")
}

// ValidateVertical checks a vertical name: 2-50 characters, letters,
// numbers and spaces only.
func ValidateVertical(vertical string) error {
	if vertical == "" {
		return errors.New("Vertical name is required")
	}
	vertical = Sanitize(vertical, 50)
	if len([]rune(vertical)) < 2 {
		return errors.New("Vertical name too short")
	}
	if !verticalPattern.MatchString(vertical) {
		return errors.New("Vertical name can only contain letters, numbers, and spaces")
	}
	return nil
}

// ValidateActivity checks an activity payload: required fields in order,
// then title/description length and the date format.
func ValidateActivity(data map[string]any) error {
	if err := ValidateRequiredFields(data, []string{"title", "description", "date"}); err != nil {
		return err
	}
	title, _ := data["title"].(string)
	if len([]rune(Sanitize(title, 200))) < 3 {
		return errors.New("Title must be at least 3 characters long")
	}
	description, _ := data["description"].(string)
	if len([]rune(Sanitize(description, 2000))) < 10 {
		return errors.New("Description must be at least 10 characters long")
	}
	date, _ := data["date"].(string)
	if !datePattern.MatchString(date) {
		return errors.New("Invalid date format. Use YYYY-MM-DD")
	}
	return nil
}

// ValidateContact checks a contact-form payload.
func ValidateContact(data map[string]any) error {
	if err := ValidateRequiredFields(data, []string{"name", "email", "message"}); err != nil {
		return err
	}
	email, _ := data["email"].(string)
	if err := ValidateEmail(email); err != nil {
		return err
	}
	name, _ := data["name"].(string)
	if len([]rune(Sanitize(name, 100))) < 2 {
		return errors.New("Name must be at least 2 characters long")
	}
	message, _ := data["message"].(string)
	if len([]rune(Sanitize(message, 2000))) < 10 {
		return errors.New("Message must be at least 10 characters long")
	}
	return nil
}
