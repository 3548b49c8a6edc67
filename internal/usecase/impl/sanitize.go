package impl

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/usecase"
)

const (
	maxFullNameLength     = 100
	maxBusinessNameLength = 200
	maxPlanLength         = 50
	minPhoneDigits        = 8
	maxPhoneDigits        = 15
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStripper  = regexp.MustCompile(`[^\d+]`)
	markupStripper = strings.NewReplacer("<", "", ">", "")
)

type sanitizedRequest struct {
	FullName     string
	Email        string
	BusinessName string
	WhatsApp     string
	Plan         string
	Language     string
}

// sanitizeEmail trims and lowercases, returning "" when the address is not plausible.
func sanitizeEmail(email string) string {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(trimmed) {
		return ""
	}

	return trimmed
}

// sanitizeText strips angle brackets and enforces 1..maxLen characters.
func sanitizeText(text string, maxLen int) string {
	cleaned := markupStripper.Replace(strings.TrimSpace(text))
	if n := utf8.RuneCountInString(cleaned); n == 0 || n > maxLen {
		return ""
	}

	return cleaned
}

// sanitizePhone keeps digits and '+', accepting 8 to 15 characters.
func sanitizePhone(phone string) string {
	cleaned := phoneStripper.ReplaceAllString(phone, "")
	if len(cleaned) < minPhoneDigits || len(cleaned) > maxPhoneDigits {
		return ""
	}

	return cleaned
}

func normalizeLanguage(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), "en") {
		return "en"
	}

	return "es"
}

func sanitizeRequestAccess(input *usecase.RequestAccessInput) (*sanitizedRequest, error) {
	out := &sanitizedRequest{
		FullName:     sanitizeText(input.FullName, maxFullNameLength),
		Email:        sanitizeEmail(input.Email),
		BusinessName: sanitizeText(input.BusinessName, maxBusinessNameLength),
		WhatsApp:     sanitizePhone(input.WhatsApp),
		Language:     normalizeLanguage(input.Language),
	}
	if strings.TrimSpace(input.Plan) != "" {
		out.Plan = sanitizeText(input.Plan, maxPlanLength)
	}

	var fields []domainerrors.FieldError
	if out.Email == "" {
		fields = append(fields, domainerrors.FieldError{Field: "email", Reason: "must be a valid email address"})
	}
	if out.FullName == "" {
		fields = append(fields, domainerrors.FieldError{Field: "full_name", Reason: "is required, up to 100 characters"})
	}
	if out.BusinessName == "" {
		fields = append(fields, domainerrors.FieldError{Field: "business_name", Reason: "is required, up to 200 characters"})
	}
	if out.WhatsApp == "" {
		fields = append(fields, domainerrors.FieldError{Field: "whatsapp", Reason: "must have 8 to 15 digits"})
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed, fields...)
	}

	return out, nil
}
