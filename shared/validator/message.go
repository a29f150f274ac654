package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"required_if": "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be at most {param}",
		"min":         "{field} must be at least {param}",
		"email":       "{field} must be a valid email address",
		"uuid":        "{field} must be a valid identifier",
		"e164":        "{field} must be a valid phone number",
		"dateformat":  "{field} must be a date in YYYY-MM-DD format",
		"timeformat":  "{field} must be a time in HH:MM format",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

// fieldMessages converts validator errors into a map keyed by the JSON field name. The
// returned summary is the message of the first failing field.
func fieldMessages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	summary := ""

	for _, valErr := range valErrors {
		key := fieldKey(valErr)
		if _, exists := fields[key]; exists {
			continue
		}

		msg := render(valErr)
		fields[key] = msg

		if summary == "" {
			summary = msg
		}
	}

	return summary, fields
}

func render(valErr val.FieldError) string {
	template := messages[valErr.Tag()]
	if template == "" {
		template = "{field} is invalid"
	}

	msg := strings.ReplaceAll(template, "{field}", humanize(valErr.Field()))

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}

// fieldKey returns the JSON path of the failing field without the top level struct name,
// e.g. "items[0].quantity".
func fieldKey(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

// humanize turns "check_in_date" into "Check in date".
func humanize(field string) string {
	if idx := strings.LastIndex(field, "["); idx > 0 {
		field = field[:idx]
	}

	words := strings.ReplaceAll(field, "_", " ")
	if words == "" {
		return "Value"
	}

	return strings.ToUpper(words[:1]) + words[1:]
}
