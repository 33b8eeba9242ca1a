package validation

// FieldError is the failure half of a per-field validation result. Handlers
// collect these and re-render forms with the message list.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Messages flattens field errors into displayable strings.
func Messages(errs []FieldError) []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return msgs
}
