package apperr

type Kind string

// AppError pairs an internal cause with the message the page may show.
type AppError struct {
	Kind      Kind
	PublicMsg string
	Err       error
}
