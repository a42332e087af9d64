package services

// ValidationError reports a missing or unusable required field; handlers
// surface it as a 400.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
