package usecase

// DomainError covers failures the caller can fix: bad input, unknown ids,
// rejected business rules.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError covers infrastructure failures: storage, gateway, missing
// configuration. Handlers map these to 500 and keep the detail server-side.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
