package client

type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return "GET " + e.Path + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func NewRequestError(path string, err error) *RequestError {
	return &RequestError{
		Path: path,
		Err:  err,
	}
}
