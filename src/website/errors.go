package website

import (
	"fmt"
	"net/http"
)

func FourOhFour(c *RequestContext) ResponseData {
	var res ResponseData
	res.StatusCode = http.StatusNotFound

	if c.Req.Method == http.MethodGet || c.Req.Method == http.MethodHead {
		res.WriteJson(errorBody{Error: "Not Found"})
	} else {
		res.Header().Set("Content-Type", "text/plain")
		res.Write([]byte("Not Found"))
	}
	return res
}

// A SafeError can be used to wrap another error and explicitly provide
// an error message that is safe to show to a user. This allows detailed
// errors to be logged while showing a tidy message to users.
type SafeError struct {
	Msg     string
	Wrapped error
}

func NewSafeError(err error, msg string, args ...interface{}) error {
	return &SafeError{
		Msg:     fmt.Sprintf(msg, args...),
		Wrapped: err,
	}
}

func (s *SafeError) Error() string {
	return s.Msg
}

func (s *SafeError) Unwrap() error {
	return s.Wrapped
}
