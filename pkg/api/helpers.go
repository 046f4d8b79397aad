package api

import "net/url"

// ValidateURL validates if a raw URL string is an absolute, well-formed URL.
func ValidateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return NewError(ErrInvalidExportLocation.StatusCode, ErrInvalidExportLocation.Message)
	}
	return nil
}
