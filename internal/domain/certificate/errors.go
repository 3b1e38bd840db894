package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("hour certificate not found or already processed")
)
