package clients

import (
	"errors"
	"time"
)

const (
	PREDICT_PATH        = "/predict"
	API_PREDICT_PATH    = "/api/predict"
	HEALTHCHECK_TIMEOUT = 3 * time.Second
	USER_AGENT          = "sentiview-client/1.0 (+https://github.com/spacesedan/sentiview)"
)

var (
	// ErrUnexpectedStatus is wrapped with the status code when a peer answers
	// outside the 2xx range.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrInvalidResponse  = errors.New("response body is not valid JSON")
)
