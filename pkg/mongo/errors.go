package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")

	// ErrValidationFailed wraps schema.ValidationErrors returned before a write.
	ErrValidationFailed = errors.New("document failed schema validation")
)
