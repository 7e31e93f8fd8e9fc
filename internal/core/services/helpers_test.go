package services_test

import (
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/stretchr/testify/suite"
)

// requireAppError asserts err is an *apperrors.AppError with the given code and message.
func requireAppError(s *suite.Suite, err error, code int, message string) {
	s.T().Helper()
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(code, appErr.Code)
	s.Equal(message, appErr.Message)
}
