package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/filipondios/kotcalc/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNew() {
	err := errors.New(errors.CodeInvalidArgument, "bad gem")
	s.Equal("INVALID_ARGUMENT: bad gem", err.Error())
	s.Equal(errors.CodeInvalidArgument, err.Code)
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	inner := errors.NotFoundf("language %q", "xx")
	wrapped := errors.Wrap(inner, "loading table")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.True(stderrors.Is(wrapped, errors.NotFoundf("other")))
	s.Equal(inner, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("disk gone")
	wrapped := errors.Wrapf(base, "reading %s", "kotcalc.yaml")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("INTERNAL: reading kotcalc.yaml: disk gone", wrapped.Error())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("strconv"), errors.CodeInvalidArgument, "custom objective")
	s.True(errors.IsInvalidArgument(wrapped))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "x"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeNotFound, errors.GetCode(fmt.Errorf("ctx: %w", errors.NotFoundf("x"))))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Equal(http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.NoError(errors.NewValidationBuilder().Build())

	err := errors.NewValidationBuilder().
		Field("objective", "unknown kind").
		Fieldf("gems", "expected 3 values, got %d", 4).
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("INVALID_ARGUMENT: validation failed: gems: expected 3 values, got 4; objective: unknown kind", err.Error())

	var coded *errors.Error
	s.Require().True(stderrors.As(err, &coded))
	s.Contains(coded.Meta, "validation_errors")
}
