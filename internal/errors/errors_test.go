package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	err := errors.FailedPrecondition("not your turn")
	s.Assert().Equal("FAILED_PRECONDITION: not your turn", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("connection reset"), "failed to save scene")
	s.Assert().Equal("INTERNAL: failed to save scene: connection reset", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.OutOfRange("target out of range").WithMeta("range_ft", 60)
	wrapped := errors.Wrap(base, "select target")

	s.Assert().Equal(errors.CodeOutOfRange, wrapped.Code)
	s.Assert().Equal(60, wrapped.Meta["range_ft"])
	s.Assert().True(errors.Is(wrapped, errors.OutOfRange("")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.Internal("redis down").WithMeta("scene_id", "scene_1")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "change rolled back")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("scene_1", wrapped.Meta["scene_id"])
	s.Assert().Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "ignored"))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Assert().True(errors.IsNotFound(errors.NotFoundf("scene %s not found", "x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("bad")))
	s.Assert().True(errors.IsOutOfRange(errors.OutOfRange("far")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("down")))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))

	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal("far", errors.GetMessage(errors.OutOfRange("far")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.OutOfRange("Fire Bolt reaches 120 ft").
		WithMeta("distance_ft", 135).
		WithMeta("range_ft", 120)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.OutOfRange, st.Code())
	s.Assert().Equal("Fire Bolt reaches 120 ft", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeOutOfRange, errors.GetCode(back))
	meta := errors.GetMeta(back)
	s.Require().NotNil(meta)
	s.Assert().Equal(float64(135), meta["distance_ft"])
	s.Assert().Equal(float64(120), meta["range_ft"])
}

func (s *ErrorsTestSuite) TestGRPCPlainError() {
	grpcErr := errors.ToGRPCError(fmt.Errorf("boom"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())

	s.Assert().Nil(errors.ToGRPCError(nil))

	already := status.Error(codes.NotFound, "gone")
	s.Assert().Equal(already, errors.ToGRPCError(already))
}

func (s *ErrorsTestSuite) TestGRPCValidationMeta() {
	err := errors.NewValidationBuilder().RequiredField("campaign_id").Build()

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
	s.Assert().Len(st.Details(), 1)
}
