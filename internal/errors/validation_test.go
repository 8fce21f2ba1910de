package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Goblin Cave", vb)
	errors.ValidateRange("initiative", 12, -10, 40, vb)
	errors.ValidatePositive("width", 30, vb)
	errors.ValidateEnum("tool", "cone", []string{"circle", "cone", "line"}, vb)

	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateRange("initiative", 41, -10, 40, vb)
	errors.ValidatePositive("width", 0, vb)
	errors.ValidateEnum("tool", "square", []string{"circle", "cone", "line"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"is required"}, fields["name"])
	s.Assert().Equal([]string{"must be between -10 and 40"}, fields["initiative"])
	s.Assert().Equal([]string{"must be positive"}, fields["width"])
	s.Assert().Equal([]string{"must be one of: circle, cone, line"}, fields["tool"])
}

func (s *ValidationTestSuite) TestErrorMessageIsStable() {
	err := errors.NewValidationBuilder().
		RequiredField("scene_id").
		InvalidField("campaign_id", "unknown campaign").
		Build()

	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: campaign_id: is invalid: unknown campaign; scene_id: is required",
		err.Error(),
	)
}
