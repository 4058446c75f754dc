package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "subject", Message: "too long"})
		errs.Add(validator.ValidationError{Field: "offers", Message: "too many"})
		assert.Equal(t, "validation failed: subject: too long; offers: too many", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "cta_color", Message: "bad color"},
		{Field: "offers", Message: "too many"},
		{Field: "cta_color", Message: "still bad"},
	}

	assert.True(t, errs.Has("cta_color"))
	assert.False(t, errs.Has("subject"))
	assert.Equal(t, []string{"bad color", "still bad"}, errs.Get("cta_color"))
	assert.Equal(t, []string{"cta_color", "offers"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"cta_color": {"bad color", "still bad"},
		"offers":    {"too many"},
	}, errs.Map())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("body_content", "Hello"),
			validator.MaxLenString("subject", "Sale", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("body_content", "  "),
			validator.MaxLenSlice("offers", make([]int, 6), 5),
			validator.InListString("image_position", "middle", []string{"left", "right", "top"}),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"body_content", "offers", "image_position"}, verrs.Fields())
		assert.Equal(t, "must be one of: left, right, top", verrs.Get("image_position")[0])
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.RequiredString("body_content", ""))
		wrapped := fmt.Errorf("collect: %w", errors.Join(errors.New("invalid"), err))

		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, validator.ExtractValidationErrors(wrapped).Has("body_content"))
	})

	t.Run("nil error is not a validation error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidationError(nil))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	})
}

func TestOptional(t *testing.T) {
	t.Parallel()

	rule := validator.ValidHexColor("cta_color", "nope")
	assert.False(t, rule.Check())
	assert.True(t, validator.Optional("", validator.ValidHexColor("cta_color", "")).Check())
	assert.False(t, validator.Optional("nope", rule).Check())
	assert.Equal(t, "cta_color", validator.Optional("nope", rule).Error.Field)
}

func TestValidHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"#4f46e5", true},
		{"4F46E5", true},
		{"#fff", true},
		{"#ffff", false},
		{"#gggggg", false},
		{"", false},
		{"red", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidHexColor("color", tt.value).Check())
		})
	}
}

func TestMaxLenString_CountsCharacters(t *testing.T) {
	t.Parallel()
	assert.True(t, validator.MaxLenString("subject", "héllo", 5).Check())
	assert.False(t, validator.MaxLenString("subject", "héllo!", 5).Check())
}
