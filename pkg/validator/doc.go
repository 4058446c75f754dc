// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates every rule and aggregates the failures into a
// ValidationErrors slice that implements error, so several field problems
// travel up in one return value:
//
//	err := validator.Apply(
//	    validator.RequiredString("body_content", body),
//	    validator.MaxLenSlice("offers", offers, 5),
//	    validator.Optional(color, validator.ValidHexColor("cta_color", color)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fields := verrs.Map()
//	}
//
// Rules hold no state and are safe to build concurrently.
package validator
