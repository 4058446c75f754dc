// Package binder fills request structs from HTTP bodies.
//
// Two binders are provided: Form for urlencoded and multipart bodies (with
// `form:` and `file:` tags) and JSON for application/json bodies. Both return
// functions matching handler.Bind:
//
//	handler.Wrap(render, handler.WithBinders[handler.Context, email.Data](
//	    binder.JSON(binder.WithMaxJSONSize(8<<20)),
//	))
//
// Errors wrap ErrUnsupportedMediaType, ErrMissingContentType,
// ErrFailedToParseJSON or ErrInvalidForm. Form returns ErrBinderNotApplicable
// when the target has no form or file tags so handler.Wrap can skip it.
package binder
