// Package handler turns typed request handlers into http.HandlerFunc values.
//
// Wrap binds the request with the configured binders, runs decorators around
// the handler and renders the returned Response. Failures go to an
// ErrorHandler; NewErrorHandler answers DataStar requests with a toast patch
// and plain requests with an error page.
//
// Responses:
//
//   - Templ, TemplMulti and TemplPartial render templ components, as SSE
//     patches when the request comes from DataStar.
//   - HTML and Attachment write a prebuilt document.
//   - JSON and JSONError write the JSONResponse envelope.
package handler
