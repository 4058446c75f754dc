package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the ErrorHandler configured in Wrap.
//
//	doc, err := store.Get(ctx, id)
//	if errors.Is(err, preview.ErrNotFound) {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
