package builder

import "errors"

// GenerationFailedMessage replaces the details of server errors shown in
// the builder.
const GenerationFailedMessage = "An error occurred. Please check the console for details and try again."

var ErrRenderFailed = errors.New("builder: failed to render email")
