package social

import "errors"

// ErrNoDataLoaded is the shared precondition failure: an operation was asked
// to run before any document was parsed and normalized.
var ErrNoDataLoaded = errors.New("no data loaded, upload and parse an XML file first")
