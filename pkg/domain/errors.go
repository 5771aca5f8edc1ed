package domain

import "errors"

// ErrStepSkipped is returned by a step's Apply to signal that the guarded
// administrative call was not needed (e.g. the resource already exists).
var ErrStepSkipped = errors.New("step skipped")

// ErrResourceExists is returned when the server rejects a create call
// because the named resource already exists.
var ErrResourceExists = errors.New("resource already exists")

// ErrNotConnected is returned when an administrative call is issued before
// the client connected to the admin instance.
var ErrNotConnected = errors.New("not connected to admin instance")
