package repo

import "errors"

// ErrSerialExists is the only domain-specific error the repository raises
// deliberately: Create found a non-archived record holding the same
// normalized serial number. Handlers map it to code SERIAL_ALREADY_EXISTS.
var ErrSerialExists = errors.New("serial number already in use")

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")
