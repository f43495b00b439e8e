package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a new ULID string used to tag every log line of one run.
var NewRunID = func() string {
	return ulid.Make().String()
}
