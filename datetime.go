package zipreader

import "github.com/asynczip/zipreader/internal/wire"

// DOSTime is the decoded MS-DOS date/time pair. Fields are unvalidated.
type DOSTime = wire.DOSTime
