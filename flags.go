package zipreader

import "github.com/asynczip/zipreader/internal/wire"

// GeneralPurposeFlag is the decoded general-purpose bit-flag field.
type GeneralPurposeFlag = wire.GeneralPurposeFlag
