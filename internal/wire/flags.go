package wire

// GeneralPurposeFlag is the decoded form of the 16-bit general-purpose bit
// flag field. Raw is kept alongside for round-tripping and debugging;
// unrecognized bits are otherwise ignored.
type GeneralPurposeFlag struct {
	Raw                        uint16
	Encrypted                  bool
	DataDescriptorPresent      bool
	UTF8Names                  bool
	CentralDirectoryEncrypted  bool
}

// DecodeFlags interprets the general-purpose bit flag field.
func DecodeFlags(raw uint16) GeneralPurposeFlag {
	return GeneralPurposeFlag{
		Raw:                       raw,
		Encrypted:                 raw&(1<<0) != 0,
		DataDescriptorPresent:     raw&(1<<3) != 0,
		UTF8Names:                 raw&(1<<11) != 0,
		CentralDirectoryEncrypted: raw&(1<<13) != 0,
	}
}
