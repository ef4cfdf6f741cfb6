package vc2

// minimumMajorVersion is the lowest major_version any sequence may
// declare.
const minimumMajorVersion = 1

// recordMinimumVersion folds a feature-implied lower bound into the
// minimum major_version the sequence must declare (11.2.2).
func (s *State) recordMinimumVersion(version uint64) {
	if version > s.seq.minimumMajorVersion {
		s.seq.minimumMajorVersion = version
	}
}

// assertVersionIsMinimal checks, at the end of a sequence, that the
// declared major_version is no higher than the features used require.
// An empty sequence (no pictures) may declare the highest version: an
// encoder cannot know what an empty sequence will carry.
func (s *State) assertVersionIsMinimal() error {
	if s.seq.numPicturesInSequence == 0 && s.seq.majorVersion == 3 {
		return nil
	}
	if s.seq.majorVersion > s.seq.minimumMajorVersion {
		return &MajorVersionTooHigh{
			MajorVersion:    s.seq.majorVersion,
			RequiredVersion: s.seq.minimumMajorVersion,
		}
	}
	return nil
}

// Feature version implications (11.2.2).

func presetFrameRateVersion(index uint64) uint64 {
	if index > 11 {
		return 3
	}
	return minimumMajorVersion
}

func presetSignalRangeVersion(index uint64) uint64 {
	if index > 4 {
		return 3
	}
	return minimumMajorVersion
}

func presetColorSpecVersion(index uint64) uint64 {
	if index > 4 {
		return 3
	}
	return minimumMajorVersion
}

func presetColorPrimariesVersion(index uint64) uint64 {
	if index > 3 {
		return 3
	}
	return minimumMajorVersion
}

func presetColorMatrixVersion(index uint64) uint64 {
	if index > 3 {
		return 3
	}
	return minimumMajorVersion
}

func presetTransferFunctionVersion(index uint64) uint64 {
	if index > 3 {
		return 3
	}
	return minimumMajorVersion
}

// waveletTransformVersion returns the version an asymmetric transform
// requires.
func waveletTransformVersion(index, indexHO WaveletFilter, depthHO int) uint64 {
	if depthHO != 0 || index != indexHO {
		return 3
	}
	return minimumMajorVersion
}

// parseCodeVersion returns the version a data unit kind requires:
// fragmented pictures were introduced in version 3.
func parseCodeVersion(code ParseCode) uint64 {
	if code.IsFragment() {
		return 3
	}
	return minimumMajorVersion
}

// profileVersion returns the version a profile requires. A sequence
// using the high quality profile needs version 2 even when empty,
// since the profile field itself is unknown to version 1 decoders.
func profileVersion(profile Profile) uint64 {
	if profile == ProfileHighQuality {
		return 2
	}
	return minimumMajorVersion
}
