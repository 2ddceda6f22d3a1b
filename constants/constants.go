package constants

import "os"

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetIndexDir() string {
	return getenv("INDEX_PATH", "./out")
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

// GetMetadataEndpoint returns "" when no metadata store is configured.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataTable() string {
	return getenv("METADATA_TABLE", "rhythmdex-metadata")
}

func GetPort() string {
	return getenv("PORT", "8080")
}

const (
	DefaultWindow              = 1.0
	DefaultPatternQuantization = 0.25
	DefaultGrooveQuantization  = 0.125
	DefaultBeatsPerBar         = 4.0
	DefaultTopPatterns         = 10
)

// PatternLength is the number of IOIs in a rhythm pattern.
const PatternLength = 4

// notes at or past the beat boundary by less than this count as on the beat
const StrongBeatTolerance = 0.1

const MaxMidiValue = 127

const AllReportsFilename = "allReports.dat"
