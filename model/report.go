package model

type MidiMetadata struct {
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
	Year    uint   `json:"year"`
}

type FileNumToMidiPath = map[uint32]string

type Report struct {
	Id          string              `json:"id"`
	File        string              `json:"file,omitempty"`
	FileNum     uint32              `json:"file_num"`
	Params      Params              `json:"params"`
	NumNotes    int                 `json:"num_notes"`
	Density     []DensityPoint      `json:"density"`
	TopPatterns []PatternCount      `json:"top_patterns"`
	Patterns    []PatternCount      `json:"patterns"`
	Syncopation []SyncopationRecord `json:"syncopation"`
	Groove      []GrooveRecord      `json:"groove"`
	GrooveStats GrooveSummary       `json:"groove_stats"`
	Tempo       TempoMap            `json:"tempo"`

	// NOTE: only filled in when a metadata store is configured
	MidiMetadata *MidiMetadata `json:"midi_metadata"`
}

type ReportOverview struct {
	FileNum  uint32
	File     string
	Filename string
	NumNotes int
}
