package main

const (
	// InputPattern selects the files scanned in the working directory.
	InputPattern = "*.xml"
	// OutputName is the wordlist written next to the inputs.
	OutputName = "output.txt"

	MaxTokenLength = 65
	MaxValueLength = 20
	MaxDigitLength = 20
	MaxWordLength  = 40
)

// Mode names a harvesting variant.
type Mode string

const (
	ModeBroad  Mode = "broad"
	ModeNarrow Mode = "narrow"
)

// Config holds the parameters of a harvesting run.
type Config struct {
	Mode Mode
	// Dir is the directory searched for inputs and receiving the output.
	Dir        string
	Pattern    string
	OutputPath string

	// SupplementalHarvest adds the short word and phrase scans to the
	// structured patterns. More recall, much less precision.
	SupplementalHarvest bool
	// SplitBareSlashTokens breaks tokens holding '/' but no '?' into
	// their segments instead of leaving them for the validator.
	SplitBareSlashTokens bool
}

// BroadConfig returns the wide-recall variant.
func BroadConfig() Config {
	return Config{
		Mode:                ModeBroad,
		Dir:                 ".",
		Pattern:             InputPattern,
		OutputPath:          OutputName,
		SupplementalHarvest: true,
	}
}

// NarrowConfig returns the structured-patterns-only variant.
func NarrowConfig() Config {
	return Config{
		Mode:                 ModeNarrow,
		Dir:                  ".",
		Pattern:              InputPattern,
		OutputPath:           OutputName,
		SplitBareSlashTokens: true,
	}
}
