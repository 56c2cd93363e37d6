package taxonomy

import "github.com/avandermeer/hearthplan/internal/domain"

// DefaultLadders is the built-in ladder card content, keyed by ladder key.
// Rung order is the promotion order.
var DefaultLadders = map[string]domain.LadderCardDefinition{
	"handwriting.letters": {
		Key:   "handwriting.letters",
		Title: "Letter formation ladder",
		Rungs: []domain.Rung{
			{
				ID:           "trace",
				Name:         "Traces letters",
				EvidenceText: "Stays on the dotted model for a full line",
				SupportsText: "Hand-over-hand as needed, raised-line paper",
			},
			{
				ID:           "copy",
				Name:         "Copies from a model",
				EvidenceText: "Copies a letter row with correct top-down strokes",
				SupportsText: "Model in view, verbal stroke cues",
			},
			{
				ID:           "recall",
				Name:         "Writes from memory",
				EvidenceText: "Writes dictated letters without a model",
				SupportsText: "Starting-dot prompt only",
			},
			{
				ID:           "fluent",
				Name:         "Fluent in words",
				EvidenceText: "Uses target letters legibly inside real words",
				SupportsText: "None expected",
			},
		},
	},
	"math.subtraction": {
		Key:   "math.subtraction",
		Title: "Subtraction with regrouping ladder",
		Rungs: []domain.Rung{
			{
				ID:           "concrete",
				Name:         "Regroups with blocks",
				EvidenceText: "Trades a ten for ones using base-ten blocks",
				SupportsText: "Blocks and a worked example",
			},
			{
				ID:           "pictorial",
				Name:         "Regroups on paper with drawings",
				EvidenceText: "Draws the trade and solves 2-digit problems",
				SupportsText: "Grid paper, example card",
			},
			{
				ID:           "abstract",
				Name:         "Regroups with numerals only",
				EvidenceText: "Solves 2-digit problems with standard notation",
				SupportsText: "Prompt to check the ones column",
			},
			{
				ID:           "transfer",
				Name:         "Applies in word problems",
				EvidenceText: "Picks subtraction and regroups inside a story problem",
				SupportsText: "None expected",
			},
		},
	},
	"reading.decoding": {
		Key:   "reading.decoding",
		Title: "Decoding ladder",
		Rungs: []domain.Rung{
			{
				ID:           "sounds",
				Name:         "Blends sounds in CVC words",
				EvidenceText: "Blends three sounds into a word without segmenting aloud",
				SupportsText: "Sound buttons, echo reading",
			},
			{
				ID:           "patterns",
				Name:         "Reads taught patterns",
				EvidenceText: "Reads words with taught digraphs and blends",
				SupportsText: "Pattern card in view",
			},
			{
				ID:           "passages",
				Name:         "Reads decodable passages",
				EvidenceText: "Reads a decodable page with fewer than 3 stumbles",
				SupportsText: "Finger tracking",
			},
			{
				ID:           "books",
				Name:         "Reads leveled books",
				EvidenceText: "Reads a full leveled book across sittings",
				SupportsText: "None expected",
			},
		},
	},
}

// LadderFor returns the definition for key, or nil when no ladder exists.
func LadderFor(key string) *domain.LadderCardDefinition {
	def, ok := DefaultLadders[key]
	if !ok {
		return nil
	}
	return &def
}
