package lint

// Kind names the rule a finding came from.
type Kind string

// Finding kinds, in the order they are reported within a sentence.
const (
	KindForbiddenWord   Kind = "forbidden-word"
	KindUnapprovedWord  Kind = "unapproved-word"
	KindSentenceTooLong Kind = "sentence-too-long"
	KindPassiveVoice    Kind = "passive-voice"
)

// Kinds lists every finding kind in report order.
var Kinds = []Kind{
	KindForbiddenWord,
	KindUnapprovedWord,
	KindSentenceTooLong,
	KindPassiveVoice,
}

// Finding is one rule violation. Begin and End are rune offsets within the
// sentence, covering the offending word or span.
type Finding struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Begin      int    `json:"begin"`
	End        int    `json:"end"`
}
