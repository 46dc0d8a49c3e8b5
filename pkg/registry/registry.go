// Package registry defines the fixed vocabulary of the production pipeline:
// the seven stage names in execution order, their attribution weights, and
// the pipeline/stage status enums. The table is immutable for the lifetime
// of a pipeline — changing order or weights requires a data migration.
package registry

// StageName identifies one of the seven pipeline stages.
type StageName string

// Stage names, in execution order.
const (
	StageResearch StageName = "RESEARCH"
	StageScript   StageName = "SCRIPT"
	StageVoice    StageName = "VOICE"
	StageMusic    StageName = "MUSIC"
	StageVisual   StageName = "VISUAL"
	StageEditor   StageName = "EDITOR"
	StagePublish  StageName = "PUBLISH"
)

// Order is the fixed execution order of the pipeline.
var Order = []StageName{
	StageResearch,
	StageScript,
	StageVoice,
	StageMusic,
	StageVisual,
	StageEditor,
	StagePublish,
}

// weights are whole percents and sum to exactly 100.
var weights = map[StageName]int{
	StageResearch: 10,
	StageScript:   25,
	StageVoice:    20,
	StageMusic:    10,
	StageVisual:   15,
	StageEditor:   15,
	StagePublish:  5,
}

// String implements fmt.Stringer.
func (n StageName) String() string { return string(n) }

// Values implements ent's field.EnumValues so StageName can back an
// ent enum column directly.
func (StageName) Values() []string {
	vals := make([]string, len(Order))
	for i, n := range Order {
		vals[i] = string(n)
	}
	return vals
}

// Valid reports whether name is one of the seven stage names.
func Valid(name StageName) bool {
	_, ok := weights[name]
	return ok
}

// Index returns the zero-based position of name in the execution order,
// or -1 if name is unknown.
func Index(name StageName) int {
	for i, n := range Order {
		if n == name {
			return i
		}
	}
	return -1
}

// Weight returns the attribution weight (whole percent) for name.
// Unknown names weigh zero.
func Weight(name StageName) int {
	return weights[name]
}

// Next returns the stage following name in execution order.
// The second return is false for the terminal stage and unknown names.
func Next(name StageName) (StageName, bool) {
	i := Index(name)
	if i < 0 || i+1 >= len(Order) {
		return "", false
	}
	return Order[i+1], true
}

// Predecessor returns the stage preceding name in execution order.
// The second return is false for the first stage and unknown names.
func Predecessor(name StageName) (StageName, bool) {
	i := Index(name)
	if i <= 0 {
		return "", false
	}
	return Order[i-1], true
}

// First returns the entry stage of the pipeline.
func First() StageName { return Order[0] }

// Last returns the terminal stage of the pipeline.
func Last() StageName { return Order[len(Order)-1] }

// TotalWeight returns the sum of all stage weights (always 100).
func TotalWeight() int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}
