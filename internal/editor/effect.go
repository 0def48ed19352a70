// internal/editor/effect.go
package editor

// EffectKind identifies the asynchronous operation a reducer step scheduled.
type EffectKind int

const (
	EffectLoadFile EffectKind = iota // Read Path and deliver FileOpened
	EffectPickOpen                   // Ask the picker for a path, then load it
	EffectPickSave                   // Ask the picker for a path, then write Text
	EffectSaveFile                   // Write Text to Path and deliver FileSaved
)

// Effect describes one pending asynchronous operation. The effect owns
// its own snapshot of path and text taken at schedule time; it shares
// nothing mutable with the buffer, so edits keep flowing while it runs.
type Effect struct {
	Kind EffectKind
	Path string // EffectLoadFile, EffectSaveFile
	Text string // EffectPickSave, EffectSaveFile
	Gen  uint64 // Generation stamped by the reducer at schedule time
}

func (k EffectKind) String() string {
	switch k {
	case EffectLoadFile:
		return "LoadFile"
	case EffectPickOpen:
		return "PickFileToOpen"
	case EffectPickSave:
		return "PickFileToSave"
	case EffectSaveFile:
		return "SaveFile"
	default:
		return "Unknown"
	}
}
