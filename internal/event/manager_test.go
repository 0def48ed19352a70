package event

import "testing"

func TestDispatchReachesSubscribers(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeFileSaved, func(e Event) bool {
		data, ok := e.Data.(FileSavedData)
		if !ok {
			t.Fatalf("unexpected payload type %T", e.Data)
		}
		got = append(got, data.FilePath)
		return false
	})
	m.Subscribe(TypeFileSaved, func(e Event) bool {
		got = append(got, "second")
		return false
	})

	m.Dispatch(TypeFileSaved, FileSavedData{FilePath: "doc.txt"})
	m.Dispatch(TypeFileLoaded, FileLoadedData{FilePath: "ignored.txt"})

	if len(got) != 2 || got[0] != "doc.txt" || got[1] != "second" {
		t.Fatalf("handlers: got %v", got)
	}
}

func TestDispatchWithNoSubscribersIsNoop(t *testing.T) {
	NewManager().Dispatch(TypeBufferModified, BufferModifiedData{})
}
