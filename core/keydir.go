package core

// KeyDirEntry represents the in-memory index entry for a single key.
//
// Each entry points to the latest record appended for its key. Older
// records for the same key may still exist earlier in the log but are
// superseded: the entry always references the record with the largest
// log offset, which is what gives lookups last-write-wins semantics.
//
// The KeyDir is rebuilt on startup by replaying the log front-to-back.
type KeyDirEntry struct {
	Offset     int64  // Byte offset in the log file where the record starts
	ValueSize  uint32 // Size of the value in bytes
	RecordSize uint32 // Total size of the record on disk (header + key + value)
}

// KeyDir is the in-memory index mapping keys to their latest on-disk entries.
//
// It is the primary structure used to service read requests without
// scanning the log.
type KeyDir map[string]KeyDirEntry
