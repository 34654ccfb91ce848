package core

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wravell/logcask/internal/lock"
	"github.com/wravell/logcask/internal/record"
	"github.com/wravell/logcask/internal/utils"
)

// ErrCorruptLog is returned by Open when a record before the end of the
// log fails to decode or its checksum does not match. A damaged interior
// record means the log cannot be replayed safely, so the store refuses to
// start rather than silently dropping data. Damage confined to the final
// record is treated as a torn write from a crash and recovered by
// truncation instead.
var ErrCorruptLog = errors.New("corrupt record before end of log")

// Store is a durable key-value store backed by a single append-only log
// file. Every Set is written and fsynced before it is acknowledged; the
// in-memory KeyDir is rebuilt from the log on Open and updated after each
// successful append.
//
// A Store is owned by one process at a time (enforced with a directory
// lock) and is not safe for concurrent use: commands are expected to be
// issued one at a time, each running to completion.
type Store struct {
	lockFile *os.File
	logFile  *os.File
	offset   int64
	keyDir   KeyDir
	path     string
}

// Open opens the log file at path, creating it if absent, and replays it
// to rebuild the in-memory index. A partial record at the end of the log
// (crash mid-write) is truncated away; a damaged record anywhere else
// fails Open with ErrCorruptLog.
func Open(path string) (*Store, error) {
	lf, err := lock.LockDirectory(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, LogFileMode)
	if err != nil {
		lock.UnlockDirectory(lf)
		return nil, err
	}

	st := &Store{
		lockFile: lf,
		logFile:  f,
		keyDir:   make(KeyDir),
		path:     path,
	}

	if err := st.replayLog(); err != nil {
		f.Close()
		lock.UnlockDirectory(lf)
		return nil, err
	}

	return st, nil
}

// replayLog reads the log front-to-back, folding every record into the
// KeyDir in append order (later records for a key overwrite earlier ones)
// and leaving the append offset at the end of the last valid record.
func (s *Store) replayLog() error {
	info, err := s.logFile.Stat()
	if err != nil {
		return err
	}
	size := info.Size()

	if _, err := s.logFile.Seek(0, io.SeekStart); err != nil {
		return err
	}

	var offset int64 = 0

	for {
		recordStartOffset := offset

		header := make([]byte, record.HeaderSizeBytes)
		_, err := io.ReadFull(s.logFile, header)
		if err == io.EOF {
			// Clean end of log.
			s.offset = offset
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			return s.recoverTruncatedTail(recordStartOffset)
		}
		if err != nil {
			return err
		}

		var crc uint32
		var keySize uint32
		var valueSize uint32

		buf := bytes.NewReader(header)
		if err := binary.Read(buf, binary.LittleEndian, &crc); err != nil {
			return err
		}
		if err := binary.Read(buf, binary.LittleEndian, &keySize); err != nil {
			return err
		}
		if err := binary.Read(buf, binary.LittleEndian, &valueSize); err != nil {
			return err
		}

		key := make([]byte, keySize)
		if _, err := io.ReadFull(s.logFile, key); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return s.recoverTruncatedTail(recordStartOffset)
			}
			return err
		}

		value := make([]byte, valueSize)
		if _, err := io.ReadFull(s.logFile, value); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return s.recoverTruncatedTail(recordStartOffset)
			}
			return err
		}

		recordSize := record.HeaderSizeBytes + keySize + valueSize
		recordEndOffset := recordStartOffset + int64(recordSize)

		if keySize == 0 || !record.ValidateCRC(key, value, crc) {
			// A fully readable but invalid final record is a torn write
			// from a crash; anything earlier is real corruption.
			if recordEndOffset == size {
				return s.recoverTruncatedTail(recordStartOffset)
			}
			return fmt.Errorf("%w: offset %d", ErrCorruptLog, recordStartOffset)
		}

		s.keyDir[string(key)] = KeyDirEntry{
			Offset:     recordStartOffset,
			ValueSize:  valueSize,
			RecordSize: recordSize,
		}

		offset = recordEndOffset
	}
}

// recoverTruncatedTail discards a partial trailing record so that future
// appends land directly after the last valid record and remain replayable.
func (s *Store) recoverTruncatedTail(offset int64) error {
	if err := utils.TruncateAt(s.logFile, offset); err != nil {
		return err
	}
	s.offset = offset
	return nil
}

// Set durably appends a record for key and updates the index. It returns
// only after the write has been forced to stable storage; if the write or
// the sync fails, neither the index nor the append offset advance, so the
// failed bytes are overwritten by the next append.
func (s *Store) Set(key, value string) error {
	rec := record.New(key, value)
	encoded, err := record.EncodeToBytes(&rec)
	if err != nil {
		return err
	}

	n, err := s.logFile.WriteAt(encoded, s.offset)
	if err != nil {
		return err
	}
	if err := s.logFile.Sync(); err != nil {
		return err
	}

	s.keyDir[key] = KeyDirEntry{
		Offset:     s.offset,
		ValueSize:  rec.ValueSize,
		RecordSize: record.HeaderSizeBytes + rec.KeySize + rec.ValueSize,
	}
	s.offset += int64(n)

	return nil
}

// Get returns the current value for key, reading it back from the log at
// the offset recorded in the KeyDir. The second return is false if the
// key has never been written.
func (s *Store) Get(key string) (string, bool, error) {
	entry, ok := s.keyDir[key]
	if !ok {
		return "", false, nil
	}

	buf := make([]byte, entry.RecordSize)
	if _, err := s.logFile.ReadAt(buf, entry.Offset); err != nil {
		return "", false, err
	}

	rec, err := record.DecodeFromBytes(buf)
	if err != nil {
		return "", false, err
	}

	if !record.ValidateCRC(rec.Key, rec.Value, rec.CRC) {
		return "", false, fmt.Errorf("checksum mismatch for key %q at offset %d", key, entry.Offset)
	}

	return string(rec.Value), true, nil
}

// Has reports whether key has ever been written.
func (s *Store) Has(key string) bool {
	_, ok := s.keyDir[key]
	return ok
}

// Count returns the number of distinct keys in the store.
func (s *Store) Count() int {
	return len(s.keyDir)
}

// Keys returns all distinct keys, in no particular order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.keyDir))
	for k := range s.keyDir {
		keys = append(keys, k)
	}
	return keys
}

// Path returns the location of the log file.
func (s *Store) Path() string {
	return s.path
}

// Close syncs and closes the log file and releases the directory lock.
// Every acknowledged Set is already durable, so Close performs no extra
// flushing beyond the per-append barriers.
func (s *Store) Close() error {
	err := s.logFile.Sync()
	if cerr := s.logFile.Close(); err == nil {
		err = cerr
	}
	lock.UnlockDirectory(s.lockFile)
	return err
}
