package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Record is a single logged key/value write as it is laid out on disk.
//
// Records are immutable once appended; their order in the log file is their
// temporal order. The encoding is self-delimiting: a reader positioned at the
// start of a record can always determine where it ends.
type Record struct {
	CRC       uint32 // Checksum of Key + Value
	KeySize   uint32 // Length of Key in Bytes
	ValueSize uint32 // Length of Value in Bytes
	Key       []byte
	Value     []byte
}

// CRC (4) + KeySize (4) + ValueSize (4)
const HeaderSizeBytes = 12

var ErrEmptyKey = errors.New("record key must not be empty")

// New builds a Record for the given key/value pair with its checksum
// computed. Values may be empty; keys may not.
func New(key, value string) Record {
	keyBytes := []byte(key)
	valueBytes := []byte(value)

	return Record{
		CRC:       CalculateCRC(keyBytes, valueBytes),
		KeySize:   uint32(len(keyBytes)),
		ValueSize: uint32(len(valueBytes)),
		Key:       keyBytes,
		Value:     valueBytes,
	}
}

func EncodeToBytes(record *Record) ([]byte, error) {
	if record.KeySize == 0 {
		return nil, ErrEmptyKey
	}

	buf := &bytes.Buffer{}

	if err := binary.Write(buf, binary.LittleEndian, record.CRC); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, record.KeySize); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, record.ValueSize); err != nil {
		return nil, err
	}
	if _, err := buf.Write(record.Key); err != nil {
		return nil, err
	}
	if _, err := buf.Write(record.Value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func DecodeFromBytes(data []byte) (*Record, error) {
	var crc uint32
	var keySize uint32
	var valueSize uint32

	buf := bytes.NewReader(data)

	if err := binary.Read(buf, binary.LittleEndian, &crc); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &keySize); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &valueSize); err != nil {
		return nil, err
	}

	if keySize == 0 {
		return nil, ErrEmptyKey
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(buf, key); err != nil {
		return nil, err
	}

	value := make([]byte, valueSize)
	if _, err := io.ReadFull(buf, value); err != nil {
		return nil, err
	}

	return &Record{
		CRC:       crc,
		KeySize:   keySize,
		ValueSize: valueSize,
		Key:       key,
		Value:     value,
	}, nil
}
