package protocol

// Reply lines emitted on standard output, one per command.
const (
	ReplyOK   = "OK"
	ReplyNull = "NULL"
	ReplyErr  = "ERR"
)

// FormatLookup renders a GET result: the value itself when the key is
// present, ReplyNull otherwise.
func FormatLookup(value string, ok bool) string {
	if !ok {
		return ReplyNull
	}
	return value
}
