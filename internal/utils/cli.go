package utils

import (
	"errors"

	"github.com/kballard/go-shellquote"
)

// SplitStringIntoCommandAndArguments tokenizes one interactive shell line
// into a command word, an optional key and an optional value. Quoting
// follows shell rules, so values containing spaces can be written as
// set city "new york".
func SplitStringIntoCommandAndArguments(line string) (cmd, key, value string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", "", err
	}

	switch len(words) {
	case 0:
		return "", "", "", errors.New("empty command")
	case 1:
		return words[0], "", "", nil
	case 2:
		return words[0], words[1], "", nil
	case 3:
		return words[0], words[1], words[2], nil
	default:
		return "", "", "", errors.New("too many arguments (quote values containing spaces)")
	}
}
