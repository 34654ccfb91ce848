package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wravell/logcask/core"
	"github.com/wravell/logcask/internal/utils"
)

func main() {
	dbPath := flag.String("db", core.DefaultLogFileName, "Log file path")
	flag.Parse()

	store, err := core.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	fmt.Printf("Opened %v\n", store.Path())
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, key, value, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		fmt.Println(execute(store, cmd, key, value))
	}
}

func execute(store *core.Store, cmd, key, value string) string {
	switch strings.ToLower(cmd) {
	case "set":
		if key == "" {
			return "usage: set <key> <value>"
		}
		if err := store.Set(key, value); err != nil {
			return "error: " + err.Error()
		}
		return "OK"

	case "get":
		if key == "" {
			return "usage: get <key>"
		}
		val, ok, err := store.Get(key)
		if err != nil {
			return "error: " + err.Error()
		}
		if !ok {
			return "NULL"
		}
		return val

	case "exists":
		if key == "" {
			return "usage: exists <key>"
		}
		if store.Has(key) {
			return "true"
		}
		return "false"

	case "count":
		return strconv.Itoa(store.Count())

	case "list":
		keys := store.Keys()
		if len(keys) == 0 {
			return "NULL"
		}
		return "----- KEYS START -----\n" + strings.Join(keys, "\n") + "\n----- KEYS END -----"

	case "help":
		return strings.TrimSpace(helpString)

	default:
		return "Invalid Command"
	}
}

const helpString = `
Available Commands:

SET <key> <value>
  Durably store a value for the given key.
  Overwrites the value if the key already exists.
  Quote values containing spaces: set city "new york"
  Response: OK

GET <key>
  Retrieve the value associated with the key.
  Response: value | NULL

EXISTS <key>
  Check if a key exists.
  Response: true | false

COUNT
  Return the total number of keys stored.
  Response: integer

LIST
  List all stored keys.
  Response: list of keys | NULL

HELP
  Show this help message.

EXIT
  Close the store and quit.
`
