/*
	Basic script that generates a churn-heavy workload to help create a large
	log for testing replay and recovery. Writes are sequential because the
	store serves exactly one client at a time.
*/

package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/wravell/logcask/core"
)

const (
	// Fixed universe
	totalKeys   = 100
	totalValues = 100

	// Per-cycle behavior
	writesPerCycle = 20
	totalCycles    = 5000

	progressEvery = 500
)

func main() {
	start := time.Now()
	fmt.Println("Starting logcask churn-heavy load generator")

	dir, err := os.MkdirTemp("", "logcask-loadgen-*")
	if err != nil {
		fmt.Println("could not create scratch directory:", err)
		os.Exit(1)
	}

	store, err := core.Open(filepath.Join(dir, core.DefaultLogFileName))
	if err != nil {
		fmt.Println("could not open store:", err)
		os.Exit(1)
	}
	defer store.Close()

	keys := makeKeys(totalKeys)
	values := makeValues(totalValues)

	writes := 0
	for cycle := 1; cycle <= totalCycles; cycle++ {
		for i := 0; i < writesPerCycle; i++ {
			key := keys[rand.Intn(totalKeys)]
			value := values[rand.Intn(totalValues)]

			if err := store.Set(key, value); err != nil {
				fmt.Println("write failed:", err)
				os.Exit(1)
			}
			writes++
		}

		if cycle%progressEvery == 0 {
			fmt.Printf("cycle %d/%d (%d writes)\n", cycle, totalCycles, writes)
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("Done: %d durable writes over %d keys in %s (%.0f writes/sec)\n",
		writes, store.Count(), elapsed, float64(writes)/elapsed.Seconds())
	fmt.Println("log file kept at:", store.Path())
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%03d", i)
	}
	return keys
}

func makeValues(n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("value-%06d", rand.Intn(1_000_000))
	}
	return values
}
