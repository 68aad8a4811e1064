// storedump prints the contents of the local store, one key at a time, and
// can optionally write a snapshot file. Useful when inspecting what the
// dashboard persisted without starting the server.
// Usage: go run ./cmd/storedump [-snapshot dir]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"deadline/config"
	"deadline/storage"
)

func main() {
	snapshotDir := flag.String("snapshot", "", "also write a snapshot file into this directory")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found")
	}
	cfg := config.LoadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Store open: %v", err)
	}
	defer store.Close()

	keys, err := store.Keys()
	if err != nil {
		log.Fatalf("List keys: %v", err)
	}
	if len(keys) == 0 {
		fmt.Println("store is empty")
	}

	for _, key := range keys {
		value, ok, err := store.Get(key)
		if err != nil {
			log.Fatalf("Read %s: %v", key, err)
		}
		if !ok {
			continue
		}
		fmt.Printf("=== %s ===\n", key)

		var pretty json.RawMessage
		if json.Unmarshal(value, &pretty) == nil {
			indented, err := json.MarshalIndent(pretty, "", "  ")
			if err == nil {
				fmt.Println(string(indented))
				continue
			}
		}
		fmt.Println(string(value))
	}

	if *snapshotDir != "" {
		path, err := store.Snapshot(*snapshotDir)
		if err != nil {
			log.Fatalf("Snapshot: %v", err)
		}
		fmt.Printf("snapshot written to %s\n", path)
	}
}
