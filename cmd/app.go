// Package cmd implements the CLI application to manage net worth snapshots.
package cmd

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

const (
	EnvFile     = "NWT_FILE"
	EnvCurrency = "NWT_CURRENCY"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "snapshots")
	c.Register(&listCmd{}, "snapshots")
	c.Register(&switchCmd{}, "snapshots")
	c.Register(&renameCmd{}, "snapshots")
	c.Register(&deleteCmd{}, "snapshots")
	c.Register(&dupCmd{}, "snapshots")

	c.Register(&addCmd{}, "items")
	c.Register(&editCmd{}, "items")
	c.Register(&delCmd{}, "items")
	c.Register(&itemsCmd{}, "items")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&ratiosCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")

	c.Register(&importCmd{}, "document")
	c.Register(&exportCmd{}, "document")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// Names lists the subcommand names, for shell completion.
func Names() []string {
	return []string{
		"new", "list", "switch", "rename", "delete", "dup",
		"add", "edit", "del", "items",
		"summary", "ratios", "breakdown",
		"import", "export",
		"assist", "topic",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.

var storeFile = flag.String("f", envOr(EnvFile, networth.DocumentKey), "Path to the net worth document file")
var currency = flag.String("currency", envOr(EnvCurrency, "USD"), "Display currency (ISO 4217 code)")

func backend() networth.FileBackend {
	return networth.FileBackend{Dir: filepath.Dir(*storeFile)}
}

// activeKey is the sidecar key recording the last switched-to snapshot.
// The active choice is session state, never part of the document itself.
func activeKey() string { return filepath.Base(*storeFile) + ".active" }

// OpenStore opens the app store and restores the recorded active snapshot.
func OpenStore() (*networth.Store, error) {
	renderer.CurrencyCode = *currency

	b := backend()
	store, err := networth.Open(b, filepath.Base(*storeFile))
	if err != nil {
		return nil, err
	}
	if payload, err := b.Get(activeKey()); err == nil {
		id := strings.TrimSpace(string(payload))
		if err := store.SwitchActive(id); err != nil {
			log.Printf("warning: recorded active snapshot %q is gone, falling back to the first one", id)
		}
	}
	return store, nil
}

// saveActive records the active snapshot id for the next invocation.
func saveActive(id string) {
	if err := backend().Set(activeKey(), []byte(id+"\n")); err != nil {
		log.Printf("warning: cannot record active snapshot: %v", err)
	}
}
