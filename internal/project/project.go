// Package project owns the on-disk layout of a prdgen workspace.
package project

import (
	"os"
	"path/filepath"
)

const DataDir = ".prdgen"

// RootDir returns the prdgen data directory under the workspace root.
func RootDir(root string) string {
	return filepath.Join(root, DataDir)
}

// StatePath is the persisted form state.
func StatePath(root string) string {
	return filepath.Join(RootDir(root), "state.json")
}

// ConfigPath is the workspace configuration file.
func ConfigPath(root string) string {
	return filepath.Join(RootDir(root), "config.toml")
}

// DBPath is the sqlite database used by the serve command's document store.
func DBPath(root string) string {
	return filepath.Join(RootDir(root), "prds.db")
}

// ExportsDir is where exported documents land by default.
func ExportsDir(root string) string {
	return filepath.Join(RootDir(root), "exports")
}

// EnsureInitialized creates the data directory when missing.
func EnsureInitialized(root string) error {
	return os.MkdirAll(RootDir(root), 0755)
}

// Initialized reports whether the workspace has a data directory.
func Initialized(root string) bool {
	info, err := os.Stat(RootDir(root))
	return err == nil && info.IsDir()
}
