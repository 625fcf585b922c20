// Package commands implements the prdgen subcommands.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jerops/prd-generator/internal/form"
	"github.com/jerops/prd-generator/internal/project"
	"github.com/jerops/prd-generator/internal/store"
)

// workspace resolves the current directory and its state store.
func workspace() (string, *store.Store, error) {
	root, err := os.Getwd()
	if err != nil {
		return "", nil, err
	}
	return root, store.New(project.StatePath(root)), nil
}

// loadState reads the saved form. A missing file is a fresh start; an
// unreadable one gets a stderr warning and the defaults the store already
// fell back to. Commands never fail on bad saved state.
func loadState(st *store.Store) form.State {
	state, err := st.Load()
	if err != nil && !errors.Is(err, store.ErrNoState) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return state
}
