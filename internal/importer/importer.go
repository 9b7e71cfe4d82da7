// Package importer reads the owner, account and correspondence files used to
// bulk-open accounts.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cleared-dev/tierbank/internal/model"
)

// Files names the support files inside a data directory.
type Files struct {
	Owners        string `yaml:"owners"`
	Accounts      string `yaml:"accounts"`
	AccountOwners string `yaml:"account_owners"`
}

// DefaultFiles returns the conventional support file names.
func DefaultFiles() Files {
	return Files{
		Owners:        "owners.csv",
		Accounts:      "accounts.csv",
		AccountOwners: "account_owners.csv",
	}
}

// Bundle is the parsed content of the support files.
type Bundle struct {
	Owners []model.Owner
	Seeds  []model.AccountSeed
	Links  []model.OwnerLink
}

// Load reads all three support files from dir.
func Load(dir string, files Files) (Bundle, error) {
	var b Bundle
	var err error

	if b.Owners, err = readFile(filepath.Join(dir, files.Owners), ReadOwners); err != nil {
		return Bundle{}, err
	}
	if b.Seeds, err = readFile(filepath.Join(dir, files.Accounts), ReadSeeds); err != nil {
		return Bundle{}, err
	}
	if b.Links, err = readFile(filepath.Join(dir, files.AccountOwners), ReadLinks); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	items, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// Save writes a Bundle as the three support files in dir.
func Save(dir string, files Files, b Bundle) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	var owners, seeds, links [][]string
	for _, o := range b.Owners {
		owners = append(owners, MarshalOwner(o))
	}
	for _, s := range b.Seeds {
		seeds = append(seeds, MarshalSeed(s))
	}
	for _, l := range b.Links {
		links = append(links, MarshalLink(l))
	}

	for name, rows := range map[string][][]string{
		files.Owners:        owners,
		files.Accounts:      seeds,
		files.AccountOwners: links,
	} {
		if err := writeFile(filepath.Join(dir, name), rows); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := WriteRows(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
