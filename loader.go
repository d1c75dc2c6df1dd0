package expenses

import (
	"fmt"
	"os"
)

// LoadLedger reads the expense table at path. A missing file surfaces as an
// error wrapping fs.ErrNotExist so callers can fall back to a fresh ledger.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open expense file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load expense file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the full ledger snapshot to path, overwriting any
// previous content. On failure the in-memory ledger is unaffected.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create expense file %q: %w", path, err)
	}
	if err := EncodeLedger(f, l); err != nil {
		f.Close()
		return fmt.Errorf("cannot save expense file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot save expense file %q: %w", path, err)
	}
	return nil
}
