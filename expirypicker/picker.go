package expirypicker

import (
	"fmt"
	"sync"
	"time"

	"github.com/alovak/cardform/cardutils"
)

// Picker holds the current expiration date of a form and tells its delegate
// whenever an edit is committed.
type Picker struct {
	mu       sync.Mutex
	delegate Delegate
	month    string
	year     string
}

func NewPicker(d Delegate) *Picker {
	return &Picker{delegate: d}
}

func (p *Picker) SetDelegate(d Delegate) {
	p.mu.Lock()
	p.delegate = d
	p.mu.Unlock()
}

// Commit normalises raw typed input with cardutils.Standardize, stores the
// result and reports it.
func (p *Picker) Commit(raw string) (month, year string) {
	month, year = cardutils.Standardize(raw)
	p.set(month, year)
	return month, year
}

// Select stores a date chosen from a list, as a two digit month and a two
// digit year, and reports it.
func (p *Picker) Select(month time.Month, year int) {
	p.set(fmt.Sprintf("%02d", int(month)), fmt.Sprintf("%02d", year%100))
}

// Date returns the last committed month and year.
func (p *Picker) Date() (month, year string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.month, p.year
}

func (p *Picker) set(month, year string) {
	p.mu.Lock()
	p.month, p.year = month, year
	d := p.delegate
	p.mu.Unlock()

	// called without the lock so the delegate may read the picker back
	if d != nil {
		d.OnDateChanged(month, year)
	}
}
