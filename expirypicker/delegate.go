// Package expirypicker defines how an expiration date input reports finished
// edits, and a Picker that normalises raw input before reporting it.
package expirypicker

// Delegate observes edits of the expiration date.
type Delegate interface {
	// OnDateChanged is called when the user finalises a date edit.
	OnDateChanged(month, year string)
}

// DelegateFunc lets an ordinary function act as a Delegate.
type DelegateFunc func(month, year string)

func (f DelegateFunc) OnDateChanged(month, year string) {
	f(month, year)
}
