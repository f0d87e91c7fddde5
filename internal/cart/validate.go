package cart

// AddressValidator decides whether an address is complete enough to ship to.
// Rejection policy stays with the caller; the validator only reports.
type AddressValidator struct{}

// IsValid returns false when the address is absent or any field is the empty
// string. Values are compared as-is: whitespace-only fields pass, trimming
// would change the contract.
func (AddressValidator) IsValid(a *Address) bool {
	if a == nil {
		return false
	}
	return a.Country != "" && a.City != "" && a.Street != ""
}
