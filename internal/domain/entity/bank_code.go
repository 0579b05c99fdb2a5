package entity

import "strings"

// BankCodeRecord is one entry of the SWIFT/BIC reference dataset.
// Only the code is relevant to validation; other dataset columns are ignored.
type BankCodeRecord struct {
	BIC string `json:"bic"`
}

// BankCodeSet is the immutable reference set of known bank identifier codes.
// It is built once and only read afterwards, so concurrent lookups need no locking.
type BankCodeSet struct {
	codes map[string]struct{}
}

// NormalizeBankCode trims surrounding whitespace and upper-cases a code.
func NormalizeBankCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewBankCodeSet builds a set from dataset records. Records without a code are skipped.
func NewBankCodeSet(records []BankCodeRecord) *BankCodeSet {
	codes := make(map[string]struct{}, len(records))
	for _, record := range records {
		code := NormalizeBankCode(record.BIC)
		if code == "" {
			continue
		}
		codes[code] = struct{}{}
	}

	return &BankCodeSet{codes: codes}
}

// EmptyBankCodeSet returns a set that contains nothing.
func EmptyBankCodeSet() *BankCodeSet {
	return &BankCodeSet{codes: map[string]struct{}{}}
}

// Contains reports whether the code, after normalization, is a known bank code.
func (s *BankCodeSet) Contains(code string) bool {
	if s == nil {
		return false
	}
	_, ok := s.codes[NormalizeBankCode(code)]

	return ok
}

// Len returns the number of distinct codes in the set.
func (s *BankCodeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.codes)
}
