package core

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"devrando/internal/types"
)

// compareNames orders package names with the root-locale collator, falling
// back to byte order so distinct names never compare equal.
func compareNames(col *collate.Collator, a string, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortNames sorts names in canonical order, in place.
func SortNames(names []string) {
	col := collate.New(language.Und)
	sort.SliceStable(names, func(i, j int) bool {
		return compareNames(col, names[i], names[j]) < 0
	})
}

// SortDependencies returns the entries of deps in canonical order.
func SortDependencies(deps types.DependencyMap) types.SortedDependencies {
	names := deps.Names()
	SortNames(names)
	out := make(types.SortedDependencies, 0, len(names))
	for _, name := range names {
		out = append(out, types.DependencyEntry{Name: name, Version: deps[name]})
	}
	return out
}

// CanonicalJSON serializes the pair as
// {"dependencies":{...},"devDependencies":{...}} with no whitespace and keys
// in the order given.
func CanonicalJSON(runtime types.SortedDependencies, dev types.SortedDependencies) ([]byte, error) {
	runtimeBytes, err := runtime.MarshalJSON()
	if err != nil {
		return nil, err
	}
	devBytes, err := dev.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"dependencies":`)
	buf.Write(runtimeBytes)
	buf.WriteString(`,"devDependencies":`)
	buf.Write(devBytes)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Fingerprint returns the lowercase hex SHA-256 of the canonical form of
// the two maps.
func Fingerprint(runtime types.DependencyMap, dev types.DependencyMap) (string, error) {
	return FingerprintSorted(SortDependencies(runtime), SortDependencies(dev))
}

// FingerprintSorted hashes already-sorted entries without re-sorting.
func FingerprintSorted(runtime types.SortedDependencies, dev types.SortedDependencies) (string, error) {
	payload, err := CanonicalJSON(runtime, dev)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
