// Package seed pushes the built-in dataset into a Supabase project. The
// dataset's short ids (user-1, city-2, ...) are mapped onto stable UUIDs so
// re-running the importer always writes the same rows.
package seed

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// Kind namespaces the derived UUIDs so different entities with the same
// numeric suffix never collide.
type Kind string

const (
	KindUser    Kind = "user"
	KindCity    Kind = "city"
	KindPlace   Kind = "place"
	KindPost    Kind = "post"
	KindComment Kind = "comment"
	KindRequest Kind = "request"
	KindMatch   Kind = "match"
)

var idPrefixes = map[Kind]string{
	KindUser:    "10000000",
	KindCity:    "20000000",
	KindPlace:   "30000000",
	KindPost:    "40000000",
	KindComment: "50000000",
	KindRequest: "60000000",
	KindMatch:   "70000000",
}

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// ToUUID maps a dataset id onto a deterministic UUID. Ids that already are
// canonical UUIDs pass through unchanged; otherwise the trailing digits are
// hex-encoded into a namespaced v4-shaped UUID. Ids without digits are an
// error.
func ToUUID(kind Kind, id string) (string, error) {
	if parsed, err := uuid.Parse(id); err == nil && len(id) == 36 {
		return parsed.String(), nil
	}

	match := trailingDigits.FindString(id)
	if match == "" {
		return "", fmt.Errorf("seed: cannot map id %q for kind %q", id, kind)
	}
	n, err := strconv.ParseUint(match, 10, 48)
	if err != nil {
		return "", fmt.Errorf("seed: cannot map id %q for kind %q: %w", id, kind, err)
	}

	return fmt.Sprintf("%s-0000-4000-8000-%012x", idPrefixes[kind], n), nil
}

// ToUUIDPtr maps an optional dataset id, passing nil through.
func ToUUIDPtr(kind Kind, id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	mapped, err := ToUUID(kind, *id)
	if err != nil {
		return nil, err
	}
	return &mapped, nil
}
