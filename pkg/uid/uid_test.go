package uid

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateGameIDIsUniqueUUID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		id := GenerateGameID()

		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("id %q is not a uuid: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected uuid v4, got v%d", parsed.Version())
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}
