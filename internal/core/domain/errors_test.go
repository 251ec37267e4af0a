package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_StringRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindInternal,
		KindInvalidArgument,
		KindUnauthenticated,
		KindPermissionDenied,
		KindNotFound,
		KindAlreadyExists,
		KindFailedPrecondition,
	}
	for _, k := range kinds {
		if got := ParseKind(k.String()); got != k {
			t.Fatalf("round trip for %v: got %v", k, got)
		}
	}
	if got := ParseKind("SOMETHING_ELSE"); got != KindInternal {
		t.Fatalf("unknown kind must collapse to internal, got %v", got)
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(E(KindNotFound, "missing")); got != KindNotFound {
		t.Fatalf("expected not found, got %v", got)
	}
	wrapped := fmt.Errorf("context: %w", E(KindAlreadyExists, "dup"))
	if got := KindOf(wrapped); got != KindAlreadyExists {
		t.Fatalf("wrapped kind lost: got %v", got)
	}
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Fatalf("plain error must be internal, got %v", got)
	}
}
