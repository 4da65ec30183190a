package cart

import (
	"testing"

	"vitrin/models"
)

func TestRequestedQuantityDefaultsWithoutFloorFlag(t *testing.T) {
	p := &models.Product{Price: 900}
	// omitted quantity defaults to one; no floor fired for this price
	if got, flagged := requestedQuantity(p, 0); got != 1 || flagged {
		t.Fatalf("got %d flagged=%v", got, flagged)
	}
	if got, flagged := requestedQuantity(p, 3); got != 3 || flagged {
		t.Fatalf("got %d flagged=%v", got, flagged)
	}
}

func TestRequestedQuantityFloorStillFlags(t *testing.T) {
	p := &models.Product{Price: 499}
	if got, flagged := requestedQuantity(p, 0); got != 5 || !flagged {
		t.Fatalf("got %d flagged=%v", got, flagged)
	}
	if got, flagged := requestedQuantity(p, 2); got != 5 || !flagged {
		t.Fatalf("got %d flagged=%v", got, flagged)
	}
	if got, flagged := requestedQuantity(p, 8); got != 8 || flagged {
		t.Fatalf("got %d flagged=%v", got, flagged)
	}
}
