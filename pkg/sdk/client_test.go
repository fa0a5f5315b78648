package tradepost

import (
	"context"
	"testing"
)

func TestNewRequiresAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error without a database address")
	}
}
