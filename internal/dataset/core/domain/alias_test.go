package domain_test

import (
	"testing"

	"regional-metrics-viewer/internal/dataset/core/domain"
)

func TestAliasTable_ResolveMappedLabels(t *testing.T) {
	aliases := domain.DefaultAliases()

	for label, want := range aliases {
		if got := aliases.Resolve(label); got != want {
			t.Fatalf("Resolve(%q): expected %q, got %q", label, want, got)
		}
	}
}

func TestAliasTable_IdentityFallback(t *testing.T) {
	aliases := domain.DefaultAliases()

	for _, label := range []string{"Aceh", "Bali", "", "DKI Jakarta", "jakarta raya"} {
		if got := aliases.Resolve(label); got != label {
			t.Fatalf("Resolve(%q): expected identity, got %q", label, got)
		}
	}
}

func TestAliasTable_NilTableIsIdentity(t *testing.T) {
	var aliases domain.AliasTable
	if got := aliases.Resolve("Papua"); got != "Papua" {
		t.Fatalf("expected Papua, got %q", got)
	}
}
