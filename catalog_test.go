package main

import (
	"reflect"
	"testing"
)

func TestBuildCatalogDeterministic(t *testing.T) {
	first := buildCatalog()
	second := buildCatalog()

	if !reflect.DeepEqual(first, second) {
		t.Fatal("buildCatalog returned different results across invocations")
	}
}

func TestCatalogCachedHandleMatchesBuild(t *testing.T) {
	if !reflect.DeepEqual(catalog(), buildCatalog()) {
		t.Fatal("cached catalog differs from a fresh build")
	}
}

func TestCatalogCategories(t *testing.T) {
	c := buildCatalog()

	if len(c) != len(categoryOrder) {
		t.Fatalf("catalog has %d categories, want %d", len(c), len(categoryOrder))
	}
	for _, cat := range categoryOrder {
		if len(c[cat]) == 0 {
			t.Errorf("category %q is missing or empty", cat)
		}
	}
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	for cat, projects := range buildCatalog() {
		for i, p := range projects {
			if p.Title == "" {
				t.Errorf("%s[%d]: empty title", cat, i)
			}
			if p.Description == "" {
				t.Errorf("%s[%d] (%s): empty description", cat, i, p.Title)
			}
			if p.Status != StatusReleased && p.Status != StatusComingSoon {
				t.Errorf("%s[%d] (%s): unexpected status %q", cat, i, p.Title, p.Status)
			}
		}
	}
}

func TestUnityLeadsWithLegacyOfAuras(t *testing.T) {
	unity := buildCatalog()["unity"]
	if len(unity) == 0 {
		t.Fatal("unity category is empty")
	}
	if unity[0].Title != "Legacy of Auras" {
		t.Fatalf("first unity project is %q, want %q", unity[0].Title, "Legacy of Auras")
	}
}
