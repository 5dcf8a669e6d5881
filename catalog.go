package main

import (
	"html/template"
	"sync"
)

// Status tags a project for the UI badge. Entries default to released;
// the tag has no semantics beyond display.
type Status string

const (
	StatusReleased   Status = "released"
	StatusComingSoon Status = "coming-soon"
)

// Project is one portfolio entry. Values are immutable once built.
type Project struct {
	Title       string
	Description template.HTML
	Status      Status
}

// Catalog maps a category key to its projects in display order.
type Catalog map[string][]Project

// categoryOrder fixes how categories appear on the home page.
var categoryOrder = []string{"unity", "unreal", "graphic"}

// catalog is the process-wide dataset, built on first use and read-only
// afterwards, so concurrent reads need no locking.
var catalog = sync.OnceValue(buildCatalog)

func buildCatalog() Catalog {
	return Catalog{
		"unity": {
			{Title: "Legacy of Auras", Description: LegacyOfAuras, Status: StatusReleased},
			{Title: "Dungeon Dash Heroes", Description: DungeonDashHeroes, Status: StatusReleased},
			{Title: "Starlit Farm", Description: StarlitFarm, Status: StatusComingSoon},
		},
		"unreal": {
			{Title: "Crimson Vale", Description: CrimsonVale, Status: StatusReleased},
			{Title: "Ashfall Protocol", Description: AshfallProtocol, Status: StatusComingSoon},
		},
		"graphic": {
			{Title: "Low-Poly Creature Pack", Description: LowPolyCreaturePack, Status: StatusReleased},
			{Title: "Stylized Skybox Collection", Description: StylizedSkyboxCollection, Status: StatusReleased},
		},
	}
}
