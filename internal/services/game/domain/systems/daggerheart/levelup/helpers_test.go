package levelup

func testCatalog() Catalog {
	return Catalog{
		DomainCards: []DomainCard{
			{ID: "D1", Level: 5, DomainID: "blade", Type: "ability"},
			{ID: "D2", Level: 1, DomainID: "blade", Type: "ability"},
			{ID: "D3", Level: 6, DomainID: "bone", Type: "spell"},
			{ID: "D4", Level: 3, DomainID: "arcana", Type: "spell"},
			{ID: "D5", Level: 2, DomainID: "codex", Type: "grimoire"},
			{ID: "D9", Level: 9, DomainID: "blade", Type: "ability"},
		},
		Classes: []Class{
			{ID: "warrior", DomainIDs: []string{"blade", "bone"}},
			{ID: "wizard", DomainIDs: []string{"codex", "midnight"}},
		},
		Subclasses: []Subclass{
			{ID: "call-of-the-brave", ClassID: "warrior"},
			{ID: "school-of-knowledge", ClassID: "wizard"},
		},
	}
}

func testCharacter(level int) Character {
	return Character{
		Level:      level,
		ClassID:    "warrior",
		SubclassID: "call-of-the-brave",
		DomainIDs:  []string{"blade", "bone"},
		Experiences: []Experience{
			{Text: "Soldier", Value: 2},
			{Text: "Tracker", Value: 2},
			{Text: "Camp Cook", Value: 2},
		},
		SelectedCards: []SelectedCard{{CardID: "D2"}},
	}
}

func testInput(level int, history History) Input {
	return Input{
		Character: testCharacter(level),
		History:   history,
		Catalog:   testCatalog(),
	}
}

func record(upgrades ...Upgrade) LevelRecord {
	return LevelRecord{Completed: true, Upgrades: upgrades}
}

func up(t UpgradeType) Upgrade {
	return Upgrade{Type: t}
}
