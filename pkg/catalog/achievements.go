package catalog

import (
	"github.com/bravequest/quest-engine/pkg/models"
)

// Aggregates is the snapshot of an account's history that achievement rules
// are evaluated against. CategoryCounts holds approved quests per category.
type Aggregates struct {
	XPTotal         int64
	QuestsCompleted int64
	CategoryCounts  map[models.Category]int64
}

// Rule is a closed set of predicate shapes over account aggregates.
// Adding a new shape means adding a variant here; adding a new achievement
// with an existing shape is a catalog entry.
type Rule interface {
	// Satisfied reports whether the rule holds for the given aggregates.
	Satisfied(agg Aggregates) bool
}

// TotalQuestsRule unlocks after N approved quests in any category.
type TotalQuestsRule struct {
	Threshold int64
}

func (r TotalQuestsRule) Satisfied(agg Aggregates) bool {
	return agg.QuestsCompleted >= r.Threshold
}

// TotalXPRule unlocks after N total experience points.
type TotalXPRule struct {
	Threshold int64
}

func (r TotalXPRule) Satisfied(agg Aggregates) bool {
	return agg.XPTotal >= r.Threshold
}

// CategoryCountRule unlocks after N approved quests in one category.
type CategoryCountRule struct {
	Category  models.Category
	Threshold int64
}

func (r CategoryCountRule) Satisfied(agg Aggregates) bool {
	return agg.CategoryCounts[r.Category] >= r.Threshold
}

// AllCategoriesRule unlocks once every known category has at least one
// approved quest.
type AllCategoriesRule struct{}

func (r AllCategoriesRule) Satisfied(agg Aggregates) bool {
	for _, c := range models.Categories {
		if agg.CategoryCounts[c] < 1 {
			return false
		}
	}
	return true
}

// Definition is a static achievement catalog entry.
type Definition struct {
	Id          string
	Name        string
	Description string
	Icon        string
	Rule        Rule
}

// Achievements is the closed, versioned achievement catalog. Thresholds and
// ids are part of the product contract; changing them is a code change.
var Achievements = []Definition{
	{Id: "first-quest", Name: "First Quest", Description: "Complete your first approved quest.", Icon: "footprints", Rule: TotalQuestsRule{Threshold: 1}},
	{Id: "quest-enthusiast", Name: "Quest Enthusiast", Description: "Complete 5 approved quests.", Icon: "swords", Rule: TotalQuestsRule{Threshold: 5}},
	{Id: "legendary-hero", Name: "Legendary Hero", Description: "Complete 20 approved quests.", Icon: "crown", Rule: TotalQuestsRule{Threshold: 20}},
	{Id: "xp-novice", Name: "XP Novice", Description: "Earn 100 experience points.", Icon: "sparkles", Rule: TotalXPRule{Threshold: 100}},
	{Id: "xp-master", Name: "XP Master", Description: "Earn 1,000 experience points.", Icon: "star", Rule: TotalXPRule{Threshold: 1000}},
	{Id: "xp-grandmaster", Name: "XP Grandmaster", Description: "Earn 5,000 experience points.", Icon: "trophy", Rule: TotalXPRule{Threshold: 5000}},
	{Id: "earth-guardian", Name: "Earth Guardian", Description: "Complete 3 environment quests.", Icon: "leaf", Rule: CategoryCountRule{Category: models.CategoryEnvironment, Threshold: 3}},
	{Id: "animal-friend", Name: "Animal Friend", Description: "Complete 3 animal quests.", Icon: "paw-print", Rule: CategoryCountRule{Category: models.CategoryAnimals, Threshold: 3}},
	{Id: "community-pillar", Name: "Community Pillar", Description: "Complete 5 community quests.", Icon: "users", Rule: CategoryCountRule{Category: models.CategoryCommunity, Threshold: 5}},
	{Id: "book-worm", Name: "Book Worm", Description: "Complete 3 education quests.", Icon: "book-open", Rule: CategoryCountRule{Category: models.CategoryEducation, Threshold: 3}},
	{Id: "health-hero", Name: "Health Hero", Description: "Complete 3 health quests.", Icon: "heart-pulse", Rule: CategoryCountRule{Category: models.CategoryHealth, Threshold: 3}},
	{Id: "jack-of-all-deeds", Name: "Jack of All Deeds", Description: "Complete a quest in every category.", Icon: "shield", Rule: AllCategoriesRule{}},
}

// AchievementById looks up a catalog definition; ok is false for unknown ids.
func AchievementById(id string) (Definition, bool) {
	for _, def := range Achievements {
		if def.Id == id {
			return def, true
		}
	}
	return Definition{}, false
}

// NewlyUnlocked returns the catalog definitions whose rules hold for agg and
// that are not already in the unlocked set, in catalog order. It is a pure
// function; persisting the unlocks (and resolving races) is the storage
// layer's job.
func NewlyUnlocked(agg Aggregates, unlocked map[string]bool) []Definition {
	var newly []Definition
	for _, def := range Achievements {
		if unlocked[def.Id] {
			continue
		}
		if def.Rule.Satisfied(agg) {
			newly = append(newly, def)
		}
	}
	return newly
}
