// Package levels derives a hero level and title from an XP total.
// The curve and titles match the product's level table: level n starts at
// floor(100 * (n-1)^1.55) XP, for 100 levels.
package levels

import "math"

// Level is a rung on the XP progression ladder.
type Level struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int64  `json:"min_xp"`
}

var titles = []string{
	"Novice Adventurer", "Apprentice Hero", "Brave Companion", "Valiant Knight", "Guardian of the Realm",
	"Ranger of the Wilds", "Mystic Seer", "Shadow Striker", "Dawnbringer", "Champion of Light",
	"Master of Elements", "Dragon Tamer", "Star Wanderer", "Aegis Defender", "Void Walker",
	"Sunstone Templar", "Moonshadow Rogue", "Earthshaker Shaman", "Stormcaller Mage", "Ironclad Warlord",
	"Celestial Guardian", "Abyssal Hunter", "Emberheart Alchemist", "Frostwind Archer", "Verdant Warden",
	"Soulfire Sorcerer", "Nightfall Sentinel", "Skybreaker Paladin", "Chrono Weaver", "Rune Forger",
	"Blade Master", "Aetherial Sage", "Apex Predator", "Crimson Vanguard", "Divine Herald",
	"Echo of the Ancients", "Flameheart Berserker", "Glimmerwood Trickster", "Highland Thane", "Inferno Channeler",
	"Jade Serpent Monk", "Keystone Protector", "Lunar Justicar", "Mythic Carver", "Nebula Nomad",
	"Obsidian Sentinel", "Phoenix Ascendant", "Quasar Knight", "Radiant Paragon", "Solar Flare",
	"Terraformer", "Umbral Assassin", "Vortex Vanquisher", "Whispering Oracle", "Xenith Pioneer",
	"Yggdrasil Keeper", "Zephyr Strider", "Astral Drifter", "Beacon of Hope", "Cosmic Sentinel",
	"Dimensional Ripper", "Eternal Voyager", "Fable Weaver", "Galaxy Guardian", "Harbinger of Dawn",
	"Infinity Warden", "Justice Bringer", "Kismet Creator", "Lore Keeper", "Mirage Master",
	"Nexus Guardian", "Omega Knight", "Paradox Pilgrim", "Quantum Quester", "Reality Shaper",
	"Seraphic Judge", "Timeless Watcher", "Universal Emissary", "Vanguard of Ages", "Warden of Worlds",
	"Zenith of Heroes", "Alpha Protector", "Beta Champion", "Gamma Guardian", "Delta Defender",
	"Epsilon Enforcer", "Zeta Zealot", "Eta Elder", "Theta Thaumaturge", "Iota Illusionist",
	"Kappa King", "Lambda Legend", "Mu Mystic", "Nu Nomad", "Xi Xiphos",
	"Omicron Overlord", "Pi Paladin", "Rho Ranger", "Sigma Sage", "Tau Templar",
}

// Levels is the full 100-entry progression table.
var Levels = buildTable()

func buildTable() []Level {
	table := make([]Level, 100)
	for i := range table {
		level := i + 1
		title := "The Unwritten"
		if i < len(titles) {
			title = titles[i]
		}
		table[i] = Level{
			Level: level,
			Title: title,
			MinXP: int64(math.Floor(100 * math.Pow(float64(level-1), 1.55))),
		}
	}
	return table
}

// FromXP returns the highest level whose MinXP the given total reaches.
func FromXP(xp int64) Level {
	current := Levels[0]
	for _, l := range Levels {
		if xp >= l.MinXP {
			current = l
		} else {
			break
		}
	}
	return current
}
