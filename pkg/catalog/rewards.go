package catalog

// Reward is a static reward shop catalog entry. Cost is in coins.
type Reward struct {
	Id          string
	Name        string
	Description string
	Cost        int64
	Image       string
}

// Rewards is the closed reward catalog shown in the shop.
var Rewards = []Reward{
	{Id: "sticker-pack", Name: "Hero Sticker Pack", Description: "A pack of holographic hero stickers.", Cost: 10, Image: "rewards/sticker-pack"},
	{Id: "enamel-pin", Name: "Brave Enamel Pin", Description: "A collectible pin for your backpack.", Cost: 25, Image: "rewards/enamel-pin"},
	{Id: "water-bottle", Name: "Adventurer's Water Bottle", Description: "A reusable bottle for long quests.", Cost: 40, Image: "rewards/water-bottle"},
	{Id: "tote-bag", Name: "Deed Carrier Tote", Description: "Carry supplies for your next good deed.", Cost: 60, Image: "rewards/tote-bag"},
	{Id: "hoodie", Name: "Guardian Hoodie", Description: "A cozy hoodie for realm guardians.", Cost: 150, Image: "rewards/hoodie"},
	{Id: "tree-donation", Name: "Plant a Tree", Description: "We plant a tree in your name.", Cost: 30, Image: "rewards/tree-donation"},
}

// RewardById looks up a reward catalog entry; ok is false for unknown ids.
func RewardById(id string) (Reward, bool) {
	for _, r := range Rewards {
		if r.Id == id {
			return r, true
		}
	}
	return Reward{}, false
}
