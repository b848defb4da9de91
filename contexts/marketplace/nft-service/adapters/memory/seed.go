package memory

import (
	"time"

	"mintbay/contexts/marketplace/nft-service/domain/entities"
)

// DemoCatalog is the seed collection shown on a fresh marketplace: six
// listed artworks attributed to abbreviated demo wallets, created over the
// week before now.
func DemoCatalog(now time.Time) []entities.Record {
	now = now.UTC()
	seed := []struct {
		tokenID     string
		title       string
		creator     string
		price       string
		description string
		age         time.Duration
	}{
		{"1", "Abstract Harmony", "0x8a23...45f1", "2.5", "A vibrant abstract piece exploring the harmony of colors and shapes.", 7 * 24 * time.Hour},
		{"2", "Digital Dreamscape", "0x7b12...9e23", "1.8", "Journey through a surreal digital landscape of dreams and imagination.", 5 * 24 * time.Hour},
		{"3", "Neon Wilderness", "0x3f67...12d4", "3.2", "A neon-infused exploration of wild nature in the digital age.", 3 * 24 * time.Hour},
		{"4", "Cosmic Perspective", "0x9c34...78b2", "4.0", "A glimpse into the vastness of the cosmos from a unique perspective.", 2 * 24 * time.Hour},
		{"5", "Ethereal Landscape", "0x2d56...34a9", "2.1", "An ethereal landscape that blends reality with the supernatural.", 24 * time.Hour},
		{"6", "Pixel Revolution", "0x6e87...91c3", "1.5", "A revolution of pixels creating a nostalgic yet futuristic aesthetic.", 12 * time.Hour},
	}

	records := make([]entities.Record, 0, len(seed))
	for _, row := range seed {
		createdAt := now.Add(-row.age)
		records = append(records, entities.Record{
			TokenID:       row.tokenID,
			Title:         row.title,
			Creator:       row.creator,
			PriceAmount:   row.price,
			PriceCurrency: entities.CurrencySOL,
			ImageURL:      entities.PlaceholderImageURL,
			Description:   row.description,
			Listed:        true,
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		})
	}
	return records
}
