// Package seeders inserts sample development data. Invoked via the CLI:
//
//	rasoi seed
//
// Each seeder is idempotent: it skips a collection that already has
// documents so repeated runs don't duplicate data.
package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/rasoi/app/models"
	"github.com/shashiranjanraj/rasoi/app/repositories"
	"github.com/shashiranjanraj/rasoi/internal/store"
)

var sampleMenu = []models.MenuItem{
	{Name: "Roast Duck Breast", Category: "offered", Price: 14.5, Recipe: "Roasted duck breast with cherry glaze", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-x-2.jpg"},
	{Name: "Tuna Niçoise", Category: "salad", Price: 10.5, Recipe: "Seared tuna, green beans, olives, egg", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-8.jpg"},
	{Name: "Escalope de Veau", Category: "offered", Price: 12.5, Recipe: "Veal escalope with lemon butter", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-2.jpg"},
	{Name: "Fish Parmentier", Category: "pizza", Price: 12.5, Recipe: "White fish under potato crust", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-7.jpg"},
	{Name: "Chocolate Soufflé", Category: "dessert", Price: 8.5, Recipe: "Dark chocolate soufflé, vanilla ice cream", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-5.jpg"},
	{Name: "Wild Mushroom Soup", Category: "soup", Price: 7.0, Recipe: "Cream of forest mushrooms", Image: "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-3.jpg"},
}

var sampleReviews = []models.Review{
	{Name: "Abia Anik", Details: "The ambiance was lovely and the duck was perfectly cooked.", Rating: 5},
	{Name: "Marcel Durand", Details: "Quick service, generous portions. The soup could be warmer.", Rating: 4},
	{Name: "Ines Okafor", Details: "Best dessert menu in the neighbourhood.", Rating: 5},
}

// Run seeds the menu and reviews collections.
func Run(ctx context.Context, s *store.Store) error {
	menu := repositories.NewMenuRepository(s.Collection(store.ColMenu))
	reviews := repositories.NewReviewRepository(s.Collection(store.ColReviews))

	count, err := menu.Count(ctx)
	if err != nil {
		return fmt.Errorf("seeders: count menu: %w", err)
	}
	if count == 0 {
		for _, item := range sampleMenu {
			if _, err := menu.Create(ctx, item); err != nil {
				return fmt.Errorf("seeders: menu: %w", err)
			}
		}
		fmt.Printf("  • Seeded %d menu items\n", len(sampleMenu))
	} else {
		fmt.Println("  • Menu already seeded, skipping")
	}

	existing, err := reviews.All(ctx)
	if err != nil {
		return fmt.Errorf("seeders: list reviews: %w", err)
	}
	if len(existing) == 0 {
		if err := reviews.Seed(ctx, sampleReviews); err != nil {
			return err
		}
		fmt.Printf("  • Seeded %d reviews\n", len(sampleReviews))
	} else {
		fmt.Println("  • Reviews already seeded, skipping")
	}

	return nil
}
