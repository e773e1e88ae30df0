package cmd

import (
	"github.com/spf13/cobra"

	productService "product.GO/service/product"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the price store to the single fixture record and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			prices, closeStore, err := openPriceStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := productService.NewSeeder(prices, seedFixture(cfg)).Seed(ctx); err != nil {
				return err
			}
			cmd.Println("price store seeded")
			return nil
		},
	}
}
