// Command seed loads a small demo catalog so the storefront has something
// to render during development. It is idempotent only at the database
// level: run it against a fresh database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/DevAttaKhan/dawn/internal"
	"github.com/DevAttaKhan/dawn/internal/repository"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type seedOption struct {
	name   string
	values []string
}

type seedVariant struct {
	sku        string
	selections map[string]string // option name -> value
	priceCents int32
	compareAt  int32 // 0 means none
	inventory  int32
}

type seedImage struct {
	url     string
	alt     string
	primary bool
}

type seedProduct struct {
	name           string
	description    string
	basePriceCents int32
	salePriceCents int32 // 0 means no sale
	inventory      int32 // used when the product has no variants
	options        []seedOption
	variants       []seedVariant
	images         []seedImage
	collections    []string
}

var collections = []struct {
	name        string
	description string
	imageURL    string
}{
	{"Bags", "Carry-everything totes, slings and convertible packs.", "/static/img/collections/bags.jpg"},
	{"Shoes", "Everyday footwear in seasonal colorways.", "/static/img/collections/shoes.jpg"},
	{"Accessories", "Small goods that round out the fit.", "/static/img/collections/accessories.jpg"},
}

var products = []seedProduct{
	{
		name:           "Small Convertible Flex Bag",
		description:    "A compact crossbody that unzips into a roomy tote. Water-resistant shell, interior laptop sleeve.",
		basePriceCents: 9500,
		options: []seedOption{
			{name: "Color", values: []string{"Red", "Black"}},
			{name: "Size", values: []string{"S", "M"}},
		},
		variants: []seedVariant{
			{sku: "FLEX-RED-S", selections: map[string]string{"Color": "Red", "Size": "S"}, priceCents: 9500, inventory: 12},
			{sku: "FLEX-RED-M", selections: map[string]string{"Color": "Red", "Size": "M"}, priceCents: 9700, inventory: 0},
			{sku: "FLEX-BLK-S", selections: map[string]string{"Color": "Black", "Size": "S"}, priceCents: 9500, inventory: 8},
			{sku: "FLEX-BLK-M", selections: map[string]string{"Color": "Black", "Size": "M"}, priceCents: 9700, compareAt: 10500, inventory: 5},
		},
		images: []seedImage{
			{url: "/static/img/products/flex-bag-red.jpg", alt: "Small Convertible Flex Bag in red", primary: true},
			{url: "/static/img/products/flex-bag-black.jpg", alt: "Small Convertible Flex Bag in black"},
		},
		collections: []string{"Bags"},
	},
	{
		name:           "Canvas Weekender",
		description:    "Waxed canvas duffel sized for a two-night trip. Leather handles, brass hardware.",
		basePriceCents: 14500,
		salePriceCents: 12900,
		inventory:      20,
		images: []seedImage{
			{url: "/static/img/products/weekender.jpg", alt: "Canvas Weekender in olive", primary: true},
		},
		collections: []string{"Bags"},
	},
	{
		name:           "Court Sneaker",
		description:    "A low-profile court shoe with a gum sole and recycled-leather upper.",
		basePriceCents: 11900,
		options: []seedOption{
			{name: "Size", values: []string{"8", "9", "10", "11"}},
		},
		variants: []seedVariant{
			{sku: "COURT-8", selections: map[string]string{"Size": "8"}, priceCents: 11900, inventory: 6},
			{sku: "COURT-9", selections: map[string]string{"Size": "9"}, priceCents: 11900, inventory: 10},
			{sku: "COURT-10", selections: map[string]string{"Size": "10"}, priceCents: 11900, inventory: 0},
			{sku: "COURT-11", selections: map[string]string{"Size": "11"}, priceCents: 11900, inventory: 3},
		},
		images: []seedImage{
			{url: "/static/img/products/court-sneaker.jpg", alt: "Court Sneaker in white", primary: true},
		},
		collections: []string{"Shoes"},
	},
	{
		name:           "Wool Beanie",
		description:    "Ribbed merino beanie, one size.",
		basePriceCents: 3500,
		inventory:      40,
		images: []seedImage{
			{url: "/static/img/products/beanie.jpg", alt: "Wool Beanie in charcoal", primary: true},
		},
		collections: []string{"Accessories"},
	},
	{
		name:           "Trail Sock 3-Pack",
		description:    "Cushioned crew socks in a three-pack. Merino blend, seamless toe.",
		basePriceCents: 2800,
		inventory:      0,
		images: []seedImage{
			{url: "/static/img/products/trail-socks.jpg", alt: "Trail Sock 3-Pack", primary: true},
		},
		collections: []string{"Accessories"},
	},
}

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	repo := repository.New(pool)

	collectionIDs := make(map[string]pgtype.UUID, len(collections))
	for i, c := range collections {
		created, err := repo.CreateCollection(ctx, repository.CreateCollectionParams{
			Name:        c.name,
			Handle:      slug.Make(c.name),
			Description: text(c.description),
			ImageUrl:    text(c.imageURL),
			SortOrder:   int32(i),
		})
		if err != nil {
			return fmt.Errorf("create collection %q: %w", c.name, err)
		}
		collectionIDs[c.name] = created.ID
		logger.Info("created collection", "name", c.name, "handle", created.Handle)
	}

	for i, p := range products {
		if err := seedOneProduct(ctx, repo, p, int32(i), collectionIDs); err != nil {
			return fmt.Errorf("seed product %q: %w", p.name, err)
		}
		logger.Info("created product", "name", p.name, "variants", len(p.variants))
	}

	logger.Info("seed complete", "collections", len(collections), "products", len(products))
	return nil
}

func seedOneProduct(ctx context.Context, repo *repository.Queries, p seedProduct, sortOrder int32, collectionIDs map[string]pgtype.UUID) error {
	created, err := repo.CreateProduct(ctx, repository.CreateProductParams{
		Name:              p.name,
		Slug:              slug.Make(p.name),
		Description:       text(p.description),
		BasePriceCents:    p.basePriceCents,
		SalePriceCents:    int4(p.salePriceCents),
		InventoryQuantity: p.inventory,
		Status:            "active",
		SortOrder:         sortOrder,
	})
	if err != nil {
		return err
	}

	// Options and their values, keyed by name so variants can reference them.
	optionIDs := make(map[string]pgtype.UUID, len(p.options))
	valueIDs := make(map[string]map[string]pgtype.UUID, len(p.options))
	for pos, opt := range p.options {
		createdOpt, err := repo.CreateProductOption(ctx, repository.CreateProductOptionParams{
			ProductID: created.ID,
			Name:      opt.name,
			Position:  int32(pos),
		})
		if err != nil {
			return fmt.Errorf("option %q: %w", opt.name, err)
		}
		optionIDs[opt.name] = createdOpt.ID
		valueIDs[opt.name] = make(map[string]pgtype.UUID, len(opt.values))
		for vpos, val := range opt.values {
			createdVal, err := repo.CreateOptionValue(ctx, repository.CreateOptionValueParams{
				OptionID: createdOpt.ID,
				Value:    val,
				Position: int32(vpos),
			})
			if err != nil {
				return fmt.Errorf("option value %q: %w", val, err)
			}
			valueIDs[opt.name][val] = createdVal.ID
		}
	}

	for pos, v := range p.variants {
		createdVar, err := repo.CreateProductVariant(ctx, repository.CreateProductVariantParams{
			ProductID:           created.ID,
			Sku:                 text(v.sku),
			PriceCents:          v.priceCents,
			CompareAtPriceCents: int4(v.compareAt),
			InventoryQuantity:   v.inventory,
			Position:            int32(pos),
		})
		if err != nil {
			return fmt.Errorf("variant %q: %w", v.sku, err)
		}
		for optName, valName := range v.selections {
			optID, ok := optionIDs[optName]
			if !ok {
				return fmt.Errorf("variant %q references unknown option %q", v.sku, optName)
			}
			valID, ok := valueIDs[optName][valName]
			if !ok {
				return fmt.Errorf("variant %q references unknown value %q for option %q", v.sku, valName, optName)
			}
			err := repo.CreateVariantSelection(ctx, repository.VariantSelection{
				VariantID: createdVar.ID,
				OptionID:  optID,
				ValueID:   valID,
			})
			if err != nil {
				return fmt.Errorf("variant %q selection %s=%s: %w", v.sku, optName, valName, err)
			}
		}
	}

	for pos, img := range p.images {
		_, err := repo.CreateProductImage(ctx, repository.CreateProductImageParams{
			ProductID: created.ID,
			Url:       img.url,
			AltText:   text(img.alt),
			SortOrder: int32(pos),
			IsPrimary: img.primary,
		})
		if err != nil {
			return fmt.Errorf("image %q: %w", img.url, err)
		}
	}

	for _, name := range p.collections {
		id, ok := collectionIDs[name]
		if !ok {
			return fmt.Errorf("unknown collection %q", name)
		}
		if err := repo.AddProductToCollection(ctx, id, created.ID); err != nil {
			return fmt.Errorf("add to collection %q: %w", name, err)
		}
	}

	return nil
}

func text(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func int4(v int32) pgtype.Int4 {
	if v == 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: v, Valid: true}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
