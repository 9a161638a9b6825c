package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/macroplate/backend/internal/provider/openfoodfacts"
)

const barcodeCacheTTL = 7 * 24 * time.Hour

// FoodFacts is the per-100g lookup result surfaced to callers. The meal
// service scales it by the eaten amount before anything reaches storage or
// aggregation.
type FoodFacts struct {
	Barcode         string  `json:"barcode"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand"`
	ServingSize     string  `json:"serving_size"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
}

// Scale converts the per-100g facts to absolute values for the given amount
// in grams.
func (f FoodFacts) Scale(amountGrams float64) (calories, protein, carbs, fat, fiber float64) {
	factor := amountGrams / 100
	return f.CaloriesPer100g * factor,
		f.ProteinPer100g * factor,
		f.CarbsPer100g * factor,
		f.FatPer100g * factor,
		f.FiberPer100g * factor
}

// BarcodeService resolves barcodes through Open Food Facts with a Redis
// cache in front; product facts change rarely, so a week-long TTL is fine.
type BarcodeService struct {
	client *openfoodfacts.Client
	redis  *redis.Client
}

var _ IBarcodeService = (*BarcodeService)(nil)

func NewBarcodeService(client *openfoodfacts.Client, redisClient *redis.Client) *BarcodeService {
	return &BarcodeService{
		client: client,
		redis:  redisClient,
	}
}

// Lookup returns per-100g facts for a barcode.
func (s *BarcodeService) Lookup(ctx context.Context, barcode string) (*FoodFacts, error) {
	cacheKey := "food:barcode:" + barcode
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached FoodFacts
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	product, err := s.client.LookupBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	facts := &FoodFacts{
		Barcode:         product.Barcode,
		Name:            product.Name,
		Brand:           product.Brand,
		ServingSize:     product.ServingSize,
		CaloriesPer100g: product.CaloriesPer100g,
		ProteinPer100g:  product.ProteinPer100g,
		CarbsPer100g:    product.CarbsPer100g,
		FatPer100g:      product.FatPer100g,
		FiberPer100g:    product.FiberPer100g,
	}

	if s.redis != nil {
		if data, err := json.Marshal(facts); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, barcodeCacheTTL).Err(); err != nil {
				log.Printf("failed to cache barcode lookup: %v", err)
			}
		}
	}
	return facts, nil
}
