// Package openfoodfacts is a thin client for the Open Food Facts product
// API, used to resolve barcodes into per-100g nutrition facts.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Product holds per-100g nutrition facts for a scanned product. Callers are
// responsible for scaling these to an absolute meal entry.
type Product struct {
	Barcode         string
	Name            string
	Brand           string
	ServingSize     string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
	FiberPer100g    float64
}

// Client calls the Open Food Facts API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string             `json:"product_name"`
		Brands      string             `json:"brands"`
		ServingSize string             `json:"serving_size"`
		Nutriments  map[string]any `json:"nutriments"`
	} `json:"product"`
}

// LookupBarcode fetches the product behind a barcode. A missing product is
// an error; the caller decides how to surface it.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Product, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	url := fmt.Sprintf("%s/api/v2/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "macroplate/1.0 (+https://github.com/macroplate/backend)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Product{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Product{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || parsed.Product.ProductName == "" {
		return Product{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}

	n := parsed.Product.Nutriments
	return Product{
		Barcode:         barcode,
		Name:            strings.TrimSpace(parsed.Product.ProductName),
		Brand:           strings.TrimSpace(parsed.Product.Brands),
		ServingSize:     strings.TrimSpace(parsed.Product.ServingSize),
		CaloriesPer100g: nutrientValue(n, "energy-kcal"),
		ProteinPer100g:  nutrientValue(n, "proteins"),
		CarbsPer100g:    nutrientValue(n, "carbohydrates"),
		FatPer100g:      nutrientValue(n, "fat"),
		FiberPer100g:    nutrientValue(n, "fiber"),
	}, nil
}

// nutrientValue pulls the per-100g value for a nutrient base key. Open Food
// Facts mixes numeric and string values in nutriments ("proteins_100g": 5.2
// next to "proteins_unit": "g"), so values are coerced rather than typed.
func nutrientValue(n map[string]any, base string) float64 {
	if v, ok := parseFloatAny(n[base+"_100g"]); ok {
		return v
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
