package config

import (
	"os"
	"strconv"
)

// Quotation pricing constants. The per-sqft fallback rate is
// deployment-tunable; the markup rates match the business's GST
// jurisdiction and only change with tax law.
const (
	OverheadRate = 0.10
	GSTRate      = 0.18
	Currency     = "INR"
)

// DefaultQuoteRate is the per-sqft rate used when a quotation names a
// service with no stored rate.
func DefaultQuoteRate() float64 {
	if env := os.Getenv("QUOTE_DEFAULT_RATE"); env != "" {
		if rate, err := strconv.ParseFloat(env, 64); err == nil && rate > 0 {
			return rate
		}
	}
	return 80
}

// UploadDir is where quotation images are stored before being served
// under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
