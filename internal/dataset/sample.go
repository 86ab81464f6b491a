package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
)

// sampleCurrencies are the codes used for generated records; they match the
// default approved list so a clean sample passes the currency check.
var sampleCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD"} //nolint:gochecknoglobals // Fixed sample palette

// GenerateSample produces n synthetic transaction records spread over the 30
// days before now. Amounts follow a lognormal distribution rounded to two
// decimal places.
//
// When includeErrors is true, up to min(50, n/20) records are seeded with a
// random defect (a nulled field, a negative amount, an unapproved currency,
// a duplicated transaction id, or an unparsable timestamp) so every
// pipeline check has something to find.
func GenerateSample(n int, includeErrors bool, now time.Time, rng *rand.Rand) domain.RecordSet {
	records := make([]domain.Record, 0, n)
	base := now.AddDate(0, 0, -30)

	for i := 0; i < n; i++ {
		amount := math.Round(math.Exp(rng.NormFloat64()+3)*100) / 100
		offset := time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))
		records = append(records, domain.Record{
			TransactionID: fmt.Sprintf("TXN%08d", i+1),
			AccountID:     fmt.Sprintf("ACC%06d", 100000+rng.Intn(900000)),
			Amount:        decimal.NewNullDecimal(decimal.NewFromFloat(amount)),
			Currency:      sampleCurrencies[rng.Intn(len(sampleCurrencies))],
			Timestamp:     base.Add(offset).Format(constants.DefaultTimestampFormat),
		})
	}

	if includeErrors && n > 0 {
		seedErrors(records, rng)
	}

	return domain.NewRecordSet(records...)
}

// seedErrors injects one random defect into each of a sampled subset of
// records.
func seedErrors(records []domain.Record, rng *rand.Rand) {
	n := len(records)
	errorCount := n / 20
	if errorCount > 50 {
		errorCount = 50
	}
	if errorCount == 0 {
		errorCount = 1
	}

	for _, idx := range rng.Perm(n)[:errorCount] {
		switch rng.Intn(5) {
		case 0: // null field
			switch rng.Intn(4) {
			case 0:
				records[idx].TransactionID = ""
			case 1:
				records[idx].AccountID = ""
			case 2:
				records[idx].Amount = decimal.NullDecimal{}
			case 3:
				records[idx].Currency = ""
			}
		case 1: // negative amount
			if records[idx].Amount.Valid {
				records[idx].Amount.Decimal = records[idx].Amount.Decimal.Abs().Neg()
			}
		case 2: // unapproved currency
			records[idx].Currency = "XXX"
		case 3: // duplicated transaction id
			if idx > 0 {
				records[idx].TransactionID = records[idx-1].TransactionID
			}
		case 4: // unparsable timestamp
			records[idx].Timestamp = "invalid-date"
		}
	}
}
