package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Data      string    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BudgetEntry struct {
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetData is the serialized entry list. Clients send it either as a JSON
// string or as the list itself; both end up as the same stored text.
type BudgetData string

func (d *BudgetData) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = BudgetData(s)
		return nil
	}
	*d = BudgetData(trimmed)
	return nil
}

type SaveBudgetRequest struct {
	ID    int64      `json:"id"`
	Title string     `json:"title" validate:"required"`
	Data  BudgetData `json:"data"`
}

type BudgetResponse struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}
