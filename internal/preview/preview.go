// Package preview derives the short feed text shown for each item. Previews
// are never edited directly; they are recomputed from the entity on every save.
package preview

import (
	"encoding/json"
	"strings"

	"homefeed-server/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

const (
	MaxLength       = 60
	budgetNameLimit = 15

	EmptyTodo   = "No tasks"
	EmptyBudget = "New budget"
	// BrokenBudget is used when the stored budget data cannot be parsed.
	BrokenBudget = "Budget"
)

func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func Note(content string) string {
	return Truncate(content, MaxLength)
}

// Todo flattens the task markup into a comma separated list of task texts.
func Todo(tasks string) string {
	var parts []string
	var current strings.Builder

	flush := func() {
		text := strings.Join(strings.Fields(current.String()), " ")
		if text != "" {
			parts = append(parts, text)
		}
		current.Reset()
	}

	z := html.NewTokenizer(strings.NewReader(tasks))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or malformed markup; keep what was read so far.
			break
		}

		switch tt {
		case html.TextToken:
			current.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li", "ul", "ol", "br", "p", "div":
				flush()
			}
		}
	}
	flush()

	if len(parts) == 0 {
		return EmptyTodo
	}
	return Truncate(strings.Join(parts, ", "), MaxLength)
}

// Budget summarises the first two entries and the total of all amounts.
func Budget(data string) string {
	if strings.TrimSpace(data) == "" {
		return EmptyBudget
	}

	var entries []domain.BudgetEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return BrokenBudget
	}
	if len(entries) == 0 {
		return EmptyBudget
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}

	var names []string
	for _, e := range entries {
		if len(names) == 2 {
			break
		}
		name := strings.TrimSpace(e.Item)
		if name == "" {
			continue
		}
		names = append(names, strings.TrimSpace(Truncate(name, budgetNameLimit)))
	}

	summary := "Total: " + total.StringFixed(2)
	if len(names) > 0 {
		summary = strings.Join(names, ", ") + " · " + summary
	}
	return Truncate(summary, MaxLength)
}
