package display

import (
	"github.com/pterm/pterm"

	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/resolve"
)

// RenderItems prints a listing table ordered the way the store returned it.
func RenderItems(items []item.Item) error {
	if len(items) == 0 {
		pterm.Println(pterm.Gray("no items"))
		return nil
	}

	rows := pterm.TableData{{"Placement", "Rank", "Title", "ID"}}
	for _, it := range items {
		rows = append(rows, []string{
			it.Placement.String(),
			string(it.Rank),
			it.Title,
			shortID(it.ID),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// RenderAliases prints the alias table. The shortest prefix that uniquely
// identifies each alias is highlighted inside the slug, so the listing
// doubles as a cheat sheet for how little needs typing.
func RenderAliases(aliases []item.Alias) error {
	if len(aliases) == 0 {
		pterm.Println(pterm.Gray("no aliases"))
		return nil
	}

	canonicals := make([]string, len(aliases))
	for i, a := range aliases {
		canonicals[i] = a.Canonical
	}
	prefixes := resolve.ShortestUniquePrefixes(canonicals)

	rows := pterm.TableData{{"Alias", "Prefix", "Item"}}
	for _, a := range aliases {
		prefix := prefixes[a.Canonical]
		rows = append(rows, []string{
			highlightPrefix(a.Slug, len([]rune(prefix))),
			prefix,
			shortID(a.ItemID),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func highlightPrefix(slug string, n int) string {
	runes := []rune(slug)
	if n > len(runes) {
		n = len(runes)
	}
	return pterm.Bold.Sprint(string(runes[:n])) + string(runes[n:])
}

func shortID(id item.ID) string {
	s := id.String()
	return s[:8]
}
