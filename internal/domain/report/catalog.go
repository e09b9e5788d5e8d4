package report

import (
	"strings"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// MatchCatalog encontra o item do catálogo cujo nome aparece na
// descrição livre do serviço (substring, sem caixa). Quando mais de
// um item casa, vence o de nome mais longo; empate resolve por ordem
// alfabética.
func MatchCatalog(service string, catalog []models.CatalogItem) (models.CatalogItem, bool) {
	text := strings.ToLower(service)

	var best models.CatalogItem
	found := false

	for _, item := range catalog {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if name == "" || !strings.Contains(text, name) {
			continue
		}
		if !found {
			best = item
			found = true
			continue
		}
		if len(item.Name) > len(best.Name) {
			best = item
			continue
		}
		if len(item.Name) == len(best.Name) && item.Name < best.Name {
			best = item
		}
	}

	return best, found
}
