// Package seed contiene los datos de demostración del annuaire.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

type demoProvider struct {
	nom, domaine, ville, description string
	note, prix, telephone, email     string
	photos                           []string
	site, handle, company            string
}

var demo = []demoProvider{
	{
		nom: "Agence Digital Plus", domaine: "Marketing Digital", ville: "Paris",
		description: "Spécialiste en marketing digital et réseaux sociaux. Nous accompagnons les entreprises dans leur transformation digitale avec des stratégies sur mesure. Notre équipe d'experts crée des campagnes performantes qui génèrent des résultats concrets.",
		note: "4.8", prix: "À partir de 500€/jour", telephone: "+33123456789", email: "contact@agencedigitalplus.fr",
		photos:  []string{"photo-1551434678-e076c223a692", "photo-1460925895917-afdab827c52f", "photo-1552664730-d307ca884978"},
		site:    "agencedigitalplus.fr",
		handle:  "agencedigitalplus",
		company: "agence-digital-plus",
	},
	{
		nom: "Studio Web Pro", domaine: "Développement Web", ville: "Lyon",
		description: "Création de sites web et applications sur mesure. Développement frontend et backend avec les technologies les plus récentes. Nous créons des solutions digitales performantes et évolutives.",
		note: "4.9", prix: "À partir de 600€/jour", telephone: "+33456789012", email: "hello@studiowebpro.fr",
		photos:  []string{"photo-1498050108023-c5249f4df085", "photo-1461749280684-dccba630e2f6", "photo-1555066931-4365d14bab8c"},
		site:    "studiowebpro.fr",
		handle:  "studiowebpro",
		company: "studio-web-pro",
	},
	{
		nom: "Design Studio", domaine: "Design Graphique", ville: "Marseille",
		description: "Design d'identité visuelle et supports marketing. Création de logos, chartes graphiques et supports de communication. Notre créativité au service de votre image de marque.",
		note: "4.7", prix: "À partir de 400€/jour", telephone: "+33412345678", email: "info@designstudio.fr",
		photos:  []string{"photo-1561070791-2526d30994b5", "photo-1513475382585-d06e58bcb0e0", "photo-1558655146-d09347e92766"},
		site:    "designstudio.fr",
		handle:  "designstudio",
		company: "design-studio",
	},
	{
		nom: "Tech Solutions", domaine: "Développement Mobile", ville: "Paris",
		description: "Développement d'applications mobiles iOS et Android. Solutions sur mesure pour entreprises et startups. Nous créons des apps performantes et intuitives.",
		note: "4.6", prix: "À partir de 700€/jour", telephone: "+33198765432", email: "contact@techsolutions.fr",
		photos:  []string{"photo-1512941937669-90a1b58e7e9c", "photo-1551650975-87deedd944c3", "photo-1526498460520-4c246319d3b9"},
		site:    "techsolutions.fr",
		handle:  "techsolutions",
		company: "tech-solutions",
	},
	{
		nom: "Marketing Expert", domaine: "Marketing Digital", ville: "Bordeaux",
		description: "Expert en marketing digital et publicité en ligne. Campagnes Google Ads, Facebook Ads et optimisation SEO. Nous maximisons votre ROI avec des stratégies ciblées.",
		note: "4.5", prix: "À partir de 450€/jour", telephone: "+33512345678", email: "hello@marketingexpert.fr",
		photos:  []string{"photo-1551288049-bebda4e38f71", "photo-1460925895917-afdab827c52f", "photo-1552664730-d307ca884978"},
		site:    "marketingexpert.fr",
		handle:  "marketingexpert",
		company: "marketing-expert",
	},
	{
		nom: "Creative Agency", domaine: "Design Graphique", ville: "Nantes",
		description: "Agence créative spécialisée dans le design et la communication. Création de supports print et digitaux. Notre approche créative fait la différence.",
		note: "4.4", prix: "À partir de 380€/jour", telephone: "+33212345678", email: "contact@creativeagency.fr",
		photos:  []string{"photo-1561070791-2526d30994b5", "photo-1513475382585-d06e58bcb0e0", "photo-1558655146-d09347e92766"},
		site:    "creativeagency.fr",
		handle:  "creativeagency",
		company: "creative-agency",
	},
}

// DemoProviders devuelve fichas ya validadas, listas para insertar.
func DemoProviders() []*entity.Provider {
	out := make([]*entity.Provider, 0, len(demo))
	for _, d := range demo {
		note := decimal.RequireFromString(d.note)
		photos := make([]string, len(d.photos))
		for i, id := range d.photos {
			photos[i] = "https://images.unsplash.com/" + id + "?w=800&h=600&fit=crop"
		}
		out = append(out, &entity.Provider{
			Nom:         d.nom,
			Domaine:     d.domaine,
			Ville:       d.ville,
			Description: d.description,
			Telephone:   d.telephone,
			Email:       ptr(d.email),
			Prix:        ptr(d.prix),
			SiteWeb:     ptr("https://" + d.site),
			Linkedin:    ptr("https://linkedin.com/company/" + d.company),
			Twitter:     ptr("https://twitter.com/" + d.handle),
			Instagram:   ptr("https://instagram.com/" + d.handle),
			Facebook:    ptr("https://facebook.com/" + d.handle),
			Photos:      photos,
			Note:        &note,
			Statut:      moderation.StatusApproved,
		})
	}
	return out
}

// LoadDemo inserta las fichas cuyo nombre aún no existe. Devuelve cuántas se crearon.
func LoadDemo(ctx context.Context, repo repository.ProviderRepository) (int, error) {
	existing, err := repo.FindMany(ctx, repository.ProviderQuery{Order: repository.OrderByCreatedDesc})
	if err != nil {
		return 0, fmt.Errorf("listar fichas existentes: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Nom] = true
	}
	created := 0
	for _, p := range DemoProviders() {
		if seen[p.Nom] {
			continue
		}
		if err := repo.Create(ctx, p); err != nil {
			return created, fmt.Errorf("crear %q: %w", p.Nom, err)
		}
		created++
	}
	return created, nil
}

func ptr(s string) *string { return &s }
