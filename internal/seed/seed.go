package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creature-reviews/internal/domain/categories"
	"creature-reviews/internal/domain/countries"
	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/domain/reviewers"
	"creature-reviews/internal/domain/reviews"
	"creature-reviews/internal/platform/logger"
	"creature-reviews/internal/ports/storage"
	"creature-reviews/internal/router"
)

type review struct {
	title    string
	text     string
	rating   int
	reviewer string
}

type creature struct {
	name      string
	birthDate time.Time
	category  string
	owner     string
	reviews   []review
}

type owner struct {
	name    string
	gym     string
	country string
}

var (
	demoCountries  = []string{"Kanto", "Saffron City", "Millet Town"}
	demoCategories = []string{"Electric", "Water", "Leaf"}
	demoReviewers  = []string{"Teddy Smith", "Taylor Jones", "Jessica McGregor"}

	demoOwners = []owner{
		{name: "Jack London", gym: "Brocks Gym", country: "Kanto"},
		{name: "Harry Potter", gym: "Mistys Gym", country: "Saffron City"},
		{name: "Ash Ketchum", gym: "Ashs Gym", country: "Millet Town"},
	}

	demoCreatures = []creature{
		{
			name:      "Pikachu",
			birthDate: time.Date(1903, 1, 1, 0, 0, 0, 0, time.UTC),
			category:  "Electric",
			owner:     "Jack London",
			reviews: []review{
				{title: "Pikachu", text: "Pickachu is the best pokemon, because it is electric", rating: 5, reviewer: "Teddy Smith"},
				{title: "Pikachu", text: "Pickachu is the best a killing rocks", rating: 5, reviewer: "Taylor Jones"},
				{title: "Pikachu", text: "Pickchu, pickachu, pikachu", rating: 1, reviewer: "Jessica McGregor"},
			},
		},
		{
			name:      "Squirtle",
			birthDate: time.Date(1903, 1, 1, 0, 0, 0, 0, time.UTC),
			category:  "Water",
			owner:     "Harry Potter",
			reviews: []review{
				{title: "Squirtle", text: "squirtle is the best pokemon, because it is water", rating: 5, reviewer: "Teddy Smith"},
				{title: "Squirtle", text: "Squirtle is the best a killing rocks", rating: 5, reviewer: "Taylor Jones"},
				{title: "Squirtle", text: "squirtle, squirtle, squirtle", rating: 1, reviewer: "Jessica McGregor"},
			},
		},
		{
			name:      "Venusaur",
			birthDate: time.Date(1903, 1, 1, 0, 0, 0, 0, time.UTC),
			category:  "Leaf",
			owner:     "Ash Ketchum",
			reviews: []review{
				{title: "Venusaur", text: "Venusaur is the best pokemon, because it is leaf", rating: 5, reviewer: "Teddy Smith"},
				{title: "Venusaur", text: "Venusaur is the best a killing rocks", rating: 5, reviewer: "Taylor Jones"},
				{title: "Venusaur", text: "Venusaur, Venusaur, Venusaur", rating: 1, reviewer: "Jessica McGregor"},
			},
		},
	}
)

// Result cuenta lo que Run creó; en una segunda corrida todo da 0.
type Result struct {
	Countries  int
	Categories int
	Owners     int
	Reviewers  int
	Creatures  int
	Reviews    int
}

// Run carga el dataset demo a través de los services.
// Es idempotente: lo que ya existe (por nombre) se reutiliza y sus reviews no se repiten.
func Run(ctx context.Context, svcs *router.Services, log logger.Logger) (Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	var res Result

	countryIDs, err := ensureNamed(ctx, demoCountries, svcs.Countries.List,
		func(c countries.Country) (string, int64) { return c.Name, c.ID },
		func(ctx context.Context, name string) (int64, error) {
			c, err := svcs.Countries.Create(ctx, name)
			return c.ID, err
		}, &res.Countries)
	if err != nil {
		return res, fmt.Errorf("seed countries: %w", err)
	}

	// El listado cacheado puede estar viejo; acá hace falta el real.
	categoryIDs, err := ensureNamed(ctx, demoCategories, svcs.Categories.ListFresh,
		func(c categories.Category) (string, int64) { return c.Name, c.ID },
		func(ctx context.Context, name string) (int64, error) {
			c, err := svcs.Categories.Create(ctx, name)
			return c.ID, err
		}, &res.Categories)
	if err != nil {
		return res, fmt.Errorf("seed categories: %w", err)
	}

	reviewerIDs, err := ensureNamed(ctx, demoReviewers, svcs.Reviewers.List,
		func(r reviewers.Reviewer) (string, int64) { return r.Name, r.ID },
		func(ctx context.Context, name string) (int64, error) {
			r, err := svcs.Reviewers.Create(ctx, name)
			return r.ID, err
		}, &res.Reviewers)
	if err != nil {
		return res, fmt.Errorf("seed reviewers: %w", err)
	}

	ownerNames := make([]string, 0, len(demoOwners))
	byName := map[string]owner{}
	for _, o := range demoOwners {
		ownerNames = append(ownerNames, o.name)
		byName[key(o.name)] = o
	}
	ownerIDs, err := ensureNamed(ctx, ownerNames, svcs.Owners.List,
		func(o owners.Owner) (string, int64) { return o.Name, o.ID },
		func(ctx context.Context, name string) (int64, error) {
			o := byName[key(name)]
			created, err := svcs.Owners.Create(ctx, owners.CreateInput{
				Name:      o.name,
				Gym:       o.gym,
				CountryID: countryIDs[key(o.country)],
			})
			return created.ID, err
		}, &res.Owners)
	if err != nil {
		return res, fmt.Errorf("seed owners: %w", err)
	}

	for _, dc := range demoCreatures {
		_, err := svcs.Creatures.GetByName(ctx, dc.name)
		if err == nil {
			log.Debug("seed creature exists", map[string]any{"creature": dc.name})
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return res, fmt.Errorf("seed creature %q: %w", dc.name, err)
		}

		c, err := svcs.Creatures.Create(ctx, creatures.CreateInput{
			Name:       dc.name,
			BirthDate:  dc.birthDate,
			OwnerID:    ownerIDs[key(dc.owner)],
			CategoryID: categoryIDs[key(dc.category)],
		})
		if err != nil {
			return res, fmt.Errorf("seed creature %q: %w", dc.name, err)
		}
		res.Creatures++

		for _, rv := range dc.reviews {
			if _, err := svcs.Reviews.Create(ctx, reviews.CreateInput{
				Title:      rv.title,
				Text:       rv.text,
				Rating:     rv.rating,
				CreatureID: c.ID,
				ReviewerID: reviewerIDs[key(rv.reviewer)],
			}); err != nil {
				return res, fmt.Errorf("seed review for %q: %w", dc.name, err)
			}
			res.Reviews++
		}
	}

	log.Info("seed done", map[string]any{
		"countries":  res.Countries,
		"categories": res.Categories,
		"owners":     res.Owners,
		"reviewers":  res.Reviewers,
		"creatures":  res.Creatures,
		"reviews":    res.Reviews,
	})
	return res, nil
}

// ensureNamed devuelve id por nombre normalizado, creando los que falten.
func ensureNamed[T any](
	ctx context.Context,
	names []string,
	list func(context.Context) ([]T, error),
	ident func(T) (string, int64),
	create func(context.Context, string) (int64, error),
	created *int,
) (map[string]int64, error) {
	items, err := list(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(names))
	for _, it := range items {
		name, id := ident(it)
		ids[key(name)] = id
	}

	for _, name := range names {
		if _, ok := ids[key(name)]; ok {
			continue
		}
		id, err := create(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		ids[key(name)] = id
		*created++
	}
	return ids, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
