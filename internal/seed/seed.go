// Package seed loads a small bilingual sample directory. cmd/seed uses it to
// populate a development database and tests use it as their fixture.
package seed

import (
	"context"
	"fmt"
	"time"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

// Result holds the ids of the rows created, keyed by a short handle.
type Result struct {
	Categories map[string]int64
	Providers  map[string]int64
	Services   map[string]int64
	Users      map[string]int64
}

func ptr[T any](v T) *T { return &v }

// Run inserts the sample data. Times are derived from now so that
// subscription state is stable relative to the caller's clock.
func Run(ctx context.Context, db *gorm.DB, now time.Time) (*Result, error) {
	now = now.UTC()
	res := &Result{
		Categories: map[string]int64{},
		Providers:  map[string]int64{},
		Services:   map[string]int64{},
		Users:      map[string]int64{},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := []struct {
			key string
			row domain.Category
		}{
			{"cleaning", domain.Category{NameEN: "Cleaning", NameFR: "Nettoyage", Icon: "🧹"}},
			{"tutoring", domain.Category{NameEN: "Tutoring", NameFR: "Soutien scolaire", Icon: "📚"}},
			{"plumbing", domain.Category{NameEN: "Plumbing", NameFR: "Plomberie", Icon: "🔧"}},
		}
		for _, c := range categories {
			row := c.row
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("category %s: %w", c.key, err)
			}
			res.Categories[c.key] = row.ID
		}

		providers := []struct {
			key string
			row domain.Provider
		}{
			{"marie", domain.Provider{
				Name: "Marie Dupont", Email: "marie@aidemoi.fr", Phone: "+33 6 12 34 56 78",
				Bio: "Ménage et cours particuliers depuis 10 ans", ProfileType: domain.ProfileProfessional,
				City: "Paris", Country: "France", Address: "12 rue de Rivoli",
				Rating: 4.9, TotalReviews: 120, Verified: true,
			}},
			{"jean", domain.Provider{
				Name: "Jean Martin", Email: "jean@aidemoi.fr", Phone: "+33 6 98 76 54 32",
				Bio: "Étudiant, cours de français", ProfileType: domain.ProfileAmateur,
				City: "Paris", Country: "France", Address: "4 place d'Italie",
				Rating: 4.9, TotalReviews: 40,
			}},
			{"alice", domain.Provider{
				Name: "Alice Smith", Email: "alice@helpme.us", Phone: "+1 212 555 0100",
				Bio: "Licensed plumber", ProfileType: domain.ProfileProfessional,
				City: "New York", Country: "USA", Address: "350 5th Ave",
				Rating: 4.5, TotalReviews: 200, Verified: true,
			}},
			{"carlos", domain.Provider{
				Name: "Carlos Ruiz", Email: "carlos@aidemoi.fr", Phone: "+33 7 11 22 33 44",
				Bio: "Weekend cleaning", ProfileType: domain.ProfileAmateur,
				City: "Lyon", Country: "France", Address: "1 quai Saint-Antoine",
				Rating: 3.8, TotalReviews: 10,
			}},
		}
		for _, p := range providers {
			row := p.row
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("provider %s: %w", p.key, err)
			}
			res.Providers[p.key] = row.ID
		}

		services := []struct {
			key       string
			provider  string
			category  string
			row       domain.Service
			available bool
		}{
			{"home_cleaning", "marie", "cleaning", domain.Service{
				TitleEN: "Home cleaning", TitleFR: "Ménage à domicile",
				DescriptionEN: "Weekly or one-off apartment cleaning", DescriptionFR: "Ménage hebdomadaire ou ponctuel",
				PricingType: domain.PricingHourly, HourlyRate: ptr(25.0), Currency: "EUR",
			}, true},
			{"math_tutoring", "marie", "tutoring", domain.Service{
				TitleEN: "Math tutoring", TitleFR: "Cours de maths",
				DescriptionEN: "High school math", DescriptionFR: "Mathématiques niveau lycée",
				PricingType: domain.PricingBoth, HourlyRate: ptr(30.0), FixedPrice: ptr(250.0), Currency: "EUR",
			}, true},
			{"french_lessons", "jean", "tutoring", domain.Service{
				TitleEN: "French lessons", TitleFR: "Cours de français",
				DescriptionEN: "Conversation practice", DescriptionFR: "Pratique de la conversation",
				PricingType: domain.PricingHourly, HourlyRate: ptr(15.0), Currency: "EUR",
			}, true},
			{"emergency_plumbing", "alice", "plumbing", domain.Service{
				TitleEN: "Emergency plumbing", TitleFR: "Plomberie d'urgence",
				DescriptionEN: "Leaks and blocked drains, 24/7", DescriptionFR: "Fuites et canalisations bouchées, 24h/24",
				PricingType: domain.PricingFixed, FixedPrice: ptr(120.0), Currency: "USD",
			}, true},
			{"weekend_cleaning", "carlos", "cleaning", domain.Service{
				TitleEN: "Weekend cleaning", TitleFR: "Ménage le week-end",
				PricingType: domain.PricingHourly, HourlyRate: ptr(18.0), Currency: "EUR",
			}, false},
			{"guitar_lessons", "jean", "tutoring", domain.Service{
				TitleEN: "Guitar lessons", TitleFR: "Cours de guitare",
				PricingType: domain.PricingFixed, FixedPrice: ptr(40.0), Currency: "EUR",
			}, false},
		}
		for _, s := range services {
			row := s.row
			row.ProviderID = res.Providers[s.provider]
			row.CategoryID = res.Categories[s.category]
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("service %s: %w", s.key, err)
			}
			// gorm skips false on create when the column has a default.
			if !s.available {
				if err := tx.Model(&row).Update("available", false).Error; err != nil {
					return fmt.Errorf("service %s: %w", s.key, err)
				}
			}
			res.Services[s.key] = row.ID
		}

		users := []struct {
			key string
			row domain.User
		}{
			{"active", domain.User{Email: "sophie@example.com", Name: "Sophie",
				SubscriptionStatus: domain.SubscriptionActive, SubscriptionExpiresAt: ptr(now.Add(30 * 24 * time.Hour))}},
			{"lapsed", domain.User{Email: "paul@example.com", Name: "Paul",
				SubscriptionStatus: domain.SubscriptionActive, SubscriptionExpiresAt: ptr(now.Add(-24 * time.Hour))}},
			{"inactive", domain.User{Email: "lea@example.com", Name: "Léa",
				SubscriptionStatus: domain.SubscriptionInactive, SubscriptionExpiresAt: ptr(now.Add(30 * 24 * time.Hour))}},
			{"departed", domain.User{Email: "gone@example.com", Name: "Gone",
				SubscriptionStatus: domain.SubscriptionInactive}},
		}
		for _, u := range users {
			row := u.row
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("user %s: %w", u.key, err)
			}
			res.Users[u.key] = row.ID
		}

		// Twelve reviews on Marie's services, newest first by index; only the
		// ten newest show on her page.
		for i := 0; i < 12; i++ {
			svc := "home_cleaning"
			if i%2 == 1 {
				svc = "math_tutoring"
			}
			review := domain.Review{
				ServiceID: res.Services[svc],
				Rating:    float64(5 - i%2),
				Comment:   fmt.Sprintf("Review #%d", i+1),
				CreatedAt: now.Add(-time.Duration(i+1) * time.Hour),
			}
			switch i {
			case 0:
				review.UserID = ptr(res.Users["active"])
			case 1:
				// anonymous
			case 2:
				review.UserID = ptr(res.Users["departed"])
			default:
				review.UserID = ptr(res.Users["inactive"])
			}
			if err := tx.Create(&review).Error; err != nil {
				return fmt.Errorf("review %d: %w", i, err)
			}
		}

		other := domain.Review{
			ServiceID: res.Services["emergency_plumbing"],
			UserID:    ptr(res.Users["active"]),
			Rating:    4,
			Comment:   "Fast and tidy",
			CreatedAt: now.Add(-30 * time.Minute),
		}
		if err := tx.Create(&other).Error; err != nil {
			return fmt.Errorf("review plumbing: %w", err)
		}

		// The departed user's account is removed; their review stays.
		return tx.Delete(&domain.User{}, res.Users["departed"]).Error
	})
	if err != nil {
		return nil, err
	}

	delete(res.Users, "departed")
	return res, nil
}
