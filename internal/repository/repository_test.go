package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"aidemoi/internal/database"
	"aidemoi/internal/domain"
	"aidemoi/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) (*gorm.DB, *seed.Result) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ids, err := seed.Run(context.Background(), db, testNow)
	require.NoError(t, err)

	return db, ids
}

func int64Ptr(v int64) *int64 { return &v }

func ptrFloat(v float64) *float64 { return &v }

func serviceIDs(rows []domain.SearchResult) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ServiceID)
	}
	return out
}

func TestCategoryRepository_ListLocalized(t *testing.T) {
	db, _ := setupDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	en, err := repo.List(ctx, domain.LocaleEN)
	require.NoError(t, err)
	require.Len(t, en, 3)
	assert.Equal(t, []string{"Cleaning", "Plumbing", "Tutoring"},
		[]string{en[0].Name, en[1].Name, en[2].Name})

	fr, err := repo.List(ctx, domain.LocaleFR)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nettoyage", "Plomberie", "Soutien scolaire"},
		[]string{fr[0].Name, fr[1].Name, fr[2].Name})

	// Same ids and icons whatever the language.
	byID := map[int64]string{}
	for _, c := range en {
		byID[c.ID] = c.Icon
	}
	for _, c := range fr {
		assert.Equal(t, byID[c.ID], c.Icon)
	}
}

func TestSearchRepository_NoFiltersOnlyAvailableAndOrdered(t *testing.T) {
	db, ids := setupDB(t)
	repo := NewSearchRepository(db)

	rows, err := repo.Search(context.Background(), domain.LocaleEN, SearchFilters{})
	require.NoError(t, err)

	assert.Equal(t, []int64{
		ids.Services["home_cleaning"],
		ids.Services["math_tutoring"],
		ids.Services["french_lessons"],
		ids.Services["emergency_plumbing"],
	}, serviceIDs(rows))

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		require.True(t, prev.Rating > cur.Rating ||
			(prev.Rating == cur.Rating && prev.TotalReviews >= cur.TotalReviews),
			"row %d out of order", i)
	}

	first := rows[0]
	assert.Equal(t, "Marie Dupont", first.ProviderName)
	assert.Equal(t, "Home cleaning", first.ServiceTitle)
	assert.Equal(t, "Cleaning", first.CategoryName)
	assert.Equal(t, domain.ProfileProfessional, first.ProfileType)
	assert.True(t, first.Verified)
	require.NotNil(t, first.HourlyRate)
	assert.Equal(t, 25.0, *first.HourlyRate)
	assert.Nil(t, first.FixedPrice)
}

func TestSearchRepository_Filters(t *testing.T) {
	db, ids := setupDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	cases := []struct {
		name string
		f    SearchFilters
		want []int64
	}{
		{
			name: "city substring any case",
			f:    SearchFilters{City: "PAR"},
			want: []int64{ids.Services["home_cleaning"], ids.Services["math_tutoring"], ids.Services["french_lessons"]},
		},
		{
			name: "country",
			f:    SearchFilters{Country: "usa"},
			want: []int64{ids.Services["emergency_plumbing"]},
		},
		{
			name: "category and city",
			f:    SearchFilters{CategoryID: int64Ptr(ids.Categories["tutoring"]), City: "paris"},
			want: []int64{ids.Services["math_tutoring"], ids.Services["french_lessons"]},
		},
		{
			name: "amateur skips unavailable services",
			f:    SearchFilters{ProfileType: domain.ProfileAmateur},
			want: []int64{ids.Services["french_lessons"]},
		},
		{
			name: "no match",
			f:    SearchFilters{City: "Tokyo"},
			want: []int64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := repo.Search(ctx, domain.LocaleEN, tc.f)
			require.NoError(t, err)
			assert.Equal(t, tc.want, serviceIDs(rows))
		})
	}
}

func TestSearchRepository_ValuesAreBound(t *testing.T) {
	db, _ := setupDB(t)
	repo := NewSearchRepository(db)

	rows, err := repo.Search(context.Background(), domain.LocaleEN, SearchFilters{
		City:        "' OR 1=1 --",
		ProfileType: domain.ProfileType("x' OR '1'='1"),
	})
	require.NoError(t, err)
	assert.Empty(t, rows)

	var count int64
	require.NoError(t, db.Model(&domain.Provider{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestSearchRepository_WildcardsMatchLiterally(t *testing.T) {
	db, ids := setupDB(t)
	ctx := context.Background()
	providers := NewProviderRepository(db)

	p := &domain.Provider{
		Name: "Inès Haddad", ProfileType: domain.ProfileAmateur,
		City: "Saint_Denis", Country: "France", Rating: 1, TotalReviews: 1,
	}
	require.NoError(t, providers.Create(ctx, p))
	svc := &domain.Service{
		ProviderID: p.ID, CategoryID: ids.Categories["cleaning"],
		TitleEN: "Ironing", TitleFR: "Repassage",
		PricingType: domain.PricingHourly, HourlyRate: ptrFloat(12), Currency: "EUR",
	}
	require.NoError(t, providers.CreateService(ctx, svc))

	repo := NewSearchRepository(db)
	cases := map[string][]int64{
		"_":     {svc.ID},
		"t_d":   {svc.ID},
		"%":     {},
		`\`:     {},
		"a%s":   {},
		"paris": {ids.Services["home_cleaning"], ids.Services["math_tutoring"], ids.Services["french_lessons"]},
	}
	for city, want := range cases {
		t.Run(city, func(t *testing.T) {
			rows, err := repo.Search(ctx, domain.LocaleEN, SearchFilters{City: city})
			require.NoError(t, err)
			assert.Equal(t, want, serviceIDs(rows))
		})
	}

	rows, err := repo.Search(ctx, domain.LocaleEN, SearchFilters{Country: "_"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%paris%", containsPattern("paris"))
	assert.Equal(t, `%50\% \_off\\%`, containsPattern(`50% _off\`))
}

func TestSearchRepository_LocaleOnlyChangesText(t *testing.T) {
	db, _ := setupDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	en, err := repo.Search(ctx, domain.LocaleEN, SearchFilters{})
	require.NoError(t, err)
	fr, err := repo.Search(ctx, domain.LocaleFR, SearchFilters{})
	require.NoError(t, err)
	require.Len(t, fr, len(en))

	for i := range en {
		assert.Equal(t, en[i].ServiceID, fr[i].ServiceID)
		assert.Equal(t, en[i].ProviderID, fr[i].ProviderID)
		assert.Equal(t, en[i].Rating, fr[i].Rating)
		assert.Equal(t, en[i].HourlyRate, fr[i].HourlyRate)
		assert.Equal(t, en[i].FixedPrice, fr[i].FixedPrice)
	}
	assert.Equal(t, "Ménage à domicile", fr[0].ServiceTitle)
	assert.Equal(t, "Nettoyage", fr[0].CategoryName)
}

func TestProviderRepository(t *testing.T) {
	db, ids := setupDB(t)
	repo := NewProviderRepository(db)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, ids.Providers["jean"])
	require.NoError(t, err)
	assert.Equal(t, "Jean Martin", p.Name)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	services, err := repo.ListServices(ctx, ids.Providers["jean"], domain.LocaleFR)
	require.NoError(t, err)
	require.Len(t, services, 2, "unavailable services are listed too")
	assert.Equal(t, "Cours de français", services[0].Title)
	assert.True(t, services[0].Available)
	assert.Equal(t, "Cours de guitare", services[1].Title)
	assert.False(t, services[1].Available)
	assert.Equal(t, "Soutien scolaire", services[1].Category)
}

func TestReviewRepository_RecentForProvider(t *testing.T) {
	db, ids := setupDB(t)
	repo := NewReviewRepository(db)

	reviews, err := repo.RecentForProvider(context.Background(), ids.Providers["marie"], 10)
	require.NoError(t, err)
	require.Len(t, reviews, 10)

	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].CreatedAt.After(reviews[i-1].CreatedAt))
	}

	assert.Equal(t, "Review #1", reviews[0].Comment)
	require.NotNil(t, reviews[0].UserName)
	assert.Equal(t, "Sophie", *reviews[0].UserName)
	assert.Nil(t, reviews[1].UserName, "anonymous review")
	assert.Nil(t, reviews[2].UserName, "deleted user")
	assert.Equal(t, "Review #10", reviews[9].Comment)

	none, err := repo.RecentForProvider(context.Background(), ids.Providers["carlos"], 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepository(t *testing.T) {
	db, ids := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u, err := repo.GetByEmail(ctx, "  Sophie@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, ids.Users["active"], u.ID)
	assert.True(t, u.SubscriptionActive(testNow))

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := repo.ExpireSubscriptions(ctx, testNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	lapsed, err := repo.GetByEmail(ctx, "paul@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionExpired, lapsed.SubscriptionStatus)

	require.NoError(t, repo.Create(ctx, &domain.User{Email: " New@Example.com", Name: "New"}))
	created, err := repo.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.True(t, strings.EqualFold("new@example.com", created.Email))
	assert.Equal(t, domain.SubscriptionInactive, created.SubscriptionStatus)
}

func TestStatsRepository(t *testing.T) {
	db, _ := setupDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	providers, err := repo.CountProviders(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, providers)

	services, err := repo.CountAvailableServices(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, services)

	active, err := repo.CountActiveUsers(ctx, testNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	later, err := repo.CountActiveUsers(ctx, testNow.Add(60*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 0, later)
}

func TestTimesWithOffsetsCompareAsInstants(t *testing.T) {
	db, ids := setupDB(t)
	ctx := context.Background()
	paris := time.FixedZone("CET", 3600)
	karachi := time.FixedZone("PKT", 5*3600)

	users := NewUserRepository(db)
	stats := NewStatsRepository(db)

	// 11:30 UTC, written as 12:30+01:00.
	expired := testNow.Add(-30 * time.Minute).In(paris)
	lapsed := &domain.User{
		Email:                 "remi@example.com",
		Name:                  "Rémi",
		SubscriptionStatus:    domain.SubscriptionActive,
		SubscriptionExpiresAt: &expired,
	}
	require.NoError(t, users.Create(ctx, lapsed))
	assert.False(t, lapsed.SubscriptionActive(testNow))

	active, err := stats.CountActiveUsers(ctx, testNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	active, err = stats.CountActiveUsers(ctx, testNow.In(karachi))
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	n, err := users.ExpireSubscriptions(ctx, testNow.In(paris))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "paul and remi")

	got, err := users.GetByEmail(ctx, "remi@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionExpired, got.SubscriptionStatus)
	assert.True(t, got.SubscriptionExpiresAt.Equal(expired))

	// 09:30 UTC, written as 14:30+05:00: older than the two newest seed reviews.
	reviews := NewReviewRepository(db)
	require.NoError(t, reviews.Create(ctx, &domain.Review{
		ServiceID: ids.Services["home_cleaning"],
		Rating:    3,
		Comment:   "Late entry",
		CreatedAt: testNow.Add(-150 * time.Minute).In(karachi),
	}))

	recent, err := reviews.RecentForProvider(ctx, ids.Providers["marie"], 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "Review #1", recent[0].Comment)
	assert.Equal(t, "Review #2", recent[1].Comment)
	assert.Equal(t, "Late entry", recent[2].Comment)
}
