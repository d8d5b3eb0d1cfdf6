package seed

import (
	"context"
	"testing"

	"spectra-directory/domain/listing"
	"spectra-directory/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	repo := mock.NewListingRepository()
	ctx := context.Background()

	require.NoError(t, NewSeeder(repo).Seed(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(Catalog())), count)

	// Seed data is published immediately and carries its featured flag.
	for _, entry := range Catalog() {
		l := repo.Get(listing.Slugify(entry.Name))
		require.NotNil(t, l, "catalog entry %q missing after seed", entry.Name)
		assert.True(t, l.IsApproved)
		assert.Equal(t, entry.Featured, l.IsFeatured)
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	repo := mock.NewListingRepository()
	ctx := context.Background()

	user := listing.NewSubmission(listing.SubmissionParams{
		Name: "User Tool", WebsiteURL: "https://user.example", ShortDescription: "d",
	}, "user-tool")
	repo.Add(user)

	require.NoError(t, NewSeeder(repo).Seed(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "seeding must not touch a populated store")
	assert.False(t, repo.Get("user-tool").IsApproved)
}

func TestSeedTwiceDoesNotDuplicate(t *testing.T) {
	repo := mock.NewListingRepository()
	ctx := context.Background()

	seeder := NewSeeder(repo)
	require.NoError(t, seeder.Seed(ctx))
	require.NoError(t, seeder.Seed(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(Catalog())), count)
}

func TestSeedIgnoresSlugCollision(t *testing.T) {
	repo := mock.NewListingRepository()
	ctx := context.Background()

	calls := 0
	repo.CreateFunc = func(c context.Context, l *listing.Listing) error {
		calls++
		if calls == 1 {
			return listing.ErrSlugTaken
		}
		repo.Add(l)
		return nil
	}

	require.NoError(t, NewSeeder(repo).Seed(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(Catalog())-1), count)
}

func TestCatalogSlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range Catalog() {
		slug := listing.Slugify(entry.Name)
		assert.False(t, seen[slug], "duplicate base slug %q in fixed catalog", slug)
		seen[slug] = true
	}
}
