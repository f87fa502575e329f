package catalog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

func TestGetPerson(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/person/500", tmdb.Person{
		ID: 500, Name: "Tom Hanks", KnownForDepartment: "Acting",
	})

	s := newTestService(t, f)

	person, err := s.GetPerson(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, "Tom Hanks", person.Name)

	_, err = s.GetPerson(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 1, f.callCount("/3/person/500"))
}

func TestRoleInfo_Classification(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/person/1/combined_credits", tmdb.CombinedCredits{
		ID:   1,
		Cast: []tmdb.PersonCastCredit{{ID: 550, MediaType: "movie", Character: "Lead"}},
		Crew: []tmdb.PersonCrewCredit{{ID: 550, Job: "Director", Department: "Directing"}},
	})
	f.handleJSON("/3/person/2/combined_credits", tmdb.CombinedCredits{
		ID:   2,
		Crew: []tmdb.PersonCrewCredit{{ID: 550, Job: "Producer", Department: "Production"}},
	})
	f.handleJSON("/3/person/3/combined_credits", tmdb.CombinedCredits{
		ID:   3,
		Crew: []tmdb.PersonCrewCredit{{ID: 550, Job: "Screenplay", Department: "Writing"}},
	})

	s := newTestService(t, f)

	info, err := s.RoleInfo(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, info.IsActor)
	assert.True(t, info.IsCrew)

	info, err = s.RoleInfo(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, info.IsActor)
	assert.False(t, info.IsCrew, "producer alone doesn't count as director-or-writer")

	info, err = s.RoleInfo(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, info.IsCrew)
}

func TestRoleInfo_SharedCreditsFetch(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/person/1/combined_credits", tmdb.CombinedCredits{
		ID:   1,
		Cast: []tmdb.PersonCastCredit{{ID: 550}},
	})

	s := newTestService(t, f)

	_, err := s.RoleInfo(context.Background(), 1)
	require.NoError(t, err)
	_, err = s.PersonCredits(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, f.callCount("/3/person/1/combined_credits"),
		"classification reuses the cached credits fetch")
}

func TestFilterByRole(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/person/1/combined_credits", tmdb.CombinedCredits{
		ID:   1,
		Cast: []tmdb.PersonCastCredit{{ID: 550}},
	})
	f.handleJSON("/3/person/2/combined_credits", tmdb.CombinedCredits{
		ID:   2,
		Crew: []tmdb.PersonCrewCredit{{ID: 550, Job: "Writer", Department: "Writing"}},
	})
	f.handleError("/3/person/3/combined_credits", http.StatusInternalServerError)

	s := newTestService(t, f, WithBatchSize(2))

	actors := s.FilterToActors(context.Background(), []int{1, 2, 3})
	assert.Equal(t, []int{1}, actors, "failed lookups are dropped, not fatal")

	crew := s.FilterToCrew(context.Background(), []int{1, 2, 3})
	assert.Equal(t, []int{2}, crew)
}

func TestFilterByRole_PreservesOrder(t *testing.T) {
	f := newFakeCatalog(t)
	for _, id := range []string{"5", "6", "7", "8"} {
		f.handleJSON("/3/person/"+id+"/combined_credits", tmdb.CombinedCredits{
			Cast: []tmdb.PersonCastCredit{{ID: 550}},
		})
	}

	s := newTestService(t, f, WithBatchSize(3))

	actors := s.FilterToActors(context.Background(), []int{5, 6, 7, 8})
	assert.Equal(t, []int{5, 6, 7, 8}, actors, "input order survives batched filtering")
}
