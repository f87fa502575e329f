package catalog

import (
	"context"
	"strconv"

	"github.com/sourcegraph/conc/pool"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

// Role classifies a person for filtering.
type Role string

// Roles recognized by FilterByRole.
const (
	RoleActor Role = "actor"
	RoleCrew  Role = "crew" // director or writer
)

// PersonRoleInfo is the cached classification of a person, derived once from
// combined credits.
type PersonRoleInfo struct {
	IsActor bool
	IsCrew  bool
}

var crewJobs = map[string]bool{
	"Director":   true,
	"Writer":     true,
	"Screenplay": true,
	"Story":      true,
}

var crewDepartments = map[string]bool{
	"Directing": true,
	"Writing":   true,
}

// GetPerson fetches person metadata by id, cached.
func (s *Service) GetPerson(ctx context.Context, id int) (*tmdb.Person, error) {
	return fetchCached(ctx, s.cache, domainPersonDetail, strconv.Itoa(id), detailTTL, func(ctx context.Context) (*tmdb.Person, error) {
		return s.client.PersonDetails(ctx, id)
	})
}

// PersonCredits fetches a person's combined movie and TV credits, cached.
func (s *Service) PersonCredits(ctx context.Context, id int) (*tmdb.CombinedCredits, error) {
	return fetchCached(ctx, s.cache, domainPersonCredits, strconv.Itoa(id), creditsTTL, func(ctx context.Context) (*tmdb.CombinedCredits, error) {
		return s.client.PersonCombinedCredits(ctx, id)
	})
}

// RoleInfo classifies a person as actor and/or director-or-writer from one
// cached combined-credits fetch, so checking both costs a single call.
func (s *Service) RoleInfo(ctx context.Context, id int) (PersonRoleInfo, error) {
	return fetchCached(ctx, s.cache, domainRoleInfo, strconv.Itoa(id), creditsTTL, func(ctx context.Context) (PersonRoleInfo, error) {
		credits, err := s.PersonCredits(ctx, id)
		if err != nil {
			return PersonRoleInfo{}, err
		}
		return classifyRoles(credits), nil
	})
}

// FilterByRole keeps the ids whose person matches the role. Ids are processed
// in fixed-size batches, concurrent within a batch and sequential across
// batches, to bound upstream concurrency. A failed lookup drops the id
// rather than failing the filter.
func (s *Service) FilterByRole(ctx context.Context, ids []int, role Role) []int {
	keep := make([]bool, len(ids))

	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))

		p := pool.New().WithMaxGoroutines(end - start)
		for i := start; i < end; i++ {
			p.Go(func() {
				info, err := s.RoleInfo(ctx, ids[i])
				if err != nil {
					s.debug("role lookup failed, dropping id", "person_id", ids[i], "error", err)
					return
				}
				switch role {
				case RoleActor:
					keep[i] = info.IsActor
				case RoleCrew:
					keep[i] = info.IsCrew
				}
			})
		}
		p.Wait()
	}

	var out []int
	for i, id := range ids {
		if keep[i] {
			out = append(out, id)
		}
	}
	return out
}

// FilterToActors keeps only ids classified as actors.
func (s *Service) FilterToActors(ctx context.Context, ids []int) []int {
	return s.FilterByRole(ctx, ids, RoleActor)
}

// FilterToCrew keeps only ids classified as directors or writers.
func (s *Service) FilterToCrew(ctx context.Context, ids []int) []int {
	return s.FilterByRole(ctx, ids, RoleCrew)
}

func classifyRoles(credits *tmdb.CombinedCredits) PersonRoleInfo {
	info := PersonRoleInfo{IsActor: len(credits.Cast) > 0}
	for _, c := range credits.Crew {
		if crewJobs[c.Job] || crewDepartments[c.Department] {
			info.IsCrew = true
			break
		}
	}
	return info
}
