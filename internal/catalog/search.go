package catalog

import (
	"strings"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// Searcher provides keyword search over the catalog collections. Matching is
// case-insensitive substring matching; results preserve collection order and
// are capped at the configured per-kind limits. The searcher never mutates
// the catalog.
type Searcher struct {
	catalog      *Catalog
	jobLimit     int
	talentLimit  int
	companyLimit int
}

// NewSearcher creates a searcher with the configured result limits.
func NewSearcher(cat *Catalog, cfg *config.Config) *Searcher {
	return &Searcher{
		catalog:      cat,
		jobLimit:     cfg.Search.JobResultLimit,
		talentLimit:  cfg.Search.TalentResultLimit,
		companyLimit: cfg.Search.CompanyResultLimit,
	}
}

// SearchJobs returns jobs whose title, tags or company name contain the
// keyword, optionally narrowed by a location substring. An empty keyword is
// browse mode and returns the full job collection uncapped.
func (s *Searcher) SearchJobs(keyword, location string) []models.Job {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.catalog.Jobs
	}

	kw := strings.ToLower(keyword)
	loc := strings.ToLower(strings.TrimSpace(location))

	matches := make([]models.Job, 0, s.jobLimit)
	for _, job := range s.catalog.Jobs {
		if !jobMatches(job, kw) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(job.Location), loc) {
			continue
		}
		matches = append(matches, job)
		if len(matches) == s.jobLimit {
			break
		}
	}
	return matches
}

// SearchTalents returns talents whose role or skills contain the term. An
// empty term is browse mode and returns the full talent collection uncapped.
func (s *Searcher) SearchTalents(roleOrSkill string) []models.Talent {
	term := strings.TrimSpace(roleOrSkill)
	if term == "" {
		return s.catalog.Talents
	}

	lower := strings.ToLower(term)
	matches := make([]models.Talent, 0, s.talentLimit)
	for _, talent := range s.catalog.Talents {
		if !strings.Contains(strings.ToLower(talent.Role), lower) && !anyContains(talent.Skills, lower) {
			continue
		}
		matches = append(matches, talent)
		if len(matches) == s.talentLimit {
			break
		}
	}
	return matches
}

// SearchCompanies returns companies whose name or industry contain the term.
// An empty term returns the full company collection.
func (s *Searcher) SearchCompanies(industryOrName string) []models.Company {
	term := strings.TrimSpace(industryOrName)
	if term == "" {
		return s.catalog.Companies
	}

	lower := strings.ToLower(term)
	matches := make([]models.Company, 0, s.companyLimit)
	for _, company := range s.catalog.Companies {
		if !strings.Contains(strings.ToLower(company.Name), lower) &&
			!strings.Contains(strings.ToLower(company.Industry), lower) {
			continue
		}
		matches = append(matches, company)
		if len(matches) == s.companyLimit {
			break
		}
	}
	return matches
}

func jobMatches(job models.Job, kw string) bool {
	if strings.Contains(strings.ToLower(job.Title), kw) {
		return true
	}
	if anyContains(job.Tags, kw) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Company), kw) {
		return true
	}
	// The catalog titles say "Developer" where users often say "engineer".
	if kw == "engineer" && strings.Contains(strings.ToLower(job.Title), "developer") {
		return true
	}
	return false
}

func anyContains(values []string, lower string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lower) {
			return true
		}
	}
	return false
}
