package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ysqsimon/Remotely/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	return cfg
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := testConfig(t)
	first := Build(cfg)
	second := Build(cfg)

	if !reflect.DeepEqual(first, second) {
		t.Error("two catalog builds from the same config should be identical")
	}
}

func TestBuildCounts(t *testing.T) {
	cfg := testConfig(t)
	cat := Build(cfg)

	if len(cat.Jobs) != 100 {
		t.Errorf("expected 100 jobs, got %d", len(cat.Jobs))
	}
	if len(cat.Talents) != 50 {
		t.Errorf("expected 50 talents, got %d", len(cat.Talents))
	}
	if len(cat.Companies) != len(companySeeds) {
		t.Errorf("expected %d companies, got %d", len(companySeeds), len(cat.Companies))
	}
}

func TestBuildFirstJobFields(t *testing.T) {
	cat := Build(testConfig(t))
	job := cat.Jobs[0]

	if job.ID != "job-1" {
		t.Errorf("first job ID = %q, want job-1", job.ID)
	}
	if job.Title != "Senior Frontend Engineer" {
		t.Errorf("first job title = %q", job.Title)
	}
	if job.Company != "NebulaStream" {
		t.Errorf("first job company = %q", job.Company)
	}
	if job.Salary != "$80k - $120k" {
		t.Errorf("first job salary = %q", job.Salary)
	}
	if job.PostedAt != "1h ago" {
		t.Errorf("first job postedAt = %q", job.PostedAt)
	}
	want := []string{"React", "TypeScript", "Node.js"}
	if !reflect.DeepEqual(job.Tags, want) {
		t.Errorf("first job tags = %v, want %v", job.Tags, want)
	}
	if !strings.Contains(job.Description, "NebulaStream") {
		t.Error("job description should mention the company name")
	}
}

func TestBuildSeedsCycle(t *testing.T) {
	cat := Build(testConfig(t))

	// Index 10 wraps back to the first company but advances the role list.
	job := cat.Jobs[10]
	if job.Company != "NebulaStream" {
		t.Errorf("job-11 company = %q, want NebulaStream", job.Company)
	}
	if job.Title != "iOS Developer" {
		t.Errorf("job-11 title = %q, want iOS Developer", job.Title)
	}
	if job.Salary != "$80k - $120k" {
		t.Errorf("job-11 salary = %q, want the cycle to restart at $80k - $120k", job.Salary)
	}
}

func TestBuildTalentAvailability(t *testing.T) {
	cat := Build(testConfig(t))

	for i, talent := range cat.Talents {
		want := "Available in 2 weeks"
		if i%3 == 0 {
			want = "Available now"
		}
		if talent.Availability != want {
			t.Errorf("talent %d availability = %q, want %q", i, talent.Availability, want)
		}
	}
}

func TestDeriveCompanies(t *testing.T) {
	cat := Build(testConfig(t))
	companies := DeriveCompanies(cat.Jobs)

	if !reflect.DeepEqual(companies, cat.Companies) {
		t.Error("DeriveCompanies should be idempotent over the same job slice")
	}

	// First-seen order over cycling jobs is the seed order.
	for i, company := range companies {
		if company.Name != companySeeds[i].Name {
			t.Errorf("company %d = %q, want %q", i, company.Name, companySeeds[i].Name)
		}
		if company.ID != "comp-"+company.Name {
			t.Errorf("company ID = %q, want comp-%s", company.ID, company.Name)
		}
		if company.Size != "100-500" {
			t.Errorf("company size = %q, want 100-500", company.Size)
		}
	}

	total := 0
	for _, company := range companies {
		total += company.OpenRoles
	}
	if total != len(cat.Jobs) {
		t.Errorf("open roles sum to %d, want %d", total, len(cat.Jobs))
	}
}

func TestJobByID(t *testing.T) {
	cat := Build(testConfig(t))

	job := cat.JobByID("job-42")
	if job == nil {
		t.Fatal("job-42 should exist")
	}
	if job.ID != "job-42" {
		t.Errorf("JobByID returned %q", job.ID)
	}

	if cat.JobByID("job-999") != nil {
		t.Error("job-999 should not exist")
	}
}

func TestVocabularyAccessorsCopy(t *testing.T) {
	cat := Build(testConfig(t))

	roles := cat.RoleNames()
	roles[0] = "mutated"
	if cat.RoleNames()[0] == "mutated" {
		t.Error("RoleNames should return a copy")
	}

	skills := cat.SkillNames()
	skills[0] = "mutated"
	if cat.SkillNames()[0] == "mutated" {
		t.Error("SkillNames should return a copy")
	}
}
