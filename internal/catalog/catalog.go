package catalog

import (
	"fmt"
	"strings"

	"github.com/ysqsimon/Remotely/internal/config"
	"github.com/ysqsimon/Remotely/pkg/models"
)

// Catalog holds the immutable in-memory collections of jobs, talents and
// companies. It is built once at process start and never mutated; callers
// must treat the slices as read-only.
type Catalog struct {
	Jobs      []models.Job
	Talents   []models.Talent
	Companies []models.Company
}

// Build generates the catalog deterministically from the fixed seed lists.
// Record counts come from configuration; fields are assigned by cyclic
// indexing into the seeds, so a given index always produces the same record.
func Build(cfg *config.Config) *Catalog {
	jobs := make([]models.Job, 0, cfg.Catalog.JobCount)
	for i := 0; i < cfg.Catalog.JobCount; i++ {
		jobs = append(jobs, buildJob(i))
	}

	talents := make([]models.Talent, 0, cfg.Catalog.TalentCount)
	for i := 0; i < cfg.Catalog.TalentCount; i++ {
		talents = append(talents, buildTalent(i))
	}

	return &Catalog{
		Jobs:      jobs,
		Talents:   talents,
		Companies: DeriveCompanies(jobs),
	}
}

// RoleNames returns the known role vocabulary of the catalog.
func (c *Catalog) RoleNames() []string {
	return append([]string(nil), roleSeeds...)
}

// SkillNames returns the known skill vocabulary of the catalog.
func (c *Catalog) SkillNames() []string {
	return append([]string(nil), skillSeeds...)
}

// CompanyNames returns the names of the companies present in the catalog.
func (c *Catalog) CompanyNames() []string {
	names := make([]string, 0, len(c.Companies))
	for _, company := range c.Companies {
		names = append(names, company.Name)
	}
	return names
}

// JobByID returns the job with the given ID, or nil if absent.
func (c *Catalog) JobByID(id string) *models.Job {
	for i := range c.Jobs {
		if c.Jobs[i].ID == id {
			return &c.Jobs[i]
		}
	}
	return nil
}

// DeriveCompanies builds the company collection from the job collection by
// deduplicating jobs on company name, in first-seen order. OpenRoles is
// recomputed as the number of jobs referencing the company name, so the
// derivation is idempotent over the same job slice.
func DeriveCompanies(jobs []models.Job) []models.Company {
	openRoles := make(map[string]int, len(companySeeds))
	for _, job := range jobs {
		openRoles[job.Company]++
	}

	seen := make(map[string]bool, len(companySeeds))
	companies := make([]models.Company, 0, len(companySeeds))
	for _, job := range jobs {
		if seen[job.Company] {
			continue
		}
		seen[job.Company] = true

		seed, ok := companySeedByName(job.Company)
		if !ok {
			continue
		}

		companies = append(companies, models.Company{
			ID:          "comp-" + job.Company,
			Name:        job.Company,
			Industry:    seed.Industry,
			Size:        "100-500",
			Description: companyDescription(seed, job.ID),
			Logo:        job.CompanyLogo,
			OpenRoles:   openRoles[job.Company],
			Website:     seed.Website,
		})
	}

	return companies
}

func companySeedByName(name string) (companySeed, bool) {
	for _, seed := range companySeeds {
		if seed.Name == name {
			return seed, true
		}
	}
	return companySeed{}, false
}

func buildJob(i int) models.Job {
	company := companySeeds[i%len(companySeeds)]
	role := roleSeeds[i%len(roleSeeds)]
	skills := []string{
		skillSeeds[i%len(skillSeeds)],
		skillSeeds[(i+1)%len(skillSeeds)],
		skillSeeds[(i+2)%len(skillSeeds)],
	}
	minSalary := 80 + (i%10)*10
	maxSalary := 120 + (i%10)*15
	level := jobLevels[i%len(jobLevels)]

	return models.Job{
		ID:              fmt.Sprintf("job-%d", i+1),
		Title:           role,
		Company:         company.Name,
		CompanyLogo:     company.Logo,
		Salary:          fmt.Sprintf("$%dk - $%dk", minSalary, maxSalary),
		SalaryMin:       minSalary,
		SalaryMax:       maxSalary,
		Type:            jobTypes[i%len(jobTypes)],
		Location:        locationSeeds[i%len(locationSeeds)],
		Tags:            skills,
		PostedAt:        fmt.Sprintf("%dh ago", (i%24)+1),
		Description:     jobDescription(company, role, level, skills),
		ExperienceLevel: level,
	}
}

func buildTalent(i int) models.Talent {
	role := roleSeeds[i%len(roleSeeds)]
	skills := []string{
		skillSeeds[i%len(skillSeeds)],
		skillSeeds[(i+3)%len(skillSeeds)],
		skillSeeds[(i+5)%len(skillSeeds)],
	}
	rate := 40 + (i%10)*10
	level := talentLevels[i%len(talentLevels)]

	availability := "Available in 2 weeks"
	if i%3 == 0 {
		availability = "Available now"
	}

	return models.Talent{
		ID:              fmt.Sprintf("talent-%d", i+1),
		Name:            firstNameSeeds[i%len(firstNameSeeds)] + " " + lastNameSeeds[i%len(lastNameSeeds)],
		Role:            role,
		Avatar:          fmt.Sprintf("https://picsum.photos/200/200?random=%d", 100+i),
		HourlyRate:      fmt.Sprintf("$%d/hr", rate),
		HourlyRateValue: rate,
		Skills:          skills,
		Availability:    availability,
		Bio:             talentBio(role, level, skills, i),
		Rating:          4.0 + float64(i%10)/10,
		ExperienceLevel: level,
	}
}

var jobTypes = []models.JobType{
	models.JobTypeFullTime, models.JobTypeFullTime, models.JobTypeFullTime,
	models.JobTypeContract, models.JobTypePartTime,
}

var jobLevels = []models.JobExperienceLevel{
	models.JobLevelEntry, models.JobLevelMid, models.JobLevelSenior,
	models.JobLevelSenior, models.JobLevelLead,
}

var talentLevels = []models.TalentExperienceLevel{
	models.TalentLevelJunior, models.TalentLevelMid,
	models.TalentLevelSenior, models.TalentLevelExpert,
}

func jobDescription(company companySeed, role string, level models.JobExperienceLevel, skills []string) string {
	return strings.TrimSpace(fmt.Sprintf(`
We are %[1]s, a leader in %[2]s. We are seeking a highly skilled **%[3]s** (%[4]s Level) to join our distributed team.

**About the Role:**
In this position, you will play a pivotal role in architecting and building scalable solutions that power our core platform. You will work closely with cross-functional teams including product managers, designers, and other engineers to deliver high-quality software.

**Key Responsibilities:**
- Design, develop, and maintain efficient, reusable, and reliable code.
- Collaborate with the design team to implement intuitive user interfaces.
- Participate in code reviews and contribute to engineering best practices.
- Troubleshoot, debug, and upgrade existing systems.
- Mentor junior developers and share technical knowledge.

**Requirements:**
- Proven experience with **%[5]s**.
- Strong understanding of software design patterns and principles.
- Experience with cloud infrastructure and CI/CD pipelines.
- Excellent problem-solving skills and attention to detail.
- Strong written and verbal communication skills in English.
- Ability to work effectively in a remote, asynchronous environment.

**Benefits:**
- Competitive salary and equity package.
- 100%% remote work policy with flexible hours.
- Home office stipend and co-working space reimbursement.
- Comprehensive health, dental, and vision insurance.
- Annual learning and development budget.

Join us at %[1]s and help shape the future of %[2]s!
`, company.Name, company.Industry, role, level, strings.Join(skills, ", ")))
}

func talentBio(role string, level models.TalentExperienceLevel, skills []string, i int) string {
	goal := "a full-time role"
	if i%2 == 0 {
		goal = "contract opportunities"
	}

	return strings.TrimSpace(fmt.Sprintf(`
I am a dedicated **%s** (%s) with over %d years of experience in building scalable web applications and digital products. My expertise lies in **%s**, and I have a proven track record of delivering high-quality work for startups and enterprise clients alike.

I thrive in remote environments and excel at asynchronous communication. I am passionate about clean code, user-centric design, and solving complex technical challenges.

**Recent Projects:**
- Led the migration of a legacy monolith to microservices architecture.
- Designed and implemented a design system used by 20+ developers.
- Optimized application performance, reducing load times by 40%%.

I am currently looking for %s where I can make a significant impact.
`, role, level, 5+(i%10), strings.Join(skills, ", "), goal))
}

func companyDescription(seed companySeed, firstJobID string) string {
	founded := 15 + len(firstJobID)%5

	return strings.TrimSpace(fmt.Sprintf(`
%[1]s

**About %[2]s:**
Founded in 20%[3]d, %[2]s has grown to become a key player in the %[4]s space. Our mission is to empower users through innovative technology and seamless experiences.

**Our Culture:**
We believe in autonomy, mastery, and purpose. We are a fully distributed team spread across 15+ countries. We value output over hours and trust our employees to manage their own schedules.

**Why Join Us?**
- Work with a diverse, global team of experts.
- Solve challenging problems at scale.
- Contribute to open-source projects.
- Regular company retreats in exotic locations.

We are constantly growing and looking for talented individuals to join our journey.
`, seed.Desc, seed.Name, founded, seed.Industry))
}
