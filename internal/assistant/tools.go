package assistant

import (
	"github.com/ysqsimon/Remotely/pkg/models"
)

// Tool names the model is allowed to invoke. Dispatch is a closed switch
// over these; anything else the model emits is rejected, never reflected on.
const (
	toolSearchJobs      = "search_jobs"
	toolSearchTalents   = "search_talents"
	toolSearchCompanies = "search_companies"
)

// toolInvocation is the closed set of executable tool calls.
type toolInvocation interface {
	isToolInvocation()
}

type searchJobsInvocation struct {
	keywords string
	location string
}

type searchTalentsInvocation struct {
	roleOrSkill string
}

type searchCompaniesInvocation struct {
	industry string
}

func (searchJobsInvocation) isToolInvocation()      {}
func (searchTalentsInvocation) isToolInvocation()   {}
func (searchCompaniesInvocation) isToolInvocation() {}

// parseToolCall maps a raw model tool call onto the closed invocation set.
// Unknown tool names are rejected; argument presence is checked at execution
// time so missing fields degrade to a zero-result reply.
func parseToolCall(call *models.ToolCall) (toolInvocation, bool) {
	switch call.Name {
	case toolSearchJobs:
		return searchJobsInvocation{
			keywords: call.Arg("keywords"),
			location: call.Arg("location"),
		}, true
	case toolSearchTalents:
		return searchTalentsInvocation{
			roleOrSkill: call.Arg("roleOrSkill"),
		}, true
	case toolSearchCompanies:
		return searchCompaniesInvocation{
			industry: call.Arg("industry"),
		}, true
	default:
		return nil, false
	}
}

// toolDeclarations returns the tool schemas sent with every conversational
// model call. The descriptions instruct the model to normalize colloquial
// and misspelled input into the catalog vocabulary before invoking a tool.
func toolDeclarations() []models.ToolDecl {
	return []models.ToolDecl{
		{
			Name:        toolSearchJobs,
			Description: "Search for remote job postings. Automatically normalizes vague terms (e.g., 'front-end' -> 'Frontend') to match database standards.",
			Params: []models.ToolParam{
				{Name: "keywords", Description: "The single most relevant NORMALIZED keyword matching our database (e.g. 'Frontend', 'Go', 'Manager').", Required: true},
				{Name: "location", Description: "Preferred location (e.g., 'US', 'Worldwide')"},
			},
		},
		{
			Name:        toolSearchTalents,
			Description: "Find remote freelancers or talents. Normalizes input to match standard roles.",
			Params: []models.ToolParam{
				{Name: "roleOrSkill", Description: "The normalized role or skill (e.g., 'Designer', 'React').", Required: true},
			},
		},
		{
			Name:        toolSearchCompanies,
			Description: "Find remote-first companies information.",
			Params: []models.ToolParam{
				{Name: "industry", Description: "Industry or company name", Required: true},
			},
		},
	}
}
