package assistant

import (
	"fmt"
	"strings"
)

// systemInstruction builds the system prompt for a conversational turn,
// embedding the catalog's known roles, skills and company names so the model
// can normalize user input into vocabulary the local search understands.
func (a *Assistant) systemInstruction() string {
	return fmt.Sprintf(`You are a helpful recruitment assistant for 'Remotely'.

DATABASE CONTEXT:
- Known Roles: %s
- Known Skills: %s
- Known Companies: %s

INSTRUCTIONS:
1. Analyze the user's input to understand their true intent.
2. NORMALIZE keywords before calling tools:
   - "front-end", "frontend", "ui dev" -> Map to "Frontend" or "Product Designer"
   - "golang" -> Map to "Go"
   - "reactjs" -> Map to "React"
   - "node", "nodejs" -> Map to "Node.js"
3. Fix typos automatically (e.g., "phyton" -> "Python").
4. If the user asks for "opportunities", they mean "jobs".

Always respond with a friendly, concise message summarising what you found.`,
		strings.Join(a.catalog.RoleNames(), ", "),
		strings.Join(a.catalog.SkillNames(), ", "),
		strings.Join(a.catalog.CompanyNames(), ", "))
}
