package llm

import "context"

// ProfileRequest carries the career topic and the complete fragment set the
// prompt template is filled with.
type ProfileRequest struct {
	Career        string
	JobOutlook    string
	Courses       string
	Majors        string
	MajorsSources string
	Skills        string
	SkillsSources string
	News          string
	RedditPosts   string
}

// Generator produces the final career-profile report. Its configuration
// (model, temperature, output length) is fixed process-wide.
type Generator interface {
	GenerateProfile(ctx context.Context, req ProfileRequest) (string, error)
}
